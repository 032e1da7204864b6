package oxide

import (
	"fmt"
	"math"
)

// ControlPoint identifies one of a curve's two draggable handles.
type ControlPoint uint8

const (
	ControlPointP1 ControlPoint = iota // first handle, adjacent to P0
	ControlPointP2                     // second handle, adjacent to P3
)

const (
	// DefaultPickRadius is the world-space distance within which a cursor
	// picks up a handle.
	DefaultPickRadius float32 = 0.02

	// curveSegments is the number of line segments a curve is tessellated into.
	curveSegments = 10

	degenerateEpsilon = 1e-6
)

// BezierCurve is a cubic Bézier curve. P0 and P3 are the endpoints, P1 and P2
// the handles. The tight bounding box is cached and recomputed by SetPoint;
// assign the points through SetPoint (or NewBezierCurve) to keep it current.
type BezierCurve struct {
	P0, P1, P2, P3 Vec2

	box Rect
}

// NewBezierCurve creates a curve from its four control points.
func NewBezierCurve(p0, p1, p2, p3 Vec2) *BezierCurve {
	c := &BezierCurve{P0: p0, P1: p1, P2: p2, P3: p3}
	c.box = c.computeBoundingBox()
	return c
}

// Point returns control point i (0..3).
func (c *BezierCurve) Point(i int) Vec2 {
	switch i {
	case 0:
		return c.P0
	case 1:
		return c.P1
	case 2:
		return c.P2
	case 3:
		return c.P3
	}
	panic(fmt.Sprintf("oxide: control point %d out of range 0..3", i))
}

// SetPoint replaces control point i (0..3) and recomputes the bounding box.
func (c *BezierCurve) SetPoint(i int, p Vec2) {
	switch i {
	case 0:
		c.P0 = p
	case 1:
		c.P1 = p
	case 2:
		c.P2 = p
	case 3:
		c.P3 = p
	default:
		panic(fmt.Sprintf("oxide: control point %d out of range 0..3", i))
	}
	c.box = c.computeBoundingBox()
}

// Handle returns the position of handle h.
func (c *BezierCurve) Handle(h ControlPoint) Vec2 {
	return c.Point(h.index())
}

// SetHandle moves handle h to p.
func (c *BezierCurve) SetHandle(h ControlPoint, p Vec2) {
	c.SetPoint(h.index(), p)
}

func (h ControlPoint) index() int {
	switch h {
	case ControlPointP1:
		return 1
	case ControlPointP2:
		return 2
	}
	panic(fmt.Sprintf("oxide: control point id %d is not a handle", h))
}

// Evaluate returns the point on the curve at parameter t. t is not clamped;
// values outside [0, 1] extrapolate.
func (c *BezierCurve) Evaluate(t float32) Vec2 {
	mt := 1 - t
	return c.P0.Mul(mt * mt * mt).
		Add(c.P1.Mul(3 * mt * mt * t)).
		Add(c.P2.Mul(3 * mt * t * t)).
		Add(c.P3.Mul(t * t * t))
}

// Derivative returns the first derivative of the curve at t.
func (c *BezierCurve) Derivative(t float32) Vec2 {
	return c.P0.Mul(-3*t*t + 6*t - 3).
		Add(c.P1.Mul(9*t*t - 12*t + 3)).
		Add(c.P2.Mul(-9*t*t + 6*t)).
		Add(c.P3.Mul(3 * t * t))
}

// SecondDerivative returns the second derivative of the curve at t.
func (c *BezierCurve) SecondDerivative(t float32) Vec2 {
	return c.P0.Mul(-6*t + 6).
		Add(c.P1.Mul(18*t - 12)).
		Add(c.P2.Mul(-18*t + 6)).
		Add(c.P3.Mul(6 * t))
}

// BoundingBox returns the tight axis-aligned box of the curve over t in [0, 1].
func (c *BezierCurve) BoundingBox() Rect {
	return c.box
}

// computeBoundingBox finds the stationary points of each axis analytically and
// takes the extremes over those and the endpoints.
func (c *BezierCurve) computeBoundingBox() Rect {
	tx0, tx1 := stationaryRoots(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	ty0, ty1 := stationaryRoots(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)

	var pts [6]Vec2
	pts[0] = c.Evaluate(0)
	pts[1] = c.Evaluate(1)
	n := 2
	for _, t := range [4]float32{tx0, ty0, tx1, ty1} {
		if t > 0 && t < 1 {
			pts[n] = c.Evaluate(t)
			n++
		}
	}

	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:n] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// stationaryRoots solves the derivative quadratic a*t^2 + b*t + c = 0 of one
// axis. A near-zero leading coefficient degrades to the linear root, returned
// twice. Roots without a real solution come back as NaN.
func stationaryRoots(p0, p1, p2, p3 float32) (float32, float32) {
	a := -3*p0 + 9*p1 - 9*p2 + 3*p3
	b := 6*p0 - 12*p1 + 6*p2
	c := -3*p0 + 3*p1

	if abs32(a) < degenerateEpsilon {
		t := -c / b
		return t, t
	}
	q := float32(math.Sqrt(float64(b*b - 4*a*c)))
	return (-b + q) / (2 * a), (-b - q) / (2 * a)
}

// HitHandle returns the first handle (P1, then P2) within radius of p.
func (c *BezierCurve) HitHandle(p Vec2, radius float32) (ControlPoint, bool) {
	if withinRadius(c.P1, p, radius) {
		return ControlPointP1, true
	}
	if withinRadius(c.P2, p, radius) {
		return ControlPointP2, true
	}
	return 0, false
}

func withinRadius(a, b Vec2, radius float32) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx+dy*dy <= radius*radius
}

// Distance returns the distance between p and the curve point at t.
func (c *BezierCurve) Distance(t float32, p Vec2) float32 {
	return c.Evaluate(t).Dist(p)
}

// MinDistance approximates the shortest distance between p and the curve by
// sampling t in steps of 0.01.
func (c *BezierCurve) MinDistance(p Vec2) float32 {
	best := float32(math.MaxFloat32)
	for i := 0; i <= 100; i++ {
		if d := c.Distance(float32(i)/100, p); d < best {
			best = d
		}
	}
	return best
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
