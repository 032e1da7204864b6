package oxide

import "math"

// Vec2 is a 2D world-space vector used for positions and displacements.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float32 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// Vec2Int is a signed screen-space pixel coordinate. Use it where negative
// values must survive, e.g. line endpoints left of the buffer.
type Vec2Int struct {
	X, Y int32
}

// Vec2UInt is an unsigned screen-space pixel coordinate.
type Vec2UInt struct {
	X, Y uint32
}

// Add returns v + o.
func (v Vec2UInt) Add(o Vec2UInt) Vec2UInt {
	return Vec2UInt{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o with each axis clamped at zero. Callers that need a
// signed delta must convert to Vec2Int first.
func (v Vec2UInt) Sub(o Vec2UInt) Vec2UInt {
	return Vec2UInt{X: subSat(v.X, o.X), Y: subSat(v.Y, o.Y)}
}

func subSat(a, b uint32) uint32 {
	if a < b {
		return 0
	}
	return a - b
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether p lies inside the rectangle. Points on the edge
// are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether r reaches other on either axis. This is an OR of
// the two far-edge tests, not a full overlap test: it only rejects rectangles
// that lie entirely right of and below r's extent.
func (r Rect) Intersects(other Rect) bool {
	return r.X+r.Width >= other.X ||
		r.Y+r.Height >= other.Y
}

// Colors are packed 0xAARRGGBB.
const (
	ColorGrid        uint32 = 0xFF444444
	ColorOrigin      uint32 = 0xFFFF0000
	ColorBoundingBox uint32 = 0x3300DDAA
	ColorCurve       uint32 = 0xFFFFFFFF
	ColorHandleLine  uint32 = 0xFF777777
	ColorHandle      uint32 = 0xFF00AAFF
	ColorSelected    uint32 = 0xFFFFCC00
	ColorHUD         uint32 = 0xFFDDDDDD
)

// satU32 converts a float screen coordinate to uint32, truncating toward zero
// and saturating at the type bounds.
func satU32(f float32) uint32 {
	switch {
	case !(f > 0):
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(f)
	}
}

// satI32 converts a float screen coordinate to int32, truncating toward zero
// and saturating at the type bounds. NaN maps to 0.
func satI32(f float32) int32 {
	switch {
	case math.IsNaN(float64(f)):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(f)
	}
}
