package oxide

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultCameraHeight is the world-space height visible at startup.
	DefaultCameraHeight float32 = 9

	// MinCameraHeight and MaxCameraHeight bound wheel zoom.
	MinCameraHeight float32 = 1
	MaxCameraHeight float32 = 200

	zoomStep = 0.9

	// glideDuration is the length of a middle-click camera glide in seconds.
	glideDuration float32 = 0.25
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps the infinite world plane onto the pixel buffer with a uniform
// scale. Height is the authoritative world extent; YScale and Width are
// derived from it and the window size by UpdateScale.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float32
	// Width and Height are the visible world-space extent.
	Width, Height float32
	// YScale is screen pixels per world unit on both axes.
	YScale float32

	scrollTween *scrollAnim
}

// NewCamera creates a camera centered on (x, y) showing width by height world
// units. YScale starts at 1 until the first UpdateScale.
func NewCamera(x, y, width, height float32) Camera {
	return Camera{X: x, Y: y, Width: width, Height: height, YScale: 1}
}

// UpdateScale derives YScale from the window height and the camera height,
// then derives Width from the window width. Resizing the window therefore
// changes how much of the world is visible horizontally, never the scale.
// Non-positive inputs leave the camera unchanged.
func (c *Camera) UpdateScale(windowWidth, windowHeight int) {
	if windowHeight <= 0 || c.Height <= 0 {
		return
	}
	c.YScale = float32(windowHeight) / c.Height
	c.Width = float32(windowWidth) / c.YScale
}

// WorldToScreenF converts a world point to fractional screen coordinates.
func (c *Camera) WorldToScreenF(p Vec2) Vec2 {
	return Vec2{
		X: (p.X - c.X + c.Width/2) * c.YScale,
		Y: (p.Y - c.Y + c.Height/2) * c.YScale,
	}
}

// WorldToScreen converts a world point to unsigned pixel coordinates. Points
// left of or above the buffer clamp to zero.
func (c *Camera) WorldToScreen(p Vec2) Vec2UInt {
	s := c.WorldToScreenF(p)
	return Vec2UInt{X: satU32(s.X), Y: satU32(s.Y)}
}

// WorldToScreenInt converts a world point to signed pixel coordinates,
// preserving positions outside the buffer.
func (c *Camera) WorldToScreenInt(p Vec2) Vec2Int {
	s := c.WorldToScreenF(p)
	return Vec2Int{X: satI32(s.X), Y: satI32(s.Y)}
}

// ScreenToWorldF converts fractional screen coordinates to world space.
func (c *Camera) ScreenToWorldF(s Vec2) Vec2 {
	return Vec2{
		X: s.X/c.YScale + c.X - c.Width/2,
		Y: s.Y/c.YScale + c.Y - c.Height/2,
	}
}

// ScreenToWorld converts a pixel coordinate to world space.
func (c *Camera) ScreenToWorld(s Vec2UInt) Vec2 {
	return c.ScreenToWorldF(Vec2{X: float32(s.X), Y: float32(s.Y)})
}

// Bounds returns the world-space rectangle the camera shows.
func (c *Camera) Bounds() Rect {
	return Rect{
		X:      c.X - c.Width/2,
		Y:      c.Y - c.Height/2,
		Width:  c.Width,
		Height: c.Height,
	}
}

// Zoom changes the visible height by one factor of 0.9 per step. Positive
// steps zoom in. The result is clamped to [MinCameraHeight, MaxCameraHeight]
// and YScale and Width are rederived for the same window size.
func (c *Camera) Zoom(steps int) {
	if steps == 0 || c.Height <= 0 {
		return
	}
	pxW, pxH := c.Width*c.YScale, c.Height*c.YScale

	h := c.Height
	for ; steps > 0; steps-- {
		h *= zoomStep
	}
	for ; steps < 0; steps++ {
		h /= zoomStep
	}
	c.Height = min(max(h, MinCameraHeight), MaxCameraHeight)
	c.YScale = pxH / c.Height
	c.Width = pxW / c.YScale
}

// ScrollTo animates the camera center to target over duration seconds.
func (c *Camera) ScrollTo(target Vec2, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(c.X, target.X, duration, easeFn),
		tweenY: gween.New(c.Y, target.Y, duration, easeFn),
	}
}

// CancelScroll stops a running ScrollTo, leaving the camera where it is.
func (c *Camera) CancelScroll() {
	c.scrollTween = nil
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// update advances the scroll animation by dt seconds.
func (c *Camera) update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		c.X, c.scrollTween.doneX = c.scrollTween.tweenX.Update(dt)
	}
	if !c.scrollTween.doneY {
		c.Y, c.scrollTween.doneY = c.scrollTween.tweenY.Update(dt)
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}
