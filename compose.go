package oxide

const (
	originRadius float32 = 0.05
	handleRadius float32 = 0.02
)

// Render draws one frame of the scene into buf: background, grid, origin
// marker, bounding boxes, curves, handles and the optional HUD.
func Render(s *GameState, buf *OffscreenBuffer) {
	cam := s.Camera

	Clear(buf)
	DrawUnitGrid(buf, cam)
	DrawCircle(buf, cam, Vec2{}, originRadius, ColorOrigin)

	view := cam.Bounds()
	for _, c := range s.Curves {
		if c == nil {
			continue
		}
		if box := c.BoundingBox(); box.Intersects(view) {
			DrawRectangle(buf, cam, box, ColorBoundingBox)
		}
	}

	for _, c := range s.Curves {
		if c != nil {
			drawCurve(buf, cam, c, ColorCurve)
		}
	}

	for i, c := range s.Curves {
		if c != nil {
			drawHandles(buf, cam, s, i, c)
		}
	}

	if s.ShowHUD {
		drawHUD(s, buf)
	}
}

// drawCurve tessellates c into curveSegments line segments and closes the
// last one onto P3.
func drawCurve(buf *OffscreenBuffer, cam Camera, c *BezierCurve, color uint32) {
	prev := c.P0
	for i := 1; i < curveSegments; i++ {
		next := c.Evaluate(float32(i) / curveSegments)
		DrawLine(buf, cam, prev, next, color)
		prev = next
	}
	DrawLine(buf, cam, prev, c.P3, color)
}

// drawHandles draws the P0-P1 and P3-P2 arms and a dot on each handle. The
// handle being dragged is highlighted.
func drawHandles(buf *OffscreenBuffer, cam Camera, s *GameState, slot int, c *BezierCurve) {
	DrawLine(buf, cam, c.P0, c.P1, ColorHandleLine)
	DrawLine(buf, cam, c.P3, c.P2, ColorHandleLine)

	for _, h := range [...]ControlPoint{ControlPointP1, ControlPointP2} {
		color := ColorHandle
		if s.SelectedCurve == slot && s.SelectedPoint == h {
			color = ColorSelected
		}
		DrawCircle(buf, cam, c.Handle(h), handleRadius, color)
	}
}
