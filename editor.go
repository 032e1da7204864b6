package oxide

import "github.com/tanema/gween/ease"

// updateController applies one frame of input to the session: handle picking
// and dragging, pointer and keyboard panning, camera reset, wheel zoom and
// middle-click glides.
//
// The pointer state machine has two states. Idle: a left press over a handle
// selects it, otherwise a held left button pans the world under the cursor.
// Dragging: the selected handle follows the cursor until the left button is
// released, and a right press does not reset the camera.
func updateController(s *GameState, in *InputController) {
	debugCheckSelection(s)

	cam := &s.Camera
	mouse := &in.Mouse
	cursor := cam.ScreenToWorld(mouse.Pos)
	s.cursor = cursor

	if mouse.Left.Pressed() && !s.HasSelection() {
		if slot, h, ok := s.pick(cursor); ok {
			s.SelectedCurve = slot
			s.SelectedPoint = h
			s.emit(EditEvent{Type: EventHandlePicked, Curve: slot, Point: h, Pos: cursor})
		}
	}

	if mouse.Left.IsDown {
		if s.HasSelection() {
			s.dragSelected(cursor)
		} else {
			d := mouse.Delta()
			if d.X != 0 || d.Y != 0 {
				cam.CancelScroll()
				cam.X += float32(d.X) / cam.YScale
				cam.Y += float32(d.Y) / cam.YScale
			}
		}
	}

	if mouse.Left.Released() && s.HasSelection() {
		s.emit(EditEvent{Type: EventHandleReleased, Curve: s.SelectedCurve, Point: s.SelectedPoint, Pos: cursor})
		s.SelectedCurve = NoSelection
	}

	if mouse.Right.Pressed() && !s.HasSelection() {
		cam.CancelScroll()
		cam.X, cam.Y = 0, 0
		s.emit(EditEvent{Type: EventCameraReset, Curve: NoSelection})
	}

	if mouse.Middle.Pressed() {
		cam.ScrollTo(cursor, glideDuration, ease.OutQuad)
	}

	if mouse.WheelDelta != 0 {
		cam.Zoom(int(mouse.WheelDelta))
	}

	s.keyboardPan(in)
}

// dragSelected snaps the selected handle to p.
func (s *GameState) dragSelected(p Vec2) {
	c := s.Curves[s.SelectedCurve]
	if c.Handle(s.SelectedPoint) == p {
		return
	}
	c.SetHandle(s.SelectedPoint, p)
	s.emit(EditEvent{Type: EventHandleMoved, Curve: s.SelectedCurve, Point: s.SelectedPoint, Pos: p})
}

// keyboardPan moves the camera with W/A/S/D or the arrow keys. Diagonal
// combinations are checked first and use the diagonal speed on both axes.
func (s *GameState) keyboardPan(in *InputController) {
	up := in.W.IsDown || in.Up.IsDown
	down := in.S.IsDown || in.Down.IsDown
	left := in.A.IsDown || in.Left.IsDown
	right := in.D.IsDown || in.Right.IsDown

	straight := s.CameraSpeed * s.DeltaTime
	diag := s.CameraSpeedDiag * s.DeltaTime

	var dx, dy float32
	switch {
	case up && left:
		dx, dy = -diag, -diag
	case up && right:
		dx, dy = diag, -diag
	case down && left:
		dx, dy = -diag, diag
	case down && right:
		dx, dy = diag, diag
	case up:
		dy = -straight
	case down:
		dy = straight
	case left:
		dx = -straight
	case right:
		dx = straight
	default:
		return
	}

	s.Camera.CancelScroll()
	s.Camera.X += dx
	s.Camera.Y += dy
}
