package oxide

// ButtonState is the double-buffered state of one key or mouse button.
type ButtonState struct {
	IsDown  bool // down this frame
	WasDown bool // down the previous frame
}

// Pressed reports an up-to-down transition this frame.
func (b ButtonState) Pressed() bool {
	return b.IsDown && !b.WasDown
}

// Released reports a down-to-up transition this frame.
func (b ButtonState) Released() bool {
	return !b.IsDown && b.WasDown
}

func (b *ButtonState) record(next ButtonState) {
	b.WasDown = b.IsDown
	b.IsDown = next.IsDown
}

// MouseState is the pointer snapshot. Positions are window-client pixels.
type MouseState struct {
	Pos     Vec2UInt
	PrevPos Vec2UInt

	Left   ButtonState
	Right  ButtonState
	Middle ButtonState

	// WheelDelta is the signed wheel movement this frame; positive is away
	// from the user.
	WheelDelta int16
}

// Delta returns PrevPos - Pos as a signed vector, the direction the camera
// moves when the world is dragged with the pointer.
func (m MouseState) Delta() Vec2Int {
	return Vec2Int{
		X: int32(m.PrevPos.X) - int32(m.Pos.X),
		Y: int32(m.PrevPos.Y) - int32(m.Pos.Y),
	}
}

// InputController is the per-frame input snapshot the platform hands to the
// engine.
type InputController struct {
	Mouse MouseState

	W, A, S, D            ButtonState
	Up, Left, Down, Right ButtonState
	Esc                   ButtonState
}

// Update shifts the current state into the previous slot and takes IsDown,
// the pointer position and the wheel delta from next. The WasDown fields of
// next are ignored.
func (in *InputController) Update(next InputController) {
	in.Mouse.Left.record(next.Mouse.Left)
	in.Mouse.Right.record(next.Mouse.Right)
	in.Mouse.Middle.record(next.Mouse.Middle)
	in.Mouse.PrevPos = in.Mouse.Pos
	in.Mouse.Pos = next.Mouse.Pos
	in.Mouse.WheelDelta = next.Mouse.WheelDelta

	in.W.record(next.W)
	in.A.record(next.A)
	in.S.record(next.S)
	in.D.record(next.D)
	in.Up.record(next.Up)
	in.Left.record(next.Left)
	in.Down.record(next.Down)
	in.Right.record(next.Right)
	in.Esc.record(next.Esc)
}

// Key names accepted by KeyByName, used by test scripts and config.
const (
	KeyW     = "w"
	KeyA     = "a"
	KeyS     = "s"
	KeyD     = "d"
	KeyUp    = "up"
	KeyLeft  = "left"
	KeyDown  = "down"
	KeyRight = "right"
	KeyEsc   = "esc"
)

// KeyByName returns the button for a key name, or nil if the name is unknown.
func (in *InputController) KeyByName(name string) *ButtonState {
	switch name {
	case KeyW:
		return &in.W
	case KeyA:
		return &in.A
	case KeyS:
		return &in.S
	case KeyD:
		return &in.D
	case KeyUp:
		return &in.Up
	case KeyLeft:
		return &in.Left
	case KeyDown:
		return &in.Down
	case KeyRight:
		return &in.Right
	case KeyEsc:
		return &in.Esc
	}
	return nil
}
