package oxide

// The Inject methods queue synthetic raw input frames. Screen coordinates
// are window pixels, exactly what the platform would report; negative values
// clamp to zero. Each queued frame is consumed by one call to Next.
//
// A press away from the current pointer position first queues a hover move
// to that position, so the press itself never carries a pointer jump that
// the controller would read as a pan.

// InjectMove queues a pointer move with the buttons left as they are.
func (r *TestRunner) InjectMove(x, y float64) {
	r.cur.Mouse.Pos = screenPos(x, y)
	r.push()
}

// InjectPress queues a left-button press at (x, y).
func (r *TestRunner) InjectPress(x, y float64) {
	r.moveTo(x, y)
	r.cur.Mouse.Left.IsDown = true
	r.push()
}

// InjectRelease queues a left-button release at (x, y).
func (r *TestRunner) InjectRelease(x, y float64) {
	r.cur.Mouse.Pos = screenPos(x, y)
	r.cur.Mouse.Left.IsDown = false
	r.push()
}

// InjectClick queues a press followed by a release at (x, y).
func (r *TestRunner) InjectClick(x, y float64) {
	r.InjectPress(x, y)
	r.InjectRelease(x, y)
}

// InjectDrag queues a left-button drag from (fromX, fromY) to (toX, toY).
// The button is held for frames frames (minimum 2): the press at the start
// point, then moves linearly interpolated so the last held frame sits on the
// end point. A release frame at the end point follows.
func (r *TestRunner) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	r.InjectPress(fromX, fromY)
	for i := 1; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		r.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	r.InjectRelease(toX, toY)
}

// InjectRightClick queues a right-button press and release at (x, y).
func (r *TestRunner) InjectRightClick(x, y float64) {
	r.moveTo(x, y)
	r.cur.Mouse.Right.IsDown = true
	r.push()
	r.cur.Mouse.Right.IsDown = false
	r.push()
}

// InjectMiddleClick queues a middle-button press and release at (x, y).
func (r *TestRunner) InjectMiddleClick(x, y float64) {
	r.moveTo(x, y)
	r.cur.Mouse.Middle.IsDown = true
	r.push()
	r.cur.Mouse.Middle.IsDown = false
	r.push()
}

// InjectKey holds the named key for frames frames (minimum 1) and queues a
// release frame after them. It reports false for an unknown key name.
func (r *TestRunner) InjectKey(name string, frames int) bool {
	key := r.cur.KeyByName(name)
	if key == nil {
		return false
	}
	key.IsDown = true
	for range max(frames, 1) {
		r.push()
	}
	key.IsDown = false
	r.push()
	return true
}

// InjectWheel queues one frame of wheel movement.
func (r *TestRunner) InjectWheel(delta int16) {
	r.cur.Mouse.WheelDelta = delta
	r.push()
	r.cur.Mouse.WheelDelta = 0
}

func (r *TestRunner) moveTo(x, y float64) {
	if p := screenPos(x, y); p != r.cur.Mouse.Pos {
		r.cur.Mouse.Pos = p
		r.push()
	}
}

func (r *TestRunner) push() {
	r.queue = append(r.queue, r.cur)
}

// pop removes and returns the oldest queued frame.
func (r *TestRunner) pop() InputController {
	f := r.queue[0]
	copy(r.queue, r.queue[1:])
	r.queue = r.queue[:len(r.queue)-1]
	return f
}

func screenPos(x, y float64) Vec2UInt {
	return Vec2UInt{X: satU32(float32(x)), Y: satU32(float32(y))}
}
