package oxide

// Renderer runs one frame of the editor. The platform calls through this
// interface so the implementation behind it can be replaced while the host
// loop keeps running.
type Renderer interface {
	UpdateAndRender(s *GameState, in *InputController, buf *OffscreenBuffer)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s *GameState, in *InputController, buf *OffscreenBuffer)

// UpdateAndRender calls f(s, in, buf).
func (f RendererFunc) UpdateAndRender(s *GameState, in *InputController, buf *OffscreenBuffer) {
	f(s, in, buf)
}

// DefaultRenderer is the built-in frame implementation.
var DefaultRenderer Renderer = RendererFunc(UpdateAndRender)

// UpdateAndRender advances the session by one frame and draws it into buf.
//
// The frame runs in a fixed order: measure DeltaTime, rederive the camera
// scale from the buffer size, advance a running camera glide, apply input,
// render, and log frame statistics. A malformed buffer or a corrupted
// selection panics.
func UpdateAndRender(s *GameState, in *InputController, buf *OffscreenBuffer) {
	debugCheckBuffer(buf)

	now := s.now()
	if !s.lastFrame.IsZero() {
		s.DeltaTime = float32(now.Sub(s.lastFrame).Seconds())
	}
	s.lastFrame = now

	s.Camera.UpdateScale(buf.Width, buf.Height)
	s.Camera.update(s.DeltaTime)

	updateController(s, in)
	Render(s, buf)

	s.debugLogStats(now)
}
