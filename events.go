package oxide

// EditEventType identifies a kind of editor event.
type EditEventType uint8

const (
	EventHandlePicked   EditEventType = iota // a handle was picked up with the left button
	EventHandleMoved                         // the picked handle followed the cursor this frame
	EventHandleReleased                      // the left button released the picked handle
	EventCameraReset                         // the right button reset the camera to the origin
)

// String returns a short name for the event type.
func (t EditEventType) String() string {
	switch t {
	case EventHandlePicked:
		return "picked"
	case EventHandleMoved:
		return "moved"
	case EventHandleReleased:
		return "released"
	case EventCameraReset:
		return "camera-reset"
	}
	return "unknown"
}

// EditEvent carries one editor action. Curve and Point are meaningful for
// handle events only; Pos is the world position of the cursor.
type EditEvent struct {
	Type  EditEventType
	Curve int
	Point ControlPoint
	Pos   Vec2
}

// EventSink receives editor events. Set GameState.Sink to forward them, for
// example into an ECS world (see the ecs module).
type EventSink interface {
	EmitEvent(event EditEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(EditEvent)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event EditEvent) { f(event) }

func (s *GameState) emit(event EditEvent) {
	if s.Sink != nil {
		s.Sink.EmitEvent(event)
	}
}
