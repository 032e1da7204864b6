package ecs

import (
	"github.com/phanxgames/oxide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EditEventType is the Donburi event type for oxide editor events.
var EditEventType = events.NewEventType[oxide.EditEvent]()

// HandleEvents are the event types of a handle drag. Pass them to
// NewDonburiSink to leave camera resets out of the world.
var HandleEvents = []oxide.EditEventType{
	oxide.EventHandlePicked,
	oxide.EventHandleMoved,
	oxide.EventHandleReleased,
}

type donburiSink struct {
	world donburi.World
	only  map[oxide.EditEventType]bool // nil publishes every type
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on EditEventType until ProcessEvents runs. With types given, events
// of any other type are dropped before they reach the queue.
func NewDonburiSink(world donburi.World, types ...oxide.EditEventType) oxide.EventSink {
	s := &donburiSink{world: world}
	if len(types) > 0 {
		s.only = make(map[oxide.EditEventType]bool, len(types))
		for _, t := range types {
			s.only[t] = true
		}
	}
	return s
}

func (s *donburiSink) EmitEvent(event oxide.EditEvent) {
	if s.only != nil && !s.only[event.Type] {
		return
	}
	EditEventType.Publish(s.world, event)
}
