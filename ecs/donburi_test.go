package ecs

import (
	"testing"

	"github.com/phanxgames/oxide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []oxide.EditEvent
	EditEventType.Subscribe(world, func(w donburi.World, e oxide.EditEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(oxide.EditEvent{
		Type:  oxide.EventHandlePicked,
		Curve: 2,
		Point: oxide.ControlPointP2,
		Pos:   oxide.Vec2{X: 1, Y: 2},
	})
	sink.EmitEvent(oxide.EditEvent{Type: oxide.EventCameraReset, Curve: oxide.NoSelection})

	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	EditEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != oxide.EventHandlePicked || e0.Curve != 2 || e0.Point != oxide.ControlPointP2 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Pos != (oxide.Vec2{X: 1, Y: 2}) {
		t.Errorf("event 0 position: %+v", e0.Pos)
	}
	if received[1].Type != oxide.EventCameraReset {
		t.Errorf("event 1: %+v", received[1])
	}
}

// A drag recorded through the engine reaches ECS subscribers as
// picked, moved and released events in that order.
func TestDonburiSink_EngineDrag(t *testing.T) {
	world := donburi.NewWorld()
	var types []oxide.EditEventType
	EditEventType.Subscribe(world, func(w donburi.World, e oxide.EditEvent) {
		types = append(types, e.Type)
	})

	state := oxide.NewGameState()
	state.Sink = NewDonburiSink(world)
	if _, err := state.AddCurve(oxide.NewBezierCurve(
		oxide.Vec2{X: 0, Y: 0.5}, oxide.Vec2{X: 1, Y: 0},
		oxide.Vec2{X: 1, Y: 1.6}, oxide.Vec2{X: 0, Y: 2},
	)); err != nil {
		t.Fatal(err)
	}

	runner := oxide.NewTestRunner()
	runner.InjectDrag(900, 450, 950, 450, 2)
	buf := oxide.NewOffscreenBuffer(1600, 900)
	var in oxide.InputController
	for !runner.Done() {
		runner.Next(&in)
		oxide.UpdateAndRender(state, &in, buf)
	}
	events.ProcessAllEvents(world)

	want := []oxide.EditEventType{oxide.EventHandlePicked, oxide.EventHandleMoved, oxide.EventHandleReleased}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiSink_Filter(t *testing.T) {
	tests := []struct {
		name  string
		types []oxide.EditEventType
		want  []oxide.EditEventType
	}{
		{"all", nil, []oxide.EditEventType{oxide.EventHandlePicked, oxide.EventCameraReset, oxide.EventHandleReleased}},
		{"handles", HandleEvents, []oxide.EditEventType{oxide.EventHandlePicked, oxide.EventHandleReleased}},
		{"reset only", []oxide.EditEventType{oxide.EventCameraReset}, []oxide.EditEventType{oxide.EventCameraReset}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := donburi.NewWorld()
			var got []oxide.EditEventType
			EditEventType.Subscribe(world, func(w donburi.World, e oxide.EditEvent) {
				got = append(got, e.Type)
			})

			sink := NewDonburiSink(world, tt.types...)
			sink.EmitEvent(oxide.EditEvent{Type: oxide.EventHandlePicked})
			sink.EmitEvent(oxide.EditEvent{Type: oxide.EventCameraReset, Curve: oxide.NoSelection})
			sink.EmitEvent(oxide.EditEvent{Type: oxide.EventHandleReleased})
			EditEventType.ProcessEvents(world)

			if len(got) != len(tt.want) {
				t.Fatalf("events = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
