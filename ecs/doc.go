// Package ecs forwards oxide editor events into a [Donburi] world.
//
// [NewDonburiSink] publishes each [oxide.EditEvent] as a typed Donburi event,
// optionally limited to a set of event types such as [HandleEvents]. Subscribe
// to [EditEventType] in your ECS systems to receive them:
//
//	state.Sink = ecs.NewDonburiSink(world)
//	ecs.EditEventType.Subscribe(world, onEdit)
//	// once per frame, after UpdateAndRender:
//	ecs.EditEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
