// Package oxide is a software-rendered 2D curve editor engine.
//
// Oxide keeps a camera over an infinite world plane, rasterizes a unit grid,
// cubic Bézier curves and their handles directly into a CPU pixel buffer, and
// lets a pointer pick and drag curve handles. It has no window of its own: a
// host (see the platform package, built on [Ebitengine]) owns the buffer and
// the event pump and calls [UpdateAndRender] once per frame.
//
// # Quick start
//
//	state := oxide.NewGameState()
//	state.AddCurve(oxide.NewBezierCurve(
//		oxide.Vec2{X: 0, Y: 0.5}, oxide.Vec2{X: 1, Y: 0},
//		oxide.Vec2{X: 1, Y: 1.6}, oxide.Vec2{X: 0, Y: 2},
//	))
//	platform.Run(oxide.DefaultRenderer, state, platform.RunConfig{
//		Title: "oxide", Width: 1600, Height: 900,
//	})
//
// For headless use, allocate an [OffscreenBuffer] and drive the frame
// yourself:
//
//	buf := oxide.NewOffscreenBuffer(1600, 900)
//	var in oxide.InputController
//	oxide.UpdateAndRender(state, &in, buf)
//
// # Coordinates
//
// World space is a plane of float32 units with y growing downward, matching
// the screen. The [Camera] centers on (X, Y) and shows Height world units
// vertically; its YScale (pixels per unit) is derived from the window height
// each frame, and Width from the window width, so resizing reveals more of
// the world instead of stretching it.
//
// # Pixels
//
// [OffscreenBuffer] is top-down 32-bit BGRX. Colors are 0xAARRGGBB; alpha
// 255 overwrites and lower alpha blends linearly per channel. The rasterizer
// clamps negative coordinates to zero and drops pixels past the right and
// bottom edges.
//
// # Editing
//
// A left press on a handle (within [DefaultPickRadius]) starts a drag; the
// handle follows the cursor until release. A left drag elsewhere pans the
// world, the right button recenters on the origin, W/A/S/D and the arrow keys
// pan, the wheel zooms and a middle click glides the camera to the cursor
// (via [gween]). Editor actions are reported to an optional [EventSink]; the
// ecs module forwards them into a [Donburi] world.
//
// # Scripted input
//
// [LoadTestScript] reads a JSON list of actions (press, move, release, click,
// drag, rightclick, middleclick, key, wheel, wait, screenshot) and replays
// them one frame at a time; [SaveScreenshot] writes the buffer as PNG or BMP.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package oxide
