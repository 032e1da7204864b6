package oxide

import (
	"math/rand"
	"testing"

	"github.com/tanema/gween/ease"
)

// scenarioCamera is the 1600x900 window with a 9-unit-high view on the
// origin: YScale 100, Width 16.
func scenarioCamera() Camera {
	cam := NewCamera(0, 0, DefaultCameraHeight, DefaultCameraHeight)
	cam.UpdateScale(1600, 900)
	return cam
}

func TestCameraUpdateScale(t *testing.T) {
	cam := scenarioCamera()
	if cam.YScale != 100 {
		t.Errorf("YScale = %v, want 100", cam.YScale)
	}
	if cam.Width != 16 {
		t.Errorf("Width = %v, want 16", cam.Width)
	}

	// Resizing keeps the scale tied to height and widens the view.
	cam.UpdateScale(1800, 900)
	if cam.YScale != 100 || cam.Width != 18 {
		t.Errorf("after resize YScale = %v Width = %v, want 100, 18", cam.YScale, cam.Width)
	}
}

func TestCameraUpdateScaleIgnoresDegenerate(t *testing.T) {
	cam := scenarioCamera()
	cam.UpdateScale(1600, 0)
	if cam.YScale != 100 {
		t.Errorf("YScale = %v after zero height, want unchanged 100", cam.YScale)
	}
	cam.Height = 0
	cam.UpdateScale(1600, 900)
	if cam.YScale != 100 {
		t.Errorf("YScale = %v with zero camera height, want unchanged 100", cam.YScale)
	}
}

func TestWorldToScreen(t *testing.T) {
	cam := scenarioCamera()
	tests := []struct {
		world Vec2
		want  Vec2UInt
	}{
		{Vec2{}, Vec2UInt{800, 450}},
		{Vec2{X: 1, Y: 0}, Vec2UInt{900, 450}},
		{Vec2{X: -8, Y: -4.5}, Vec2UInt{0, 0}},
		{Vec2{X: -20, Y: -20}, Vec2UInt{0, 0}},
	}
	for _, tt := range tests {
		if got := cam.WorldToScreen(tt.world); got != tt.want {
			t.Errorf("WorldToScreen(%v) = %v, want %v", tt.world, got, tt.want)
		}
	}

	if got := cam.WorldToScreenInt(Vec2{X: -9, Y: -5}); got != (Vec2Int{-100, -50}) {
		t.Errorf("WorldToScreenInt keeps negatives: got %v", got)
	}
}

func TestScreenToWorld(t *testing.T) {
	cam := scenarioCamera()
	if got := cam.ScreenToWorld(Vec2UInt{950, 450}); got != (Vec2{X: 1.5, Y: 0}) {
		t.Errorf("ScreenToWorld(950,450) = %v, want (1.5, 0)", got)
	}
	cam.X, cam.Y = 2, -1
	if got := cam.ScreenToWorld(Vec2UInt{800, 450}); got != (Vec2{X: 2, Y: -1}) {
		t.Errorf("screen center = %v, want camera center", got)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cam := scenarioCamera()
	for i := 0; i < 500; i++ {
		cam.X = rng.Float32()*100 - 50
		cam.Y = rng.Float32()*100 - 50
		p := Vec2{X: cam.X + rng.Float32()*16 - 8, Y: cam.Y + rng.Float32()*9 - 4.5}
		back := cam.ScreenToWorldF(cam.WorldToScreenF(p))
		if !approxVec(back, p, 1e-3) {
			t.Fatalf("roundtrip %v -> %v (camera %v,%v)", p, back, cam.X, cam.Y)
		}
	}
}

func TestWorldToScreenRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		cam := NewCamera(rng.Float32()*100-50, rng.Float32()*100-50, 1, 1+rng.Float32()*199)
		winW := 1 + rng.Intn(2560)
		winH := 1 + rng.Intn(1440)
		cam.UpdateScale(winW, winH)

		s := Vec2{X: rng.Float32() * float32(winW), Y: rng.Float32() * float32(winH)}
		back := cam.WorldToScreenF(cam.ScreenToWorldF(s))
		if !approxVec(back, s, 0.1) {
			t.Fatalf("roundtrip %v -> %v (camera %+v, window %dx%d)", s, back, cam, winW, winH)
		}
	}
}

func TestCameraBounds(t *testing.T) {
	cam := scenarioCamera()
	cam.X, cam.Y = 1, 2
	want := Rect{X: -7, Y: -2.5, Width: 16, Height: 9}
	if got := cam.Bounds(); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

func TestCameraZoom(t *testing.T) {
	cam := scenarioCamera()
	cam.Zoom(1)
	if !approxEqual(cam.Height, 8.1, epsilon) {
		t.Errorf("Height after zoom in = %v, want 8.1", cam.Height)
	}
	// The window is still 1600x900 pixels.
	if !approxEqual(cam.Height*cam.YScale, 900, 1e-2) || !approxEqual(cam.Width*cam.YScale, 1600, 1e-2) {
		t.Errorf("zoom changed pixel extent: %v x %v", cam.Width*cam.YScale, cam.Height*cam.YScale)
	}

	cam.Zoom(-1)
	if !approxEqual(cam.Height, 9, 1e-4) {
		t.Errorf("Height after zoom out = %v, want 9", cam.Height)
	}

	cam.Zoom(1000)
	if cam.Height != MinCameraHeight {
		t.Errorf("Height = %v, want clamped to %v", cam.Height, MinCameraHeight)
	}
	cam.Zoom(-1000)
	if cam.Height != MaxCameraHeight {
		t.Errorf("Height = %v, want clamped to %v", cam.Height, MaxCameraHeight)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := scenarioCamera()
	cam.ScrollTo(Vec2{X: 4, Y: -2}, 1.0, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("Scrolling() = false after ScrollTo")
	}

	cam.update(0.5)
	if !approxEqual(cam.X, 2, 1e-3) || !approxEqual(cam.Y, -1, 1e-3) {
		t.Errorf("halfway = (%v, %v), want (2, -1)", cam.X, cam.Y)
	}

	cam.update(0.6)
	if !approxEqual(cam.X, 4, 1e-4) || !approxEqual(cam.Y, -2, 1e-4) {
		t.Errorf("end = (%v, %v), want (4, -2)", cam.X, cam.Y)
	}
	if cam.Scrolling() {
		t.Error("Scrolling() = true after the tween finished")
	}
}

func TestCameraCancelScroll(t *testing.T) {
	cam := scenarioCamera()
	cam.ScrollTo(Vec2{X: 4, Y: 0}, 1.0, ease.Linear)
	cam.update(0.25)
	x := cam.X
	cam.CancelScroll()
	cam.update(0.5)
	if cam.X != x || cam.Scrolling() {
		t.Errorf("camera moved after CancelScroll: %v -> %v", x, cam.X)
	}
}
