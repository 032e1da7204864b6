package oxide

import (
	"fmt"
	"log/slog"
	"time"
)

// MaxCurves is the number of curve slots in a GameState.
const MaxCurves = 8

// NoSelection is the SelectedCurve value when no handle is being dragged.
const NoSelection = -1

const (
	// DefaultCameraSpeed is the keyboard pan speed in world units per unit of
	// DeltaTime along one axis.
	DefaultCameraSpeed float32 = 0.005
	// DefaultCameraSpeedDiag is the per-axis speed for diagonal pans.
	DefaultCameraSpeedDiag float32 = 0.0035
)

// GameState is the editor session: camera, curve slots, selection and timing.
// It is owned by the host and mutated only by UpdateAndRender.
type GameState struct {
	// DeltaTime is the time since the previous frame in seconds. The engine
	// measures it from Clock after the first frame; the value present on the
	// first frame is used as is.
	DeltaTime float32

	Camera Camera
	Curves [MaxCurves]*BezierCurve

	// SelectedCurve is the slot of the curve whose handle is being dragged, or
	// NoSelection. SelectedPoint is meaningful only while a curve is selected.
	SelectedCurve int
	SelectedPoint ControlPoint

	CameraSpeed     float32
	CameraSpeedDiag float32
	PickRadius      float32
	ShowHUD         bool

	// Logger receives frame statistics at debug level. Nil disables them.
	Logger *slog.Logger
	// Sink receives editor events. Nil drops them.
	Sink EventSink
	// Clock returns the current time. Nil means time.Now.
	Clock func() time.Time

	cursor    Vec2 // world position of the pointer, for the HUD
	lastFrame time.Time
	lastStats time.Time
	frames    int
}

// NewGameState creates a session with a camera of DefaultCameraHeight centered
// on the origin and no curves. The first UpdateAndRender derives the scale.
func NewGameState() *GameState {
	return &GameState{
		Camera:          NewCamera(0, 0, DefaultCameraHeight, DefaultCameraHeight),
		SelectedCurve:   NoSelection,
		CameraSpeed:     DefaultCameraSpeed,
		CameraSpeedDiag: DefaultCameraSpeedDiag,
		PickRadius:      DefaultPickRadius,
	}
}

// AddCurve stores c in the first empty slot and returns the slot index.
func (s *GameState) AddCurve(c *BezierCurve) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("add curve: nil curve")
	}
	for i, slot := range s.Curves {
		if slot == nil {
			s.Curves[i] = c
			return i, nil
		}
	}
	return 0, fmt.Errorf("add curve: all %d slots in use", MaxCurves)
}

// RemoveCurve empties slot i. Removing the selected curve clears the
// selection.
func (s *GameState) RemoveCurve(i int) {
	if i < 0 || i >= MaxCurves {
		return
	}
	s.Curves[i] = nil
	if s.SelectedCurve == i {
		s.SelectedCurve = NoSelection
	}
}

// Curve returns the curve in slot i, or nil for an empty or invalid slot.
func (s *GameState) Curve(i int) *BezierCurve {
	if i < 0 || i >= MaxCurves {
		return nil
	}
	return s.Curves[i]
}

// HasSelection reports whether a handle is being dragged.
func (s *GameState) HasSelection() bool {
	return s.SelectedCurve != NoSelection
}

// pick hit-tests every curve's handles in slot order and returns the first
// match.
func (s *GameState) pick(p Vec2) (int, ControlPoint, bool) {
	for i, c := range s.Curves {
		if c == nil {
			continue
		}
		if h, ok := c.HitHandle(p, s.pickRadius()); ok {
			return i, h, true
		}
	}
	return NoSelection, 0, false
}

func (s *GameState) pickRadius() float32 {
	if s.PickRadius > 0 {
		return s.PickRadius
	}
	return DefaultPickRadius
}

func (s *GameState) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// NearestCurve returns the slot of the curve closest to p and the sampled
// distance to it. ok is false when no slot holds a curve.
func (s *GameState) NearestCurve(p Vec2) (slot int, dist float32, ok bool) {
	slot = NoSelection
	for i, c := range s.Curves {
		if c == nil {
			continue
		}
		d := c.MinDistance(p)
		if !ok || d < dist {
			slot, dist, ok = i, d, true
		}
	}
	return slot, dist, ok
}
