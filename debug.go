package oxide

import (
	"fmt"
	"log/slog"
	"time"
)

// debugCheckSelection panics when the selection does not reference a handle
// of a stored curve. A violation means the state was corrupted outside the
// controller.
func debugCheckSelection(s *GameState) {
	if s.SelectedCurve == NoSelection {
		return
	}
	if s.SelectedCurve < 0 || s.SelectedCurve >= MaxCurves {
		panic(fmt.Sprintf("oxide: selected curve %d out of range 0..%d", s.SelectedCurve, MaxCurves-1))
	}
	if s.Curves[s.SelectedCurve] == nil {
		panic(fmt.Sprintf("oxide: selected curve %d is an empty slot", s.SelectedCurve))
	}
	if s.SelectedPoint != ControlPointP1 && s.SelectedPoint != ControlPointP2 {
		panic(fmt.Sprintf("oxide: selected point id %d is not a handle", s.SelectedPoint))
	}
}

// debugCheckBuffer panics when the host hands over a malformed buffer.
func debugCheckBuffer(buf *OffscreenBuffer) {
	if err := buf.Validate(); err != nil {
		panic(fmt.Sprintf("oxide: %v", err))
	}
}

// statsInterval is the minimum time between frame-stat log lines.
const statsInterval = time.Second

// debugLogStats logs frame time and FPS at most once per statsInterval.
func (s *GameState) debugLogStats(now time.Time) {
	s.frames++
	if s.Logger == nil {
		return
	}
	if s.lastStats.IsZero() {
		s.lastStats = now
		s.frames = 0
		return
	}
	elapsed := now.Sub(s.lastStats)
	if elapsed < statsInterval {
		return
	}
	fps := float64(s.frames) / elapsed.Seconds()
	s.Logger.Debug("frame stats",
		slog.Float64("frame_ms", float64(s.DeltaTime)*1000),
		slog.Float64("fps", fps),
		slog.Float64("camera_x", float64(s.Camera.X)),
		slog.Float64("camera_y", float64(s.Camera.Y)),
		slog.Float64("camera_height", float64(s.Camera.Height)),
	)
	s.lastStats = now
	s.frames = 0
}
