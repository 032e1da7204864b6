package oxide

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	hudMarginX    = 8
	hudLineHeight = 15
)

// hudLines formats the overlay text for the current frame.
func hudLines(s *GameState) []string {
	cam := &s.Camera
	lines := []string{
		fmt.Sprintf("frame %.2f ms", s.DeltaTime*1000),
		fmt.Sprintf("camera %.3f, %.3f  height %.2f  scale %.1f px/u", cam.X, cam.Y, cam.Height, cam.YScale),
		fmt.Sprintf("cursor %.3f, %.3f", s.cursor.X, s.cursor.Y),
	}
	if s.HasSelection() {
		lines = append(lines, fmt.Sprintf("dragging curve %d P%d", s.SelectedCurve, s.SelectedPoint.index()))
	}
	if slot, d, ok := s.NearestCurve(s.cursor); ok {
		lines = append(lines, fmt.Sprintf("nearest curve %d at %.3f", slot, d))
	}
	return lines
}

// drawHUD draws the overlay text into the top-left corner of the buffer.
func drawHUD(s *GameState, buf *OffscreenBuffer) {
	d := font.Drawer{
		Dst:  buf,
		Src:  image.NewUniform(argbColor(ColorHUD)),
		Face: basicfont.Face7x13,
	}
	for i, line := range hudLines(s) {
		d.Dot = fixed.P(hudMarginX, hudLineHeight*(i+1))
		d.DrawString(line)
	}
}
