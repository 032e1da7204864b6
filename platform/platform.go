// Package platform hosts the oxide engine in an Ebitengine window. It owns
// the offscreen buffer, turns Ebitengine's keyboard and mouse state into an
// [oxide.InputController] each tick, and blits the rendered frame to the
// screen.
package platform

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/oxide"
)

// RunConfig configures the window and host behaviour for Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool

	// ScreenshotDir and ScreenshotFormat control where F12 and scripted
	// screenshots go. Empty values mean "screenshots" and PNG.
	ScreenshotDir    string
	ScreenshotFormat string

	// Runner, when set, replaces live input with the scripted runner.
	Runner *oxide.TestRunner
	// ExitWhenDone closes the window once Runner has finished.
	ExitWhenDone bool

	// Logger receives host messages. Nil means slog.Default().
	Logger *slog.Logger
}

// Run opens a window and calls r once per tick until the window is closed or
// Escape is pressed.
func Run(r oxide.Renderer, state *oxide.GameState, cfg RunConfig) error {
	if r == nil {
		r = oxide.DefaultRenderer
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(newHost(r, state, cfg)); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// host implements ebiten.Game around one editor session.
type host struct {
	renderer oxide.Renderer
	state    *oxide.GameState
	cfg      RunConfig
	log      *slog.Logger

	input  oxide.InputController
	buf    *oxide.OffscreenBuffer
	pixels []byte
	wheel  wheelAccumulator
}

func newHost(r oxide.Renderer, state *oxide.GameState, cfg RunConfig) *host {
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &host{renderer: r, state: state, cfg: cfg, log: logger.With("component", "platform")}
}

// Update runs one engine frame.
func (h *host) Update() error {
	if h.buf == nil {
		return nil
	}

	var labels []string
	if h.cfg.Runner != nil {
		labels = h.cfg.Runner.Next(&h.input)
	} else {
		h.input.Update(h.poll())
	}
	if h.input.Esc.Pressed() {
		return ebiten.Termination
	}

	h.renderer.UpdateAndRender(h.state, &h.input, h.buf)

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		labels = append(labels, "manual")
	}
	for _, label := range labels {
		path, err := oxide.SaveScreenshot(h.cfg.ScreenshotDir, label, h.cfg.ScreenshotFormat, h.buf)
		if err != nil {
			h.log.Error("screenshot failed", "label", label, "err", err)
			continue
		}
		h.log.Info("screenshot saved", "path", path)
	}

	if h.cfg.Runner != nil && h.cfg.ExitWhenDone && h.cfg.Runner.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw copies the last rendered frame to the screen.
func (h *host) Draw(screen *ebiten.Image) {
	if h.buf == nil {
		return
	}
	b := screen.Bounds()
	if b.Dx() != h.buf.Width || b.Dy() != h.buf.Height {
		return
	}
	h.buf.CopyRGBA(h.pixels)
	screen.WritePixels(h.pixels)
}

// Layout reallocates the offscreen buffer whenever the window size changes.
// Ebitengine calls it between ticks, so the engine never sees a buffer
// change mid-frame.
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, ht := max(outsideWidth, 1), max(outsideHeight, 1)
	if h.buf == nil || h.buf.Width != w || h.buf.Height != ht {
		h.buf = oxide.NewOffscreenBuffer(w, ht)
		h.pixels = make([]byte, w*ht*oxide.BytesPerPixel)
		h.log.Debug("buffer resized", "width", w, "height", ht)
	}
	return w, ht
}

// poll samples Ebitengine's input state into a raw snapshot.
func (h *host) poll() oxide.InputController {
	var next oxide.InputController

	mx, my := ebiten.CursorPosition()
	next.Mouse.Pos = clampCursor(mx, my)
	next.Mouse.Left.IsDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	next.Mouse.Right.IsDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	next.Mouse.Middle.IsDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	_, wy := ebiten.Wheel()
	next.Mouse.WheelDelta = h.wheel.add(wy)

	next.W.IsDown = ebiten.IsKeyPressed(ebiten.KeyW)
	next.A.IsDown = ebiten.IsKeyPressed(ebiten.KeyA)
	next.S.IsDown = ebiten.IsKeyPressed(ebiten.KeyS)
	next.D.IsDown = ebiten.IsKeyPressed(ebiten.KeyD)
	next.Up.IsDown = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	next.Left.IsDown = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	next.Down.IsDown = ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	next.Right.IsDown = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	next.Esc.IsDown = ebiten.IsKeyPressed(ebiten.KeyEscape)
	return next
}

// clampCursor converts a cursor position to unsigned window pixels. A cursor
// left of or above the window reads as zero.
func clampCursor(x, y int) oxide.Vec2UInt {
	return oxide.Vec2UInt{X: uint32(max(x, 0)), Y: uint32(max(y, 0))}
}

// wheelAccumulator turns fractional wheel offsets (trackpads report them)
// into whole zoom steps, carrying the remainder to later ticks.
type wheelAccumulator struct {
	acc float64
}

func (w *wheelAccumulator) add(offset float64) int16 {
	w.acc += offset
	steps := math.Trunc(w.acc)
	w.acc -= steps
	return int16(max(min(steps, math.MaxInt16), math.MinInt16))
}
