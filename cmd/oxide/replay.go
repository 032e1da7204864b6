package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/phanxgames/oxide"
	"github.com/phanxgames/oxide/internal/config"
	applog "github.com/phanxgames/oxide/internal/log"
)

const (
	// replayFrame is the simulated frame time of a headless replay.
	replayFrame = time.Second / 60
	// maxReplayFrames stops a replay whose script never finishes.
	maxReplayFrames = 1 << 20
)

func replayFile(cfg config.AppConfig, scriptPath, outDir string) ([]string, error) {
	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	runner, err := oxide.LoadTestScript(data)
	if err != nil {
		return nil, err
	}
	state, err := cfg.NewGameState()
	if err != nil {
		return nil, err
	}
	return replay(state, runner, cfg.Window.Width, cfg.Window.Height, outDir, cfg.Screenshots.Format)
}

// replay drives runner against state in a width by height offscreen buffer
// on a simulated 60 Hz clock and returns the screenshot paths it wrote.
func replay(state *oxide.GameState, runner *oxide.TestRunner, width, height int, outDir, format string) ([]string, error) {
	l := applog.WithOperation(applog.WithComponent("replay"), "replay")
	state.Logger = l

	start := time.Unix(0, 0)
	frame := 0
	state.Clock = func() time.Time { return start.Add(time.Duration(frame) * replayFrame) }
	state.DeltaTime = float32(replayFrame.Seconds())

	buf := oxide.NewOffscreenBuffer(width, height)
	var in oxide.InputController
	var paths []string
	for ; !runner.Done(); frame++ {
		if frame >= maxReplayFrames {
			return paths, fmt.Errorf("replay: script still running after %d frames", maxReplayFrames)
		}
		labels := runner.Next(&in)
		oxide.UpdateAndRender(state, &in, buf)
		for _, label := range labels {
			p, err := oxide.SaveScreenshot(outDir, label, format, buf)
			if err != nil {
				return paths, err
			}
			l.Info("screenshot saved", slog.String("label", label), slog.String("path", p))
			paths = append(paths, p)
		}
	}
	l.Info("replay finished", slog.Int("frames", frame), slog.Int("screenshots", len(paths)))
	return paths, nil
}
