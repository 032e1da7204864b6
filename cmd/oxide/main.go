// Command oxide runs the curve editor in a window, or replays an input
// script headlessly and writes its screenshots.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phanxgames/oxide"
	"github.com/phanxgames/oxide/internal/config"
	"github.com/phanxgames/oxide/internal/crash"
	applog "github.com/phanxgames/oxide/internal/log"
	"github.com/phanxgames/oxide/internal/version"
	"github.com/phanxgames/oxide/platform"
)

func usage() {
	fmt.Println("oxide - software-rendered Bézier curve editor")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  oxide [run]                          Open the editor window")
	fmt.Println("  oxide replay <script.json> [outdir]  Replay an input script headlessly and save its screenshots")
	fmt.Println("  oxide version|-v|--version           Show version")
	fmt.Println()
	fmt.Println("Keys: left-drag handles or pan, right-click recenters, W/A/S/D or arrows pan,")
	fmt.Println("      wheel zooms, middle-click glides, F12 saves a screenshot, Esc quits.")
}

func main() {
	defer crash.Recover()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := "run"
	if len(args) > 0 {
		cmd = args[0]
	}
	switch cmd {
	case "version", "--version", "-v":
		fmt.Println(version.String())
		return 0
	case "help", "--help", "-h":
		usage()
		return 0
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	defer applog.Close()
	l := applog.WithComponent("cli")
	l.Debug("start", slog.String("cmd", cmd), slog.Int("args", len(args)))
	if overrides, err := config.Overrides(); err == nil {
		for _, o := range overrides {
			l.Debug("env override", slog.String("key", o.Key), slog.String("env", o.Env))
		}
	}

	switch cmd {
	case "run":
		if err := runWindow(cfg); err != nil {
			l.Error("run failed", slog.Any("err", err))
			fmt.Fprintln(os.Stderr, "Error:", err)
			return 1
		}
		return 0
	case "replay":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "replay requires <script.json>")
			usage()
			return 2
		}
		outDir := cfg.Screenshots.Dir
		if len(args) > 2 {
			outDir = args[2]
		}
		paths, err := replayFile(cfg, args[1], outDir)
		if err != nil {
			l.Error("replay failed", slog.Any("err", err))
			fmt.Fprintln(os.Stderr, "Error:", err)
			return 1
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		return 0
	}

	fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
	usage()
	return 2
}

func runWindow(cfg config.AppConfig) error {
	state, err := cfg.NewGameState()
	if err != nil {
		return err
	}
	state.Logger = applog.WithComponent("engine")

	return platform.Run(oxide.DefaultRenderer, state, platform.RunConfig{
		Title:            cfg.Window.Title,
		Width:            cfg.Window.Width,
		Height:           cfg.Window.Height,
		Resizable:        cfg.Window.Resizable,
		ScreenshotDir:    cfg.Screenshots.Dir,
		ScreenshotFormat: cfg.Screenshots.Format,
		Logger:           applog.L(),
	})
}
