package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kelseyhightower/envconfig"

	"github.com/phanxgames/oxide"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	def := Defaults()
	if cfg.Window != def.Window || cfg.Camera != def.Camera {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, def)
	}
	if len(cfg.Editor.Curves) != 1 {
		t.Fatalf("curves = %d, want 1", len(cfg.Editor.Curves))
	}
}

func TestLoadFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
window:
  width: 800
editor:
  show_hud: true
screenshots:
  format: " BMP "
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("Window.Width = %d, want 800", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("Window.Height = %d, want default 900", cfg.Window.Height)
	}
	if !cfg.Editor.ShowHUD {
		t.Errorf("Editor.ShowHUD not read from file")
	}
	if len(cfg.Editor.Curves) != 1 {
		t.Errorf("default curve lost: %d curves", len(cfg.Editor.Curves))
	}
	if cfg.Screenshots.Format != "bmp" {
		t.Errorf("Screenshots.Format = %q, want bmp", cfg.Screenshots.Format)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("window: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load() error = %v, want parse error", err)
	}
}

func TestSaveLoadCurves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Defaults()
	cfg.Editor.Curves = append(cfg.Editor.Curves, CurveConfig{
		P0: PointConfig{X: -1, Y: -1},
		P1: PointConfig{X: -2, Y: 0},
		P2: PointConfig{X: 2, Y: 0},
		P3: PointConfig{X: 1, Y: 1},
	})
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(got.Editor.Curves) != 2 {
		t.Fatalf("curves = %d, want 2", len(got.Editor.Curves))
	}
	if got.Editor.Curves[1] != cfg.Editor.Curves[1] {
		t.Errorf("curve = %+v, want %+v", got.Editor.Curves[1], cfg.Editor.Curves[1])
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvWindowWidth, "1024")
	t.Setenv(EnvShowHUD, "true")
	t.Setenv(EnvScreenshotDir, " /tmp/shots ")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogSource, "1")
	t.Setenv(EnvLogFile, "  ")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("Window.Width = %d, want 1024", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("Window.Height = %d, want default 900", cfg.Window.Height)
	}
	if !cfg.Editor.ShowHUD {
		t.Errorf("Editor.ShowHUD override not applied")
	}
	if cfg.Screenshots.Dir != "/tmp/shots" {
		t.Errorf("Screenshots.Dir = %q", cfg.Screenshots.Dir)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.Source {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Logging.File != "" {
		t.Errorf("blank OXIDE_LOG_FILE applied: %q", cfg.Logging.File)
	}

	got, err := Overrides()
	if err != nil {
		t.Fatalf("Overrides() error: %v", err)
	}
	want := []Override{
		{"window.width", EnvWindowWidth},
		{"editor.show_hud", EnvShowHUD},
		{"screenshots.dir", EnvScreenshotDir},
		{"logging.level", EnvLogLevel},
		{"logging.source", EnvLogSource},
	}
	if len(got) != len(want) {
		t.Fatalf("Overrides() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("override %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEnvOverridesFalseBool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("editor:\n  show_hud: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvShowHUD, "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Editor.ShowHUD {
		t.Error("OXIDE_SHOW_HUD=false did not override the file")
	}
}

func TestEnvOverridesMalformed(t *testing.T) {
	tests := []struct {
		env, value string
	}{
		{EnvWindowWidth, "abc"},
		{EnvWindowHeight, "12.5"},
		{EnvShowHUD, "on"},
		{EnvLogSource, "yes"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
			var perr *envconfig.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Load() error = %v, want *envconfig.ParseError", err)
			}
			if perr.KeyName != tt.env || perr.Value != tt.value {
				t.Errorf("ParseError = %s=%q, want %s=%q", perr.KeyName, perr.Value, tt.env, tt.value)
			}
			if _, err := Overrides(); err == nil {
				t.Error("Overrides() accepted a malformed variable")
			}
		})
	}
}

func TestConfigPathFromEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/oxide.yaml")
	p, err := ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/etc/oxide.yaml" {
		t.Errorf("ConfigPath() = %q", p)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		want   string
	}{
		{"defaults", func(*AppConfig) {}, ""},
		{"window", func(c *AppConfig) { c.Window.Width = 0 }, "window size"},
		{"camera height", func(c *AppConfig) { c.Camera.Height = 0.5 }, "camera.height"},
		{"speed", func(c *AppConfig) { c.Camera.Speed = -1 }, "speeds"},
		{"pick radius", func(c *AppConfig) { c.Editor.PickRadius = 0 }, "pick_radius"},
		{"too many curves", func(c *AppConfig) {
			c.Editor.Curves = make([]CurveConfig, oxide.MaxCurves+1)
		}, "editor.curves"},
		{"format", func(c *AppConfig) { c.Screenshots.Format = "gif" }, "screenshots.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestNewGameState(t *testing.T) {
	cfg := Defaults()
	cfg.Camera.Height = 12
	cfg.Editor.ShowHUD = true

	s, err := cfg.NewGameState()
	if err != nil {
		t.Fatalf("NewGameState() error: %v", err)
	}
	if s.Camera.Height != 12 || s.CameraSpeed != 5 || s.CameraSpeedDiag != 3.5 {
		t.Errorf("camera settings not applied: %+v speed=%v diag=%v", s.Camera, s.CameraSpeed, s.CameraSpeedDiag)
	}
	if !s.ShowHUD || s.PickRadius != oxide.DefaultPickRadius {
		t.Errorf("editor settings not applied")
	}
	c := s.Curve(0)
	if c == nil {
		t.Fatal("default curve missing from slot 0")
	}
	if c.P1 != (oxide.Vec2{X: 1, Y: 0}) || c.P3 != (oxide.Vec2{X: 0, Y: 2}) {
		t.Errorf("curve = %+v", c)
	}
	if s.SelectedCurve != oxide.NoSelection {
		t.Errorf("SelectedCurve = %d, want none", s.SelectedCurve)
	}
}
