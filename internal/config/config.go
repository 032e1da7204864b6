// Package config loads the oxide user configuration: a YAML file in the user
// config directory with environment variables as read-only overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/oxide"
)

// CurrentVersion is the config_version written by Save.
const CurrentVersion = 1

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

// CameraConfig speeds are world units per second, since the engine measures
// DeltaTime in seconds.
type CameraConfig struct {
	Height        float32 `yaml:"height"`
	Speed         float32 `yaml:"speed"`
	DiagonalSpeed float32 `yaml:"diagonal_speed"`
}

type PointConfig struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// CurveConfig is one startup curve: endpoints P0 and P3, handles P1 and P2.
type CurveConfig struct {
	P0 PointConfig `yaml:"p0"`
	P1 PointConfig `yaml:"p1"`
	P2 PointConfig `yaml:"p2"`
	P3 PointConfig `yaml:"p3"`
}

type EditorConfig struct {
	ShowHUD    bool          `yaml:"show_hud"`
	PickRadius float32       `yaml:"pick_radius"`
	Curves     []CurveConfig `yaml:"curves"`
}

type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // "png" or "bmp"
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// AppConfig is the user-editable configuration.
type AppConfig struct {
	ConfigVersion int              `yaml:"config_version"`
	Window        WindowConfig     `yaml:"window"`
	Camera        CameraConfig     `yaml:"camera"`
	Editor        EditorConfig     `yaml:"editor"`
	Screenshots   ScreenshotConfig `yaml:"screenshots"`
	Logging       LoggingConfig    `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: CurrentVersion,
		Window:        WindowConfig{Title: "oxide", Width: 1600, Height: 900, Resizable: true},
		Camera:        CameraConfig{Height: oxide.DefaultCameraHeight, Speed: 5.0, DiagonalSpeed: 3.5},
		Editor: EditorConfig{
			PickRadius: oxide.DefaultPickRadius,
			Curves: []CurveConfig{{
				P0: PointConfig{X: 0, Y: 0.5},
				P1: PointConfig{X: 1, Y: 0},
				P2: PointConfig{X: 1, Y: 1.6},
				P3: PointConfig{X: 0, Y: 2},
			}},
		},
		Screenshots: ScreenshotConfig{Dir: "screenshots", Format: oxide.FormatPNG},
		Logging:     LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names read by ConfigPath and Load.
const (
	EnvConfigPath    = "OXIDE_CONFIG"
	EnvWindowWidth   = "OXIDE_WINDOW_WIDTH"
	EnvWindowHeight  = "OXIDE_WINDOW_HEIGHT"
	EnvShowHUD       = "OXIDE_SHOW_HUD"
	EnvScreenshotDir = "OXIDE_SCREENSHOT_DIR"
	EnvLogLevel      = "OXIDE_LOG_LEVEL"
	EnvLogFormat     = "OXIDE_LOG_FORMAT"
	EnvLogSource     = "OXIDE_LOG_SOURCE"
	EnvLogFile       = "OXIDE_LOG_FILE"
)

// ConfigPath returns the config file path: $OXIDE_CONFIG if set, otherwise
// config.yaml in the per-user config directory.
func ConfigPath() (string, error) {
	var env struct{ Config string }
	if err := envconfig.Process("OXIDE", &env); err != nil {
		return "", err
	}
	if p := strings.TrimSpace(env.Config); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "oxide")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "oxide")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = filepath.Join(xdg, "oxide")
		} else {
			base = filepath.Join(os.Getenv("HOME"), ".config", "oxide")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the config file at path (ConfigPath when empty) over the
// defaults and applies environment overrides. A missing file is not an error.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	normalize(&cfg)

	env, err := readEnv()
	if err != nil {
		return cfg, err
	}
	env.apply(&cfg)
	return cfg, nil
}

// Save writes cfg as YAML to path (ConfigPath when empty).
func Save(path string, cfg AppConfig) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	cfg.ConfigVersion = CurrentVersion
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// normalize trims and lowercases enumerated string fields read from a file.
func normalize(cfg *AppConfig) {
	cfg.Screenshots.Format = strings.ToLower(strings.TrimSpace(cfg.Screenshots.Format))
	cfg.Screenshots.Dir = strings.TrimSpace(cfg.Screenshots.Dir)
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Logging.File = strings.TrimSpace(cfg.Logging.File)
}

// envOverrides holds the OXIDE_* override variables. A nil field was not set.
type envOverrides struct {
	WindowWidth   *int    `split_words:"true"`
	WindowHeight  *int    `split_words:"true"`
	ShowHUD       *bool   `split_words:"true"`
	ScreenshotDir *string `split_words:"true"`
	LogLevel      *string `split_words:"true"`
	LogFormat     *string `split_words:"true"`
	LogSource     *bool   `split_words:"true"`
	LogFile       *string `split_words:"true"`
}

func readEnv() (envOverrides, error) {
	var o envOverrides
	if err := envconfig.Process("OXIDE", &o); err != nil {
		return envOverrides{}, fmt.Errorf("environment overrides: %w", err)
	}
	return o, nil
}

// trimmed returns the trimmed value of a set string variable; blank counts as
// unset.
func trimmed(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	t := strings.TrimSpace(*v)
	return t, t != ""
}

func (o envOverrides) apply(cfg *AppConfig) {
	if o.WindowWidth != nil {
		cfg.Window.Width = *o.WindowWidth
	}
	if o.WindowHeight != nil {
		cfg.Window.Height = *o.WindowHeight
	}
	if o.ShowHUD != nil {
		cfg.Editor.ShowHUD = *o.ShowHUD
	}
	if v, ok := trimmed(o.ScreenshotDir); ok {
		cfg.Screenshots.Dir = v
	}
	if v, ok := trimmed(o.LogLevel); ok {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v, ok := trimmed(o.LogFormat); ok {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if o.LogSource != nil {
		cfg.Logging.Source = *o.LogSource
	}
	if v, ok := trimmed(o.LogFile); ok {
		cfg.Logging.File = v
	}
}

// Override names a config key whose value comes from an environment variable.
type Override struct {
	Key string
	Env string
}

func (o envOverrides) overrides() []Override {
	given := func(v *string) bool {
		_, ok := trimmed(v)
		return ok
	}
	all := []struct {
		Override
		set bool
	}{
		{Override{"window.width", EnvWindowWidth}, o.WindowWidth != nil},
		{Override{"window.height", EnvWindowHeight}, o.WindowHeight != nil},
		{Override{"editor.show_hud", EnvShowHUD}, o.ShowHUD != nil},
		{Override{"screenshots.dir", EnvScreenshotDir}, given(o.ScreenshotDir)},
		{Override{"logging.level", EnvLogLevel}, given(o.LogLevel)},
		{Override{"logging.format", EnvLogFormat}, given(o.LogFormat)},
		{Override{"logging.source", EnvLogSource}, o.LogSource != nil},
		{Override{"logging.file", EnvLogFile}, given(o.LogFile)},
	}
	var res []Override
	for _, e := range all {
		if e.set {
			res = append(res, e.Override)
		}
	}
	return res
}

// Overrides lists the config keys currently overridden by the environment,
// in file order.
func Overrides() ([]Override, error) {
	o, err := readEnv()
	if err != nil {
		return nil, err
	}
	return o.overrides(), nil
}

// Validate reports every out-of-range setting.
func (c AppConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Height < oxide.MinCameraHeight || c.Camera.Height > oxide.MaxCameraHeight {
		errs = append(errs, fmt.Errorf("camera.height %g outside [%g, %g]", c.Camera.Height, oxide.MinCameraHeight, oxide.MaxCameraHeight))
	}
	if c.Camera.Speed < 0 || c.Camera.DiagonalSpeed < 0 {
		errs = append(errs, errors.New("camera speeds must not be negative"))
	}
	if c.Editor.PickRadius <= 0 {
		errs = append(errs, fmt.Errorf("editor.pick_radius %g must be positive", c.Editor.PickRadius))
	}
	if n := len(c.Editor.Curves); n > oxide.MaxCurves {
		errs = append(errs, fmt.Errorf("editor.curves has %d entries, at most %d fit", n, oxide.MaxCurves))
	}
	if f := c.Screenshots.Format; f != "" && f != oxide.FormatPNG && f != oxide.FormatBMP {
		errs = append(errs, fmt.Errorf("screenshots.format %q must be png or bmp", f))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewGameState builds an editor session from the camera and editor settings.
func (c AppConfig) NewGameState() (*oxide.GameState, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := oxide.NewGameState()
	s.Camera.Height = c.Camera.Height
	s.CameraSpeed = c.Camera.Speed
	s.CameraSpeedDiag = c.Camera.DiagonalSpeed
	s.PickRadius = c.Editor.PickRadius
	s.ShowHUD = c.Editor.ShowHUD
	for _, cc := range c.Editor.Curves {
		if _, err := s.AddCurve(cc.curve()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (cc CurveConfig) curve() *oxide.BezierCurve {
	v := func(p PointConfig) oxide.Vec2 { return oxide.Vec2{X: p.X, Y: p.Y} }
	return oxide.NewBezierCurve(v(cc.P0), v(cc.P1), v(cc.P2), v(cc.P3))
}
