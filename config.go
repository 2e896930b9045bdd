package tweenjump

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfigYAML []byte

// Config is the YAML-backed configuration of the demo: window, asset
// sources and the scene layout including the motion.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Assets AssetConfig  `yaml:"assets"`
	Scene  SceneConfig  `yaml:"scene"`
}

// WindowConfig sizes the window and the logical screen.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	TPS     int    `yaml:"tps"`
	ShowFPS bool   `yaml:"showFPS"`
}

// AssetConfig maps texture keys to paths. Paths resolve against BaseURL when
// it is set, otherwise against Dir.
type AssetConfig struct {
	BaseURL string            `yaml:"baseURL"`
	Dir     string            `yaml:"dir"`
	Images  map[string]string `yaml:"images"`
}

// SpriteConfig places a texture. Zero Width/Height keep the texture's size.
type SpriteConfig struct {
	Key    string  `yaml:"key"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SceneConfig lays out the hello-world scene.
type SceneConfig struct {
	Background SpriteConfig `yaml:"background"`
	Sprite     SpriteConfig `yaml:"sprite"`
	Motion     MotionConfig `yaml:"motion"`
}

// MotionConfig is the serializable part of a MotionDescriptor. The start
// point is the sprite's position. When FirstDuration and SecondDuration are
// both zero, TotalDuration is split evenly between the legs.
type MotionConfig struct {
	PeakY          float64       `yaml:"peakY"`
	DestX          float64       `yaml:"destX"`
	DestY          float64       `yaml:"destY"`
	TotalDuration  time.Duration `yaml:"totalDuration"`
	FirstDuration  time.Duration `yaml:"firstDuration"`
	SecondDuration time.Duration `yaml:"secondDuration"`
	Easing         string        `yaml:"easing"`
	Loop           bool          `yaml:"loop"`
	LoopDelay      time.Duration `yaml:"loopDelay"`
}

// Durations returns the ascend and descend durations.
func (m MotionConfig) Durations() (first, second time.Duration) {
	if m.FirstDuration != 0 || m.SecondDuration != 0 {
		return m.FirstDuration, m.SecondDuration
	}
	first = m.TotalDuration / 2
	return first, m.TotalDuration - first
}

// Descriptor builds a MotionDescriptor for target starting at the configured
// sprite position. It fails only for an unknown easing name; geometry is
// checked by Validate.
func (c SceneConfig) Descriptor(target *Node) (MotionDescriptor, error) {
	easing := Quadratic
	if c.Motion.Easing != "" {
		var ok bool
		easing, ok = EasingByName(c.Motion.Easing)
		if !ok {
			return MotionDescriptor{}, fmt.Errorf("unknown easing %q (want one of %s)",
				c.Motion.Easing, strings.Join(EasingNames(), ", "))
		}
	}
	first, second := c.Motion.Durations()
	return MotionDescriptor{
		Target:         target,
		StartX:         c.Sprite.X,
		StartY:         c.Sprite.Y,
		PeakY:          c.Motion.PeakY,
		DestX:          c.Motion.DestX,
		DestY:          c.Motion.DestY,
		FirstDuration:  first,
		SecondDuration: second,
		Easing:         easing,
	}, nil
}

// DefaultConfig returns the embedded hello-world configuration.
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("tweenjump: embedded default config: %v", err))
	}
	return cfg
}

// LoadConfig decodes the YAML file at path over DefaultConfig, so a file only
// needs the keys it changes. Image maps are merged key by key. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks semantic constraints and reports every problem at once.
func (c Config) Validate() error {
	var errs []string

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Sprintf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS < 0 {
		errs = append(errs, fmt.Sprintf("window.tps %d must not be negative", c.Window.TPS))
	}
	for _, sc := range []struct {
		name string
		cfg  SpriteConfig
	}{{"background", c.Scene.Background}, {"sprite", c.Scene.Sprite}} {
		if sc.cfg.Key == "" {
			continue
		}
		if _, ok := c.Assets.Images[sc.cfg.Key]; !ok {
			errs = append(errs, fmt.Sprintf("scene.%s.key %q has no entry in assets.images", sc.name, sc.cfg.Key))
		}
		if sc.cfg.Width < 0 || sc.cfg.Height < 0 {
			errs = append(errs, fmt.Sprintf("scene.%s size must not be negative", sc.name))
		}
	}
	if c.Scene.Motion.LoopDelay < 0 {
		errs = append(errs, "scene.motion.loopDelay must not be negative")
	}

	d, err := c.Scene.Descriptor(nil)
	if err != nil {
		errs = append(errs, "scene.motion: "+err.Error())
	} else if err := Validate(d); err != nil {
		errs = append(errs, "scene.motion: "+err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
