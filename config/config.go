// Package config loads scene, logger and audio settings through viper.
// Scene files are TOML; any key can be overridden by an ASCII_MOTION_ environment variable.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/ascii-motion/core"
	"github.com/lixenwraith/ascii-motion/parameter"
	"github.com/lixenwraith/ascii-motion/render"
	"github.com/lixenwraith/ascii-motion/vmath"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. ASCII_MOTION_GRID_WIDTH
const EnvPrefix = "ASCII_MOTION"

// Config is the full application configuration
type Config struct {
	Grid      GridConfig      `mapstructure:"grid"`
	Animation AnimationConfig `mapstructure:"animation"`
	Objects   []ObjectConfig  `mapstructure:"objects"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Audio     AudioConfig     `mapstructure:"audio"`
}

// GridConfig describes the canvas and its edge behavior
type GridConfig struct {
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	Fill    string `mapstructure:"fill"`
	Policy  string `mapstructure:"policy"`
	Padding int    `mapstructure:"padding"`
	// Insets overrides Padding per side when present
	Insets *InsetConfig `mapstructure:"insets"`
}

// InsetConfig is a per-side padding
type InsetConfig struct {
	Left   int `mapstructure:"left"`
	Top    int `mapstructure:"top"`
	Right  int `mapstructure:"right"`
	Bottom int `mapstructure:"bottom"`
}

// AnimationConfig controls simulated and wall-clock time
type AnimationConfig struct {
	// Tick is the simulated time advanced per frame
	Tick time.Duration `mapstructure:"tick"`
	// Interval is the wall-clock delay between frames in the terminal player
	Interval time.Duration `mapstructure:"interval"`
	Frames   int           `mapstructure:"frames"`
	Border   bool          `mapstructure:"border"`
}

// ObjectConfig describes one sprite and its motion
// Motion is either the cartesian vx/vy/ax/ay fields or a polar table, not both
type ObjectConfig struct {
	Name   string       `mapstructure:"name"`
	X      int          `mapstructure:"x"`
	Y      int          `mapstructure:"y"`
	Sprite string       `mapstructure:"sprite"`
	VX     float64      `mapstructure:"vx"`
	VY     float64      `mapstructure:"vy"`
	AX     float64      `mapstructure:"ax"`
	AY     float64      `mapstructure:"ay"`
	Polar  *PolarConfig `mapstructure:"polar"`
}

// PolarConfig gives speed and acceleration as magnitudes along angles
// Angles are radians unless Degrees is set
type PolarConfig struct {
	Speed      float64 `mapstructure:"speed"`
	Angle      float64 `mapstructure:"angle"`
	Accel      float64 `mapstructure:"accel"`
	AccelAngle float64 `mapstructure:"accel_angle"`
	Degrees    bool    `mapstructure:"degrees"`
}

// Radians returns the velocity and acceleration angles in radians
func (p PolarConfig) Radians() (angle, accelAngle float64) {
	if p.Degrees {
		return vmath.Degrees(p.Angle), vmath.Degrees(p.AccelAngle)
	}
	return p.Angle, p.AccelAngle
}

// LoggerConfig configures the zap logger and its optional rotating file sink
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	AddSource   bool   `mapstructure:"add_source"`
	ServiceName string `mapstructure:"service_name"`
	LogFile     string `mapstructure:"log_file"`
	MaxSize     int    `mapstructure:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	Compress    bool   `mapstructure:"compress"`
}

// AudioConfig enables collision cues
type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"`
	SampleRate int     `mapstructure:"sample_rate"`
}

// SetDefaults registers default values for every known key
func SetDefaults(v *viper.Viper) {
	// -- Grid --
	v.SetDefault("grid.width", parameter.DefaultGridWidth)
	v.SetDefault("grid.height", parameter.DefaultGridHeight)
	v.SetDefault("grid.fill", string(parameter.DefaultFill))
	v.SetDefault("grid.policy", parameter.DefaultPolicy)
	v.SetDefault("grid.padding", 0)

	// -- Animation --
	v.SetDefault("animation.tick", parameter.FrameUpdateInterval)
	v.SetDefault("animation.interval", parameter.FrameUpdateInterval)
	v.SetDefault("animation.frames", parameter.DefaultFrameCount)
	v.SetDefault("animation.border", true)

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "ascii-motion")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// -- Audio --
	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.volume", parameter.AudioDefaultVolume)
	v.SetDefault("audio.sample_rate", parameter.AudioSampleRate)
}

// NewDefaultConfig returns the configuration produced by defaults alone
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewViper returns a viper instance with defaults and environment overrides bound
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the scene file at path, or scene.toml in the working directory when path is empty
// A missing default file is not an error; a missing explicit file is
func Load(path string) (*Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("scene")
		v.SetConfigType("toml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper unmarshals and validates a prepared viper instance
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section; errors wrap core.ErrInvalidConfiguration
func (c *Config) Validate() error {
	b, err := c.Grid.Bounds()
	if err != nil {
		return err
	}
	if _, err := c.Grid.FillRune(); err != nil {
		return err
	}
	if err := c.Animation.Validate(); err != nil {
		return err
	}
	if err := c.Audio.Validate(); err != nil {
		return err
	}

	fill, _ := c.Grid.FillRune()
	for i, o := range c.Objects {
		obj, err := o.Build(fill)
		if err != nil {
			return fmt.Errorf("objects[%d] %q: %w", i, o.Name, err)
		}
		if err := b.Fits(obj.Width, obj.Height); err != nil {
			return fmt.Errorf("objects[%d] %q: %w", i, o.Name, err)
		}
	}
	return nil
}

// PaddingInsets resolves the effective per-side inset
func (g GridConfig) PaddingInsets() core.Padding {
	if g.Insets != nil {
		return core.Padding{Left: g.Insets.Left, Top: g.Insets.Top, Right: g.Insets.Right, Bottom: g.Insets.Bottom}
	}
	return core.UniformPadding(g.Padding)
}

// Bounds converts the grid section to validated core bounds
func (g GridConfig) Bounds() (core.Bounds, error) {
	policy, err := core.ParseCollisionPolicy(g.Policy)
	if err != nil {
		return core.Bounds{}, fmt.Errorf("grid.policy: %w", err)
	}
	b := core.Bounds{
		Width:   g.Width,
		Height:  g.Height,
		Policy:  policy,
		Padding: g.PaddingInsets(),
	}
	if err := b.Validate(); err != nil {
		return core.Bounds{}, fmt.Errorf("grid: %w", err)
	}
	return b, nil
}

// FillRune returns the single fill character
func (g GridConfig) FillRune() (rune, error) {
	if utf8.RuneCountInString(g.Fill) != 1 {
		return 0, fmt.Errorf("%w: grid.fill must be exactly one character, got %q", core.ErrInvalidConfiguration, g.Fill)
	}
	r, _ := utf8.DecodeRuneInString(g.Fill)
	return r, nil
}

// Validate rejects non-positive timing and negative frame counts
func (a AnimationConfig) Validate() error {
	if a.Tick <= 0 {
		return fmt.Errorf("%w: animation.tick must be a positive duration", core.ErrInvalidConfiguration)
	}
	if a.Interval <= 0 {
		return fmt.Errorf("%w: animation.interval must be a positive duration", core.ErrInvalidConfiguration)
	}
	if a.Frames < 0 {
		return fmt.Errorf("%w: animation.frames must not be negative", core.ErrInvalidConfiguration)
	}
	return nil
}

// Validate keeps volume within [0, 1]
func (a AudioConfig) Validate() error {
	if a.Volume < 0 || a.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be between 0.0 and 1.0", core.ErrInvalidConfiguration)
	}
	if a.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate must be a positive integer", core.ErrInvalidConfiguration)
	}
	return nil
}

// Vector builds the motion vector, preferring the polar form when present
func (o ObjectConfig) Vector() core.Vector {
	if o.Polar != nil {
		p := o.Polar
		angle, accelAngle := p.Radians()
		return core.VectorFromAngle(p.Speed, p.Accel, angle, accelAngle)
	}
	return core.NewVector(o.VX, o.VY, o.AX, o.AY)
}

// Build creates the object, normalizing a ragged sprite with fill
func (o ObjectConfig) Build(fill rune) (core.Object, error) {
	if o.Polar != nil && (o.VX != 0 || o.VY != 0 || o.AX != 0 || o.AY != 0) {
		return core.Object{}, fmt.Errorf("%w: set either vx/vy/ax/ay or polar, not both", core.ErrInvalidConfiguration)
	}
	sprite := strings.Trim(o.Sprite, "\n")
	block := render.ParseBlock(sprite, parameter.LineSeparator, fill)
	return core.NewObject(o.X, o.Y, block, o.Vector())
}

// DefaultObjects is the demo scene used when a config names no objects
func DefaultObjects() []ObjectConfig {
	return []ObjectConfig{
		{Name: "ball", X: 1, Y: 1, Sprite: "()", VX: 12, VY: 5},
		{Name: "box", X: 10, Y: 6, Sprite: "[#]\n[#]", Polar: &PolarConfig{Speed: 9, Angle: 2.4}},
	}
}
