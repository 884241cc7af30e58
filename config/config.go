// Package config loads runtime settings from defaults, an optional TOML file
// and ASCII3D_* environment variables using spf13/viper.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/viper"

	"github.com/lixenwraith/ascii3d/input"
	"github.com/lixenwraith/ascii3d/parameter"
	"github.com/lixenwraith/ascii3d/render"
	"github.com/lixenwraith/ascii3d/shape"
)

// EnvPrefix namespaces environment overrides, e.g. ASCII3D_SCREEN_WIDTH
const EnvPrefix = "ASCII3D"

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Palette names for cube face glyph sets
const (
	PaletteDefault = "default"
	PaletteClassic = "classic"
)

// Config is the full runtime configuration
type Config struct {
	Screen   ScreenConfig   `mapstructure:"screen"`
	Camera   CameraConfig   `mapstructure:"camera"`
	Shape    ShapeConfig    `mapstructure:"shape"`
	Shading  ShadingConfig  `mapstructure:"shading"`
	Rotation RotationConfig `mapstructure:"rotation"`
	Frame    FrameConfig    `mapstructure:"frame"`
	Terminal TerminalConfig `mapstructure:"terminal"`
	Audio    AudioConfig    `mapstructure:"audio"`

	// Keys maps key names or characters to action names
	Keys map[string]string `mapstructure:"keys"`
}

type ScreenConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Background string `mapstructure:"background"`
}

type CameraConfig struct {
	Distance float64 `mapstructure:"distance"`
	Scale    float64 `mapstructure:"scale"`
}

type ShapeConfig struct {
	Start               string  `mapstructure:"start"`
	HalfWidth           float64 `mapstructure:"half_width"`
	PyramidHeightFactor float64 `mapstructure:"pyramid_height_factor"`
	CubeStep            float64 `mapstructure:"cube_step"`
	SphereStep          float64 `mapstructure:"sphere_step"`
	PyramidStep         float64 `mapstructure:"pyramid_step"`
	PyramidBaseStep     float64 `mapstructure:"pyramid_base_step"`
	CubePalette         string  `mapstructure:"cube_palette"`
	CubeGlyphs          string  `mapstructure:"cube_glyphs"`
	CubeStyle           string  `mapstructure:"cube_style"`
	PyramidSideGlyph    string  `mapstructure:"pyramid_side_glyph"`
	PyramidBaseGlyph    string  `mapstructure:"pyramid_base_glyph"`
	PyramidStyle        string  `mapstructure:"pyramid_style"`
}

type ShadingConfig struct {
	Ramp      string `mapstructure:"ramp"`
	DepthMode string `mapstructure:"depth_mode"`
}

type RotationConfig struct {
	Speed     float64 `mapstructure:"speed"`
	SpeedStep float64 `mapstructure:"speed_step"`
}

type FrameConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type TerminalConfig struct {
	Backend string `mapstructure:"backend"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("screen.width", parameter.ScreenWidth)
	v.SetDefault("screen.height", parameter.ScreenHeight)
	v.SetDefault("screen.background", string(parameter.BackgroundGlyph))

	v.SetDefault("camera.distance", parameter.CameraDistance)
	v.SetDefault("camera.scale", parameter.ProjectionScale)

	v.SetDefault("shape.start", shape.KindCube.String())
	v.SetDefault("shape.half_width", parameter.HalfWidth)
	v.SetDefault("shape.pyramid_height_factor", parameter.PyramidHeightFactor)
	v.SetDefault("shape.cube_step", parameter.CubeSampleStep)
	v.SetDefault("shape.sphere_step", parameter.SphereSampleStep)
	v.SetDefault("shape.pyramid_step", parameter.PyramidSampleStep)
	v.SetDefault("shape.pyramid_base_step", parameter.PyramidBaseStep)
	v.SetDefault("shape.cube_palette", PaletteDefault)
	v.SetDefault("shape.cube_glyphs", "")
	v.SetDefault("shape.cube_style", "faces")
	v.SetDefault("shape.pyramid_side_glyph", string(parameter.PyramidSideGlyph))
	v.SetDefault("shape.pyramid_base_glyph", string(parameter.PyramidBaseGlyph))
	v.SetDefault("shape.pyramid_style", "faces")

	v.SetDefault("shading.ramp", parameter.ShadingRamp)
	v.SetDefault("shading.depth_mode", "object")

	v.SetDefault("rotation.speed", parameter.RotationSpeed)
	v.SetDefault("rotation.speed_step", parameter.RotationSpeedStep)

	v.SetDefault("frame.interval", parameter.FrameUpdateInterval)

	v.SetDefault("terminal.backend", "tcell")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.AudioVolume)

	v.SetDefault("keys", map[string]string{})
}

// Default returns the configuration with no file or environment applied
func Default() Config {
	cfg, err := decode(newViper())
	if err != nil {
		// Defaults are compile-time constants; a decode failure is a programming error
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Load reads path (TOML, optional) over defaults and environment, then validates
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks ranges and glyph widths
func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return invalid("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	}
	if c.Camera.Scale <= 0 {
		return invalid("camera.scale %g must be positive", c.Camera.Scale)
	}
	if c.Shape.HalfWidth <= 0 {
		return invalid("shape.half_width %g must be positive", c.Shape.HalfWidth)
	}
	if c.Shape.PyramidHeightFactor <= 0 {
		return invalid("shape.pyramid_height_factor %g must be positive", c.Shape.PyramidHeightFactor)
	}

	// Farthest sample of any solid lies within halfWidth·√3 of the origin
	// (the pyramid apex at height·factor may be farther; checked separately)
	reach := c.Shape.HalfWidth * math.Sqrt(3)
	if apex := c.Shape.HalfWidth * c.Shape.PyramidHeightFactor; apex > reach {
		reach = apex
	}
	if c.Camera.Distance <= reach {
		return invalid("camera.distance %g must exceed solid reach %.3f", c.Camera.Distance, reach)
	}

	steps := map[string]float64{
		"shape.cube_step":         c.Shape.CubeStep,
		"shape.sphere_step":       c.Shape.SphereStep,
		"shape.pyramid_step":      c.Shape.PyramidStep,
		"shape.pyramid_base_step": c.Shape.PyramidBaseStep,
	}
	for name, s := range steps {
		if !(s > 0) {
			return invalid("%s %g must be positive", name, s)
		}
	}
	if c.Shape.PyramidStep > 1 {
		return invalid("shape.pyramid_step %g is barycentric and must not exceed 1", c.Shape.PyramidStep)
	}

	if c.Rotation.Speed <= 0 || c.Rotation.SpeedStep <= 0 {
		return invalid("rotation speed %g and step %g must be positive", c.Rotation.Speed, c.Rotation.SpeedStep)
	}
	if c.Frame.Interval < 0 {
		return invalid("frame.interval %s must not be negative", c.Frame.Interval)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return invalid("audio.volume %g must be within [0, 1]", c.Audio.Volume)
	}

	if len([]rune(c.Shading.Ramp)) == 0 {
		return invalid("shading.ramp must not be empty")
	}
	if _, err := c.cubeGlyphs(); err != nil {
		return err
	}

	glyphs := map[string]string{
		"screen.background":        c.Screen.Background,
		"shape.pyramid_side_glyph": c.Shape.PyramidSideGlyph,
		"shape.pyramid_base_glyph": c.Shape.PyramidBaseGlyph,
	}
	for name, g := range glyphs {
		if _, err := singleGlyph(name, g); err != nil {
			return err
		}
	}
	for _, r := range c.Shading.Ramp {
		if runewidth.RuneWidth(r) != 1 {
			return invalid("shading.ramp glyph %q is not one cell wide", r)
		}
	}

	if _, err := shape.ParseKind(c.Shape.Start); err != nil {
		return invalid("shape.start: %v", err)
	}
	if _, err := shape.ParseStyle(c.Shape.CubeStyle); err != nil {
		return invalid("shape.cube_style: %v", err)
	}
	if _, err := shape.ParseStyle(c.Shape.PyramidStyle); err != nil {
		return invalid("shape.pyramid_style: %v", err)
	}
	if _, err := shape.ParseDepthMode(c.Shading.DepthMode); err != nil {
		return invalid("shading.depth_mode: %v", err)
	}
	if _, err := input.LoadKeyConfig(c.Keys); err != nil {
		return invalid("%v", err)
	}
	return nil
}

// singleGlyph requires exactly one rune occupying one terminal cell
func singleGlyph(name, s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, invalid("%s %q must be a single glyph", name, s)
	}
	if runewidth.RuneWidth(runes[0]) != 1 {
		return 0, invalid("%s %q is not one cell wide", name, s)
	}
	return runes[0], nil
}

// cubeGlyphs resolves explicit glyphs or the named palette
func (c Config) cubeGlyphs() ([6]rune, error) {
	var out [6]rune
	src := c.Shape.CubeGlyphs
	if src == "" {
		switch strings.ToLower(c.Shape.CubePalette) {
		case "", PaletteDefault:
			src = parameter.CubeFaceGlyphs
		case PaletteClassic:
			src = parameter.CubeFaceGlyphsClassic
		default:
			return out, invalid("shape.cube_palette %q unknown", c.Shape.CubePalette)
		}
	}
	runes := []rune(src)
	if len(runes) != len(out) {
		return out, invalid("cube glyphs %q must have exactly %d glyphs", src, len(out))
	}
	for i, r := range runes {
		if runewidth.RuneWidth(r) != 1 {
			return out, invalid("cube glyph %q is not one cell wide", r)
		}
		out[i] = r
	}
	return out, nil
}

// ShapeOptions converts to sampler options; call after Validate
func (c Config) ShapeOptions() shape.Options {
	o := shape.DefaultOptions()
	o.HalfWidth = c.Shape.HalfWidth
	o.PyramidHeightFactor = c.Shape.PyramidHeightFactor
	o.CubeStep = c.Shape.CubeStep
	o.SphereStep = c.Shape.SphereStep
	o.PyramidStep = c.Shape.PyramidStep
	o.PyramidBaseStep = c.Shape.PyramidBaseStep

	if g, err := c.cubeGlyphs(); err == nil {
		o.CubeGlyphs = g
	}
	o.CubeStyle, _ = shape.ParseStyle(c.Shape.CubeStyle)
	o.PyramidStyle, _ = shape.ParseStyle(c.Shape.PyramidStyle)

	if r := []rune(c.Shape.PyramidSideGlyph); len(r) == 1 {
		for i := range o.PyramidSideGlyphs {
			o.PyramidSideGlyphs[i] = r[0]
		}
	}
	if r := []rune(c.Shape.PyramidBaseGlyph); len(r) == 1 {
		o.PyramidBaseGlyph = r[0]
	}
	return o
}

// Background returns the background glyph
func (c Config) Background() rune {
	if r := []rune(c.Screen.Background); len(r) == 1 {
		return r[0]
	}
	return parameter.BackgroundGlyph
}

// Pipeline builds the projector, shader and depth mode
func (c Config) Pipeline() shape.Pipeline {
	depth, _ := shape.ParseDepthMode(c.Shading.DepthMode)
	return shape.Pipeline{
		Projector: render.NewProjector(c.Camera.Distance, c.Camera.Scale, c.Screen.Width, c.Screen.Height),
		Shader:    render.NewShader(render.NewRamp(c.Shading.Ramp), c.Camera.Distance, c.Shape.HalfWidth),
		Depth:     depth,
	}
}

// StartShape returns the initially selected solid
func (c Config) StartShape() shape.Kind {
	k, _ := shape.ParseKind(c.Shape.Start)
	return k
}

// KeyTable merges configured bindings over the defaults
func (c Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

