package config

import (
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/ascii3d/input"
	"github.com/lixenwraith/ascii3d/parameter"
	"github.com/lixenwraith/ascii3d/shape"
	"github.com/lixenwraith/ascii3d/terminal"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ascii3d.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Screen.Width != parameter.ScreenWidth || cfg.Screen.Height != parameter.ScreenHeight {
		t.Errorf("Expected %dx%d, got %dx%d", parameter.ScreenWidth, parameter.ScreenHeight, cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Camera.Distance != parameter.CameraDistance {
		t.Errorf("Expected distance %g, got %g", parameter.CameraDistance, cfg.Camera.Distance)
	}
	if cfg.Frame.Interval != parameter.FrameUpdateInterval {
		t.Errorf("Expected interval %s, got %s", parameter.FrameUpdateInterval, cfg.Frame.Interval)
	}
	if cfg.Shading.Ramp != parameter.ShadingRamp {
		t.Errorf("Expected ramp %q, got %q", parameter.ShadingRamp, cfg.Shading.Ramp)
	}
	if cfg.Background() != ' ' {
		t.Errorf("Expected space background, got %q", cfg.Background())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StartShape() != shape.KindCube {
		t.Errorf("Expected cube start, got %v", cfg.StartShape())
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[screen]
width = 100
height = 30

[shape]
start = "sphere"
cube_palette = "classic"

[shading]
depth_mode = "camera"

[frame]
interval = "33ms"

[keys]
up = "speed_up"
e = "roll_right"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Screen.Width != 100 || cfg.Screen.Height != 30 {
		t.Errorf("Expected 100x30, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.StartShape() != shape.KindSphere {
		t.Errorf("Expected sphere start, got %v", cfg.StartShape())
	}
	if cfg.Frame.Interval != 33*time.Millisecond {
		t.Errorf("Expected 33ms, got %s", cfg.Frame.Interval)
	}

	opts := cfg.ShapeOptions()
	if string(opts.CubeGlyphs[:]) != parameter.CubeFaceGlyphsClassic {
		t.Errorf("Expected classic glyphs, got %q", string(opts.CubeGlyphs[:]))
	}

	p := cfg.Pipeline()
	if p.Depth != shape.DepthCamera {
		t.Errorf("Expected camera depth mode, got %v", p.Depth)
	}
	if p.Projector.Width != 100 || p.Projector.Height != 30 {
		t.Errorf("Expected projector 100x30, got %dx%d", p.Projector.Width, p.Projector.Height)
	}

	kt, err := cfg.KeyTable()
	if err != nil {
		t.Fatalf("KeyTable: %v", err)
	}
	up := terminal.Event{Type: terminal.EventKey, Key: terminal.KeyUp}
	if got := kt.Lookup(up); got != input.IntentSpeedUp {
		t.Errorf("Expected up → speed_up, got %v", got)
	}
	e := terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'e'}
	if got := kt.Lookup(e); got != input.IntentRollRight {
		t.Errorf("Expected e → roll_right, got %v", got)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("ASCII3D_SCREEN_WIDTH", "120")
	t.Setenv("ASCII3D_ROTATION_SPEED", "0.5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Screen.Width != 120 {
		t.Errorf("Expected width 120 from env, got %d", cfg.Screen.Width)
	}
	if cfg.Rotation.Speed != 0.5 {
		t.Errorf("Expected speed 0.5 from env, got %g", cfg.Rotation.Speed)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"Zero width", func(c *Config) { c.Screen.Width = 0 }},
		{"Camera inside solid", func(c *Config) { c.Camera.Distance = 15 }},
		{"Zero cube step", func(c *Config) { c.Shape.CubeStep = 0 }},
		{"Barycentric step above 1", func(c *Config) { c.Shape.PyramidStep = 1.5 }},
		{"Empty ramp", func(c *Config) { c.Shading.Ramp = "" }},
		{"Wide ramp glyph", func(c *Config) { c.Shading.Ramp = " .漢" }},
		{"Five cube glyphs", func(c *Config) { c.Shape.CubeGlyphs = "#@%*+" }},
		{"Unknown palette", func(c *Config) { c.Shape.CubePalette = "neon" }},
		{"Multi-glyph background", func(c *Config) { c.Screen.Background = "ab" }},
		{"Unknown start shape", func(c *Config) { c.Shape.Start = "torus" }},
		{"Unknown depth mode", func(c *Config) { c.Shading.DepthMode = "eye" }},
		{"Zero speed", func(c *Config) { c.Rotation.Speed = 0 }},
		{"Volume above 1", func(c *Config) { c.Audio.Volume = 2 }},
		{"Unknown key action", func(c *Config) { c.Keys = map[string]string{"w": "jump"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, "[camera]\ndistance = 5\n")
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

// Snapshot tooling loads config without linking the audio device stack
func TestConfig_NoAudioImports(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			if strings.HasSuffix(path, "/audio") || strings.Contains(path, "gopxl/beep") {
				t.Errorf("Expected no audio dependency, %s imports %s", name, path)
			}
		}
	}
}
