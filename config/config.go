package config

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file the editor looks for when none is given.
const DefaultPath = "editor.yaml"

//go:embed editor.yaml
var defaultsFS embed.FS

type Config struct {
	Window  WindowSpec  `yaml:"window"`
	Canvas  CanvasSpec  `yaml:"canvas"`
	Grid    GridSpec    `yaml:"grid"`
	TPS     int         `yaml:"tps"`
	Colors  ColorsSpec  `yaml:"colors"`
	Keys    KeysSpec    `yaml:"keys"`
	Export  ExportSpec  `yaml:"export"`
	Toolbar ToolbarSpec `yaml:"toolbar"`
}

type WindowSpec struct {
	Title string `yaml:"title"`
}

type CanvasSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type GridSpec struct {
	CellSize int `yaml:"cell_size"`
}

// ColorsSpec holds "#rrggbb" strings or x/image colornames.
type ColorsSpec struct {
	Background string `yaml:"background"`
	Grid       string `yaml:"grid"`
	Wall       string `yaml:"wall"`
	Goal       string `yaml:"goal"`
}

// KeysSpec binds editor actions to key names as reported by ebiten (e.g. "W").
type KeysSpec struct {
	SelectWall string `yaml:"select_wall"`
	SelectGoal string `yaml:"select_goal"`
	Export     string `yaml:"export"`
}

type ExportSpec struct {
	Path   string `yaml:"path"`
	Indent int    `yaml:"indent"`
}

type ToolbarSpec struct {
	Enabled bool `yaml:"enabled"`
	Height  int  `yaml:"height"`
}

// Palette is ColorsSpec resolved to concrete colors.
type Palette struct {
	Background color.RGBA
	Grid       color.RGBA
	Wall       color.RGBA
	Goal       color.RGBA
}

// Default returns the embedded configuration.
func Default() (Config, error) {
	data, err := defaultsFS.ReadFile("editor.yaml")
	if err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal defaults: %w", err)
	}
	return cfg, nil
}

// Load reads path and overlays it onto the embedded defaults. A missing file
// is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return Parse(cfg, data, path)
}

// Parse overlays YAML data onto base and validates the result. name is only
// used in error messages.
func Parse(base Config, data []byte, name string) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("grid.cell_size must be positive, got %d", c.Grid.CellSize)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Export.Path == "" {
		return errors.New("export.path is empty")
	}
	if c.Export.Indent < 0 {
		return fmt.Errorf("export.indent must not be negative, got %d", c.Export.Indent)
	}
	if c.Toolbar.Enabled && c.Toolbar.Height <= 0 {
		return fmt.Errorf("toolbar.height must be positive, got %d", c.Toolbar.Height)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}

	seen := map[string]string{}
	for action, key := range map[string]string{
		"select_wall": c.Keys.SelectWall,
		"select_goal": c.Keys.SelectGoal,
		"export":      c.Keys.Export,
	} {
		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			return fmt.Errorf("keys.%s is empty", action)
		}
		if other, ok := seen[k]; ok {
			return fmt.Errorf("key %q bound to both %s and %s", key, other, action)
		}
		seen[k] = action
	}
	return nil
}

func (c Config) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Background, err = ParseColor(c.Colors.Background); err != nil {
		return Palette{}, fmt.Errorf("colors.background: %w", err)
	}
	if p.Grid, err = ParseColor(c.Colors.Grid); err != nil {
		return Palette{}, fmt.Errorf("colors.grid: %w", err)
	}
	if p.Wall, err = ParseColor(c.Colors.Wall); err != nil {
		return Palette{}, fmt.Errorf("colors.wall: %w", err)
	}
	if p.Goal, err = ParseColor(c.Colors.Goal); err != nil {
		return Palette{}, fmt.Errorf("colors.goal: %w", err)
	}
	return p, nil
}

// ParseColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
