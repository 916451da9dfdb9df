package wiregraph

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// RGB is a colour with components in [0, 1].
type RGB [3]float64

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(c[0] * 255)),
		G: uint8(math.Round(c[1] * 255)),
		B: uint8(math.Round(c[2] * 255)),
		A: 255,
	}
}

// Config holds the input paths, the export prefix and the look of the
// window.
type Config struct {
	// Paths
	VertexFile   string `yaml:"vertex_file"`
	EdgeFile     string `yaml:"edge_file"`
	OutputPrefix string `yaml:"output_prefix"`
	// Snapshot is an optional image file written from the first frame.
	Snapshot string `yaml:"snapshot"`

	// Window
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// Scene
	Background    RGB        `yaml:"background"`
	LineColor     RGB        `yaml:"line_color"`
	LineWidth     float64    `yaml:"line_width"`
	StartPosition [3]float64 `yaml:"start_position"`
	RotationStep  float64    `yaml:"rotation_step"` // degrees per key press
	HUDViewport   [4]float64 `yaml:"hud_viewport"`
}

func DefaultConfig() Config {
	return Config{
		VertexFile:   "./tmp/graph/embedding.txt",
		EdgeFile:     "graph.txt",
		OutputPrefix: "graph",
		Width:        800,
		Height:       600,
		Title:        "3D Graph with Rotating Coordinates",
		Background:   RGB{0.95, 0.95, 0.95},
		LineColor:    RGB{65 / 255.0, 105 / 255.0, 225 / 255.0},
		LineWidth:    2,
		RotationStep: 5,
		HUDViewport:  [4]float64{0.0, 0.0, 0.2, 0.2},
	}
}

// LoadConfig reads a YAML file over the defaults. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags are command line overrides. Zero values leave the config alone.
type Flags struct {
	VertexFile   string
	EdgeFile     string
	OutputPrefix string
	Snapshot     string
	Width        int
	Height       int
}

// Resolve applies the non-zero flags over the config.
func (c *Config) Resolve(flags Flags) {
	if flags.VertexFile != "" {
		c.VertexFile = flags.VertexFile
	}
	if flags.EdgeFile != "" {
		c.EdgeFile = flags.EdgeFile
	}
	if flags.OutputPrefix != "" {
		c.OutputPrefix = flags.OutputPrefix
	}
	if flags.Snapshot != "" {
		c.Snapshot = flags.Snapshot
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.VertexFile == "" {
		errs = append(errs, errors.New("vertex_file is empty"))
	}
	if c.EdgeFile == "" {
		errs = append(errs, errors.New("edge_file is empty"))
	}
	if c.OutputPrefix == "" {
		errs = append(errs, errors.New("output_prefix is empty"))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if !(c.LineWidth > 0) || math.IsInf(c.LineWidth, 0) {
		errs = append(errs, fmt.Errorf("line_width %g must be positive", c.LineWidth))
	}
	colors := []struct {
		name string
		rgb  RGB
	}{
		{"background", c.Background},
		{"line_color", c.LineColor},
	}
	for _, col := range colors {
		for _, v := range col.rgb {
			if !(v >= 0 && v <= 1) {
				errs = append(errs, fmt.Errorf("%s %v has a component outside [0, 1]", col.name, col.rgb))
				break
			}
		}
	}
	if !finite(c.RotationStep) {
		errs = append(errs, fmt.Errorf("rotation_step %g must be a finite number", c.RotationStep))
	}
	if !finite(c.StartPosition[:]...) {
		errs = append(errs, fmt.Errorf("start_position %v must be finite", c.StartPosition))
	}
	for _, v := range c.HUDViewport {
		if !(v >= 0 && v <= 1) {
			errs = append(errs, fmt.Errorf("hud_viewport %v has a value outside [0, 1]", c.HUDViewport))
			break
		}
	}
	if !(c.HUDViewport[0] < c.HUDViewport[2] && c.HUDViewport[1] < c.HUDViewport[3]) {
		errs = append(errs, fmt.Errorf("hud_viewport %v is empty", c.HUDViewport))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
