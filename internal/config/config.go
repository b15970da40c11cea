// Package config assembles run settings from the embedded defaults, an
// optional YAML file and command line flags, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"mcpi/internal/assets"
)

// Randomness sources.
const (
	SourcePCG    = "pcg"
	SourceCrypto = "crypto"
)

// Renderers.
const (
	RendererWindow  = "window"
	RendererConsole = "console"
	RendererPNG     = "png"
)

const maxTPS = 1000

type Config struct {
	Radius         float64       `yaml:"radius"`
	PointsPerFrame int           `yaml:"points_per_frame"`
	Frames         int           `yaml:"frames"`
	Interval       time.Duration `yaml:"interval"`
	Seed           uint64        `yaml:"seed"`
	Source         string        `yaml:"source"`
	Renderer       string        `yaml:"renderer"`
	Output         string        `yaml:"output"`
	Scale          int           `yaml:"scale"`
	Log            string        `yaml:"log"`
}

// ConfigError names a single rejected setting.
type ConfigError struct {
	Param  string
	Value  interface{}
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s=%v: %s", e.Param, e.Value, e.Reason)
}

// Default returns the embedded settings.
func Default() (*Config, error) {
	data, err := assets.LoadDefaults()
	if err != nil {
		return nil, xerrors.Errorf("defaults: %w", err)
	}
	var c Config
	if err := c.Merge(data); err != nil {
		return nil, xerrors.Errorf("defaults: %w", err)
	}
	return &c, nil
}

// Merge overlays the YAML document in data onto c. Keys absent from the
// document keep their current value; unknown keys are an error.
func (c *Config) Merge(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return xerrors.Errorf("decode: %w", err)
	}
	return nil
}

// MergeFile reads filename and merges it onto c.
func (c *Config) MergeFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return xerrors.Errorf("read: %w", err)
	}
	if err := c.Merge(data); err != nil {
		return xerrors.Errorf("%s: %w", filename, err)
	}
	return nil
}

// Validate reports every invalid setting. The returned error combines one
// *ConfigError per problem; use multierr.Errors to list them.
func (c *Config) Validate() error {
	var err error
	reject := func(param string, value interface{}, reason string) {
		err = multierr.Append(err, &ConfigError{Param: param, Value: value, Reason: reason})
	}

	if !(c.Radius > 0) || math.IsInf(c.Radius, 1) {
		reject("radius", c.Radius, "must be a finite number > 0")
	}
	if c.PointsPerFrame < 1 {
		reject("points_per_frame", c.PointsPerFrame, "must be >= 1")
	}
	if c.Frames < 0 {
		reject("frames", c.Frames, "must be >= 0 (0 runs until stopped)")
	}
	if c.Interval <= 0 {
		reject("interval", c.Interval, "must be > 0")
	}
	switch c.Source {
	case SourcePCG, SourceCrypto:
	default:
		reject("source", c.Source, "must be pcg or crypto")
	}
	switch c.Renderer {
	case RendererWindow:
		if c.Scale < 1 {
			reject("scale", c.Scale, "must be >= 1")
		}
	case RendererConsole:
	case RendererPNG:
		if c.Frames == 0 {
			reject("frames", c.Frames, "png renderer needs a finite frame count")
		}
		if c.Output == "" {
			reject("output", c.Output, "png renderer needs an output path")
		}
	default:
		reject("renderer", c.Renderer, "must be window, console or png")
	}
	return err
}

// TPS converts the frame interval into ticks per second for the window loop,
// clamped to [1, 1000].
func (c *Config) TPS() int {
	if c.Interval <= 0 {
		return maxTPS
	}
	tps := int(time.Second / c.Interval)
	if tps < 1 {
		return 1
	}
	if tps > maxTPS {
		return maxTPS
	}
	return tps
}

// Load builds the configuration for a command line. It returns
// pflag.ErrHelp when help was requested.
func Load(name string, args []string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	file := fs.StringP("config", "c", "", "YAML settings file")
	radius := fs.Float64P("radius", "r", c.Radius, "Circle radius")
	points := fs.IntP("points", "p", c.PointsPerFrame, "Points drawn per frame")
	frames := fs.IntP("frames", "f", c.Frames, "Number of frames, 0 runs until stopped")
	interval := fs.DurationP("interval", "i", c.Interval, "Requested time between frames")
	seed := fs.Uint64P("seed", "s", c.Seed, "Seed for the pcg source, 0 seeds from the clock")
	source := fs.String("source", c.Source, "Randomness source: pcg or crypto")
	renderer := fs.StringP("renderer", "R", c.Renderer, "Presenter: window, console or png")
	output := fs.StringP("output", "o", c.Output, "PNG file written by the png renderer")
	scale := fs.Int("scale", c.Scale, "Window scale factor")
	logPath := fs.String("log", c.Log, "Log destination: stderr, stdout or a file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *file != "" {
		if err := c.MergeFile(*file); err != nil {
			return nil, xerrors.Errorf("config file: %w", err)
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "radius":
			c.Radius = *radius
		case "points":
			c.PointsPerFrame = *points
		case "frames":
			c.Frames = *frames
		case "interval":
			c.Interval = *interval
		case "seed":
			c.Seed = *seed
		case "source":
			c.Source = *source
		case "renderer":
			c.Renderer = *renderer
		case "output":
			c.Output = *output
		case "scale":
			c.Scale = *scale
		case "log":
			c.Log = *logPath
		}
	})

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
