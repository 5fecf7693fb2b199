// Package config loads demo and server settings from TOML or YAML
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tween/curve"
)

// Default locations checked by LoadAuto
const (
	DefaultConfigDir  = "config"
	DefaultConfigFile = "tween.toml"
	DefaultConfigPath = DefaultConfigDir + "/" + DefaultConfigFile
)

// DemoDurations are the phase durations offered by the demo's duration control
var DemoDurations = []time.Duration{
	100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond,
	400 * time.Millisecond, 500 * time.Millisecond,
	1 * time.Second, 2 * time.Second, 3 * time.Second,
	4 * time.Second, 5 * time.Second, 6 * time.Second,
}

// Config is the complete settings tree
type Config struct {
	Demo   DemoConfig   `toml:"demo" yaml:"demo"`
	Server ServerConfig `toml:"server" yaml:"server"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// DemoConfig drives the terminal demo
type DemoConfig struct {
	Curve    string   `toml:"curve" yaml:"curve"`
	Duration Duration `toml:"duration" yaml:"duration"`
	Rest     Duration `toml:"rest" yaml:"rest"`
	FPS      int      `toml:"fps" yaml:"fps"`
	Sound    bool     `toml:"sound" yaml:"sound"`
}

// ServerConfig drives the HTTP curve service
type ServerConfig struct {
	Addr              string   `toml:"addr" yaml:"addr"`
	AllowOrigins      []string `toml:"allow_origins" yaml:"allow_origins"`
	MaxSamples        int      `toml:"max_samples" yaml:"max_samples"`
	MaxSimulateFrames int      `toml:"max_simulate_frames" yaml:"max_simulate_frames"`
}

// LogConfig controls logxi output
type LogConfig struct {
	Debug bool   `toml:"debug" yaml:"debug"`
	Level string `toml:"level" yaml:"level"`
	Dir   string `toml:"dir" yaml:"dir"`
}

// Duration is a time.Duration written as a Go duration string ("1.5s")
type Duration struct {
	time.Duration
}

// D wraps d
func D(d time.Duration) Duration {
	return Duration{Duration: d}
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", string(text))
	}
	d.Duration = v
	return nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Demo: DemoConfig{
			Curve:    "ease",
			Duration: D(time.Second),
			Rest:     D(500 * time.Millisecond),
			FPS:      60,
			Sound:    false,
		},
		Server: ServerConfig{
			Addr:              ":8090",
			AllowOrigins:      []string{"*"},
			MaxSamples:        2000,
			MaxSimulateFrames: 10000,
		},
		Log: LogConfig{
			Debug: false,
			Level: "info",
			Dir:   "logs",
		},
	}
}

// Load reads path over the defaults, choosing the decoder by file extension
// Unknown keys are rejected so typos surface as errors
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	cfg := Default()
	if err := decode(formatOf(path), data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// LoadAuto loads with priority customPath > DefaultConfigPath > Default
func LoadAuto(customPath string) (*Config, error) {
	if customPath != "" {
		return Load(customPath)
	}
	if fileExists(DefaultConfigPath) {
		return Load(DefaultConfigPath)
	}
	return Default(), nil
}

// Save writes cfg to path in the format implied by its extension
func Save(cfg *Config, path string) error {
	data, err := encode(formatOf(path), cfg)
	if err != nil {
		return errors.Wrapf(err, "failed to encode config %s", path)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create config dir %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write config %s", path)
	}
	return nil
}

type format int

const (
	formatUnknown format = iota
	formatTOML
	formatYAML
)

func formatOf(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatUnknown
	}
}

func decode(f format, data []byte, cfg *Config) error {
	switch f {
	case formatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	case formatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return errors.New("unsupported config format, expected .toml, .yaml or .yml")
	}
}

func encode(f format, cfg *Config) ([]byte, error) {
	switch f {
	case formatTOML:
		return toml.Marshal(cfg)
	case formatYAML:
		return yaml.Marshal(cfg)
	default:
		return nil, errors.New("unsupported config format, expected .toml, .yaml or .yml")
	}
}

// Validate checks value ranges and that the demo curve exists
func (c *Config) Validate() error {
	if _, ok := curve.Lookup(c.Demo.Curve); !ok {
		return errors.Errorf("demo.curve: unknown curve %q", c.Demo.Curve)
	}
	if c.Demo.Duration.Duration < 0 {
		return errors.Errorf("demo.duration: must not be negative, got %v", c.Demo.Duration)
	}
	if c.Demo.Rest.Duration < 0 {
		return errors.Errorf("demo.rest: must not be negative, got %v", c.Demo.Rest)
	}
	if c.Demo.FPS < 1 || c.Demo.FPS > 1000 {
		return errors.Errorf("demo.fps: must be in [1,1000], got %d", c.Demo.FPS)
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr: must not be empty")
	}
	if c.Server.MaxSamples < 2 {
		return errors.Errorf("server.max_samples: must be at least 2, got %d", c.Server.MaxSamples)
	}
	if c.Server.MaxSimulateFrames < 1 {
		return errors.Errorf("server.max_simulate_frames: must be positive, got %d", c.Server.MaxSimulateFrames)
	}
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
