// ABOUTME: File configuration for the cwgen command
// ABOUTME: Loads TOML or YAML over defaults and converts to pipeline options
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cwgen/cwgen-go/pkg/cwgen"
	"github.com/cwgen/cwgen-go/pkg/morse"
	"github.com/cwgen/cwgen-go/pkg/noise"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration
type Config struct {
	Morse  MorseConfig  `toml:"morse" yaml:"morse"`
	Timing TimingConfig `toml:"timing" yaml:"timing"`
	Tone   ToneConfig   `toml:"tone" yaml:"tone"`
	Noise  NoiseConfig  `toml:"noise" yaml:"noise"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// MorseConfig holds encoder settings
type MorseConfig struct {
	SkipUnsupported bool `toml:"skip_unsupported" yaml:"skip_unsupported"`
	Normalise       bool `toml:"normalise_special_characters" yaml:"normalise_special_characters"`
}

// TimingConfig holds speed, jitter and drift settings
type TimingConfig struct {
	WPM    float64 `toml:"wpm" yaml:"wpm"`
	MinWPM float64 `toml:"min_wpm" yaml:"min_wpm"`
	MaxWPM float64 `toml:"max_wpm" yaml:"max_wpm"`
	StdDev float64 `toml:"length_standard_deviation" yaml:"length_standard_deviation"`
	Drift  float64 `toml:"length_drift" yaml:"length_drift"`
	Seed   uint64  `toml:"seed" yaml:"seed"`
}

// ToneConfig holds synthesizer settings
type ToneConfig struct {
	Frequency float64 `toml:"frequency" yaml:"frequency"`
	FrameRate int     `toml:"frame_rate" yaml:"frame_rate"`
}

// NoiseConfig holds noise settings
type NoiseConfig struct {
	Kind  string  `toml:"kind" yaml:"kind"`
	Level float64 `toml:"level" yaml:"level"`
}

// OutputConfig holds export and playback settings
type OutputConfig struct {
	BitDepth   int    `toml:"bit_depth" yaml:"bit_depth"`
	Volume     int    `toml:"volume" yaml:"volume"`
	Backend    string `toml:"backend" yaml:"backend"`
	DeviceRate int    `toml:"device_rate" yaml:"device_rate"`
}

// Default returns the built-in configuration
func Default() *Config {
	opts := cwgen.DefaultOptions()
	return &Config{
		Timing: TimingConfig{WPM: opts.WPM},
		Tone: ToneConfig{
			Frequency: opts.Frequency,
			FrameRate: opts.SampleRate,
		},
		Noise: NoiseConfig{
			Kind:  opts.NoiseKind.String(),
			Level: opts.NoiseLevel,
		},
		Output: OutputConfig{
			BitDepth: opts.BitDepth,
			Volume:   opts.Volume,
			Backend:  opts.Backend,
		},
	}
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) file over the defaults
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (use .toml, .yaml or .yml)", filepath.Ext(path))
	}

	return cfg, nil
}

// Options converts the configuration to validated pipeline options
func (c *Config) Options() (cwgen.Options, error) {
	kind, err := noise.ParseKind(c.Noise.Kind)
	if err != nil {
		return cwgen.Options{}, &cwgen.InvalidConfigurationError{Field: "noise-kind", Reason: err.Error()}
	}

	policy := morse.PolicyError
	if c.Morse.SkipUnsupported {
		policy = morse.PolicySkip
	}

	opts := cwgen.Options{
		Policy:     policy,
		Normalise:  c.Morse.Normalise,
		WPM:        c.Timing.WPM,
		MinWPM:     c.Timing.MinWPM,
		MaxWPM:     c.Timing.MaxWPM,
		StdDev:     c.Timing.StdDev,
		Drift:      c.Timing.Drift,
		Frequency:  c.Tone.Frequency,
		SampleRate: c.Tone.FrameRate,
		NoiseKind:  kind,
		NoiseLevel: c.Noise.Level,
		Seed:       c.Timing.Seed,
		BitDepth:   c.Output.BitDepth,
		Volume:     c.Output.Volume,
		Backend:    c.Output.Backend,
	}
	if err := opts.Validate(); err != nil {
		return cwgen.Options{}, err
	}
	if c.Output.DeviceRate < 0 {
		return cwgen.Options{}, &cwgen.InvalidConfigurationError{
			Field:  "device-rate",
			Reason: fmt.Sprintf("must not be negative, got %d", c.Output.DeviceRate),
		}
	}
	return opts, nil
}
