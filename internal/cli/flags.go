// ABOUTME: Flags that mirror the file configuration
// ABOUTME: Explicitly set flags override values loaded from a config file
package cli

import (
	"fmt"
	"strings"

	"github.com/cwgen/cwgen-go/internal/config"
	"github.com/cwgen/cwgen-go/pkg/audio/output"
	"github.com/cwgen/cwgen-go/pkg/noise"
	"github.com/spf13/pflag"
)

// overrides copies one flag-bound value from src to dst
var overrides = map[string]func(dst, src *config.Config){
	"skip-unsupported":             func(d, s *config.Config) { d.Morse.SkipUnsupported = s.Morse.SkipUnsupported },
	"normalise-special-characters": func(d, s *config.Config) { d.Morse.Normalise = s.Morse.Normalise },
	"wpm":                          func(d, s *config.Config) { d.Timing.WPM = s.Timing.WPM },
	"min-wpm":                      func(d, s *config.Config) { d.Timing.MinWPM = s.Timing.MinWPM },
	"max-wpm":                      func(d, s *config.Config) { d.Timing.MaxWPM = s.Timing.MaxWPM },
	"length-standard-deviation":    func(d, s *config.Config) { d.Timing.StdDev = s.Timing.StdDev },
	"length-drift":                 func(d, s *config.Config) { d.Timing.Drift = s.Timing.Drift },
	"seed":                         func(d, s *config.Config) { d.Timing.Seed = s.Timing.Seed },
	"frequency":                    func(d, s *config.Config) { d.Tone.Frequency = s.Tone.Frequency },
	"frame-rate":                   func(d, s *config.Config) { d.Tone.FrameRate = s.Tone.FrameRate },
	"noise-kind":                   func(d, s *config.Config) { d.Noise.Kind = s.Noise.Kind },
	"noise-level":                  func(d, s *config.Config) { d.Noise.Level = s.Noise.Level },
	"bit-depth":                    func(d, s *config.Config) { d.Output.BitDepth = s.Output.BitDepth },
	"volume":                       func(d, s *config.Config) { d.Output.Volume = s.Output.Volume },
	"backend":                      func(d, s *config.Config) { d.Output.Backend = s.Output.Backend },
	"device-rate":                  func(d, s *config.Config) { d.Output.DeviceRate = s.Output.DeviceRate },
}

// bindConfigFlags registers the configuration flags with c's values as defaults
func bindConfigFlags(fs *pflag.FlagSet, c *config.Config) {
	kinds := make([]string, 0, len(noise.Kinds()))
	for _, k := range noise.Kinds() {
		kinds = append(kinds, k.String())
	}

	fs.BoolVar(&c.Morse.SkipUnsupported, "skip-unsupported", c.Morse.SkipUnsupported, "Drop characters with no Morse code instead of failing")
	fs.BoolVarP(&c.Morse.Normalise, "normalise-special-characters", "c", c.Morse.Normalise, "Send accented letters as their base letter")

	fs.Float64VarP(&c.Timing.WPM, "wpm", "s", c.Timing.WPM, "Speed in words per minute")
	fs.Float64Var(&c.Timing.MinWPM, "min-wpm", c.Timing.MinWPM, "Lower speed bound for drift (default half of --wpm)")
	fs.Float64Var(&c.Timing.MaxWPM, "max-wpm", c.Timing.MaxWPM, "Upper speed bound for drift (default 1.5 times --wpm)")
	fs.Float64VarP(&c.Timing.StdDev, "length-standard-deviation", "d", c.Timing.StdDev, "Relative standard deviation of element lengths")
	fs.Float64VarP(&c.Timing.Drift, "length-drift", "D", c.Timing.Drift, "Relative per-character speed drift")
	fs.Uint64Var(&c.Timing.Seed, "seed", c.Timing.Seed, "Random seed (0 seeds from the clock)")

	fs.Float64VarP(&c.Tone.Frequency, "frequency", "f", c.Tone.Frequency, "Tone frequency in Hz")
	fs.IntVar(&c.Tone.FrameRate, "frame-rate", c.Tone.FrameRate, "Synthesis sample rate in Hz")

	fs.StringVarP(&c.Noise.Kind, "noise-kind", "N", c.Noise.Kind, fmt.Sprintf("Noise kind (%s)", strings.Join(kinds, ", ")))
	fs.Float64VarP(&c.Noise.Level, "noise-level", "n", c.Noise.Level, "Noise level from 0 to 1")

	fs.IntVar(&c.Output.BitDepth, "bit-depth", c.Output.BitDepth, "Audio file bit depth (16 or 24)")
	fs.IntVar(&c.Output.Volume, "volume", c.Output.Volume, "Playback volume from 0 to 100")
	fs.StringVar(&c.Output.Backend, "backend", c.Output.Backend, fmt.Sprintf("Audio backend (%s)", strings.Join(output.Backends(), ", ")))
	fs.IntVar(&c.Output.DeviceRate, "device-rate", c.Output.DeviceRate, "Playback device sample rate (default: --frame-rate)")
}

// applyChangedFlags copies every explicitly set configuration flag from src to dst
func applyChangedFlags(fs *pflag.FlagSet, dst, src *config.Config) {
	fs.Visit(func(fl *pflag.Flag) {
		if apply, ok := overrides[fl.Name]; ok {
			apply(dst, src)
		}
	})
}
