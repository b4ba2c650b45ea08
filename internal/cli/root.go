// ABOUTME: Root cobra command for cwgen
// ABOUTME: Reads text, runs the pipeline and writes, exports or plays the result
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwgen/cwgen-go/internal/config"
	"github.com/cwgen/cwgen-go/internal/version"
	"github.com/cwgen/cwgen-go/pkg/cwgen"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// flags holds values bound to command-line flags that are not part of the
// file configuration
type flags struct {
	text       string
	input      string
	wave       string
	csv        string
	play       bool
	quiet      bool
	tui        bool
	configFile string
	logFile    string
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	cmd := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the command tree reading from stdin and printing to
// stdout and stderr
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags
	flagCfg := config.Default()

	cmd := &cobra.Command{
		Use:   version.Product,
		Short: "Morse code (CW) audio generator",
		Long: `cwgen turns plaintext into a synthesized Morse code recording.

Timing can vary like a human operator (jitter and speed drift) and a
background noise bed can be mixed in. The result is written as WAV or
FLAC, exported as a timing CSV, played on an audio device, or all three.

Text comes from --text, else from --input (- for stdin), else from stdin.`,
		Example: `  cwgen -t "cq cq de test" -s 20 -w cq.wav
  cwgen -i message.txt -d 0.05 -D 0.02 -N pink -n 0.2 --play --tui
  echo "paris" | cwgen --csv timing.csv`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &f, flagCfg, stdin, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVarP(&f.text, "text", "t", "", "Text to send")
	fs.StringVarP(&f.input, "input", "i", "", "Read text from file (- for stdin)")
	fs.StringVarP(&f.wave, "wave", "w", "", "Write audio to file (.wav or .flac)")
	fs.StringVar(&f.csv, "csv", "", "Write segment timing to CSV file")
	fs.BoolVarP(&f.play, "play", "p", false, "Play the audio")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "Suppress log output")
	fs.BoolVar(&f.tui, "tui", false, "Show the playback view while playing")
	fs.StringVar(&f.configFile, "config", "", "Config file (.toml, .yaml or .yml)")
	fs.StringVar(&f.logFile, "log-file", "", "Also append log output to this file")
	bindConfigFlags(fs, flagCfg)

	cmd.AddCommand(newTableCommand(), newVersionCommand())

	return cmd
}

func runGenerate(cmd *cobra.Command, f *flags, flagCfg *config.Config, stdin io.Reader, stderr io.Writer) error {
	// the playback view owns the terminal, so logs only go to the log file
	toStderr := !f.quiet && !(f.play && f.tui)
	closeLog, err := setupLogging(stderr, toStderr, f.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if f.wave == "" && f.csv == "" && !f.play {
		return errors.New("nothing to do: use --wave, --csv or --play")
	}

	cfg := config.Default()
	if f.configFile != "" {
		if cfg, err = config.Load(f.configFile); err != nil {
			return err
		}
	}
	applyChangedFlags(cmd.Flags(), cfg, flagCfg)

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	text, err := readInput(cmd.Flags().Changed("text"), f.text, f.input, stdin)
	if err != nil {
		return err
	}

	runID := uuid.New().String()[:8]
	log.Printf("Run %s: %d characters at %.1f wpm, %.0f Hz, %s noise %.2f, seed %d",
		runID, len([]rune(text)), opts.WPM, opts.Frequency, opts.NoiseKind, opts.NoiseLevel, opts.Seed)

	res, err := cwgen.Generate(text, opts)
	if err != nil {
		return err
	}
	log.Printf("Run %s: rendered %d segments, %.2fs at %d Hz", runID, len(res.Segments), res.Duration(), opts.SampleRate)

	if f.wave != "" {
		if err := res.WriteAudio(f.wave, opts.BitDepth); err != nil {
			return err
		}
		log.Printf("Run %s: wrote %s", runID, f.wave)
	}

	if f.csv != "" {
		if err := res.WriteCSV(f.csv); err != nil {
			return err
		}
		log.Printf("Run %s: wrote %s", runID, f.csv)
	}

	if f.play {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := play(ctx, res, cfg.Output.DeviceRate, f.tui); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Printf("Run %s: playback stopped", runID)
				return nil
			}
			return err
		}
		log.Printf("Run %s: playback finished", runID)
	}

	return nil
}
