// ABOUTME: Playback from the command line
// ABOUTME: Plays a result plainly or under the bubbletea playback view
package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/cwgen/cwgen-go/internal/ui"
	"github.com/cwgen/cwgen-go/pkg/cwgen"
)

func play(ctx context.Context, res *cwgen.Result, deviceRate int, useTUI bool) error {
	config := playConfig(res.Options, deviceRate)
	if !useTUI {
		return cwgen.Play(ctx, res, config)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctrl := ui.NewControl()
	prog := ui.NewProgram(tuiInfo(res), ctrl)

	config.OnProgress = func(p cwgen.Progress) {
		prog.Send(ui.ProgressMsg{Elapsed: p.Elapsed, Total: p.Total, Mark: p.Mark})
	}

	done := make(chan error, 1)
	go func() {
		err := cwgen.Play(ctx, res, config)
		prog.Send(ui.DoneMsg{Err: err})
		done <- err
	}()

	// Stop playback on a quit key or a signal
	go func() {
		select {
		case <-ctrl.Stop:
			log.Printf("Received quit signal from TUI")
			cancel()
		case <-ctx.Done():
			prog.Quit()
		}
	}()

	if _, err := prog.Run(); err != nil {
		cancel()
		<-done
		return fmt.Errorf("playback view failed: %w", err)
	}

	return <-done
}

func playConfig(opts cwgen.Options, deviceRate int) cwgen.PlayConfig {
	return cwgen.PlayConfig{
		Backend:    opts.Backend,
		DeviceRate: deviceRate,
		Volume:     opts.Volume,
		Muted:      opts.Volume == 0,
	}
}

func tuiInfo(res *cwgen.Result) ui.Info {
	chars := make([]rune, len(res.Marks))
	for i, m := range res.Marks {
		chars[i] = m.Char
	}

	opts := res.Options
	return ui.Info{
		Chars:      chars,
		WPM:        opts.WPM,
		Frequency:  opts.Frequency,
		SampleRate: opts.SampleRate,
		NoiseKind:  opts.NoiseKind.String(),
		NoiseLevel: opts.NoiseLevel,
		Backend:    opts.Backend,
		Seed:       opts.Seed,
	}
}
