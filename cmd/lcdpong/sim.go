package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/dispatch"
	"github.com/vovakirdan/lcd-pong/internal/games/pong"
	"github.com/vovakirdan/lcd-pong/internal/glyph"
	"github.com/vovakirdan/lcd-pong/internal/physics"
	"github.com/vovakirdan/lcd-pong/internal/platform/session"
	"github.com/vovakirdan/lcd-pong/internal/registry"
	"github.com/vovakirdan/lcd-pong/internal/tone"
)

var (
	flagTicks   int
	flagScript  string
	flagDump    bool
	flagBounces bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless",
	Long: `Run a game without a display, driving ticks as fast as they are
serviced and feeding switches from a script. Prints hits, goals and the
final score. With no --seed the run uses seed 1, so it is reproducible.

Script steps are comma separated SWITCHES[xN]: the closed switches by
number (1-4), or "-" for none, optionally repeated N ticks.

Examples:
  lcdpong sim pong --ticks 300
  lcdpong sim pong --script "1x10,-x5,34x8" --dump
  lcdpong sim pong-cpu --ticks 2000 --bounces`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().IntVar(&flagTicks, "ticks", 300, "Number of ticks to run")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Switch script, e.g. \"1x10,-x5,34x8\"")
	simCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the final frame as text")
	simCmd.Flags().BoolVar(&flagBounces, "bounces", false, "Also print wall bounces")
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'lcdpong list' to see available games", gameID)
	}
	script, err := session.ParseScript(flagScript)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("")
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := applyGameFlags(logger)
	if err != nil {
		return err
	}
	rc := runtimeConfig(cmd, cfg)
	if rc.Seed == 0 {
		rc.Seed = 1
	}

	out := cmd.OutOrStdout()
	pong.SetObserver(func(tick int, ev physics.Event) {
		if ev.Kind == physics.EventBounce && !flagBounces {
			return
		}
		fmt.Fprintf(out, "tick %5d  %s\n", tick, ev)
	})
	defer pong.SetObserver(nil)

	fb := core.NewFramebuffer(rc.ScreenW, rc.ScreenH)
	tones := &tone.Recorder{}
	game, err := registry.Create(gameID, rc, core.Devices{
		Display: fb,
		Input:   script,
		Tone:    tones,
		Text:    glyph.New(),
	})
	if err != nil {
		return err
	}

	clock := dispatch.NewManualClock()
	loop := dispatch.New(game, dispatch.Options{
		TickRate: rc.TickRate,
		Clock:    clock,
		Logger:   logger,
	})
	ctx, cancel := context.WithCancel(cmd.Context())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	ran := 0
	for ran < flagTicks && clock.Tick(5*time.Second) {
		ran++
	}
	cancel()
	if err := <-done; err != nil {
		return err
	}
	// The last tick may not have reached the screen yet.
	game.Commit()
	game.Paint()

	st := game.State()
	stats := loop.Stats()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "score    P1 %d : %d P2\n", st.ScoreLeft, st.ScoreRight)
	if st.GameOver {
		fmt.Fprintf(out, "winner   P%d\n", st.Winner)
	}
	fmt.Fprintf(out, "ticks    %d (halted: %v)\n", stats.Ticks, st.GameOver)
	fmt.Fprintf(out, "paints   %d (coalesced wakeups: %d)\n", stats.Paints, stats.Coalesced)
	fmt.Fprintf(out, "tones    %d\n", tones.Len())

	if flagDump {
		fmt.Fprintln(out)
		fmt.Fprintln(out, fb.String())
	}
	return nil
}
