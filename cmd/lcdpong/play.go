package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/logging"
	"github.com/vovakirdan/lcd-pong/internal/platform/session"
	"github.com/vovakirdan/lcd-pong/internal/platform/sound"
	termfe "github.com/vovakirdan/lcd-pong/internal/platform/term"
	"github.com/vovakirdan/lcd-pong/internal/platform/tui"
	"github.com/vovakirdan/lcd-pong/internal/platform/window"
	"github.com/vovakirdan/lcd-pong/internal/registry"
)

var (
	flagDisplay string
	flagMute    bool
	flagScale   int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (board switches):
  W / S          - SW1 / SW2, left paddle up / down
  Up / Down, K/J - SW3 / SW4, right paddle up / down
  R              - Restart
  Ctrl+S         - Copy the frame as text (tui display)
  Q / Ctrl+C     - Quit

Displays:
  tui     - Bubble Tea, half-block pixels (default)
  tcell   - tcell, half-block pixels
  window  - desktop window

Difficulty options:
  easy   - Slow ball, fast paddles
  normal - Default speeds, ball speeds up with the score
  hard   - Fast ball
  fixed  - No progression

Examples:
  lcdpong play pong
  lcdpong play pong-cpu --difficulty hard
  lcdpong play pong --display window --scale 3
  lcdpong play pong --config ./my-pong.yaml --mute`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagDisplay, "display", "tui", "Display: tui, tcell, window")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the buzzer")
	playCmd.Flags().IntVar(&flagScale, "scale", window.DefaultScale, "Window pixels per LCD pixel (window display)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'lcdpong list' to see available games", gameID)
	}
	switch flagDisplay {
	case "tui", "tcell", "window":
	default:
		return fmt.Errorf("unknown display %q (use tui, tcell or window)", flagDisplay)
	}

	logger, closer, err := newLogger(logging.DefaultPath())
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := applyGameFlags(logger)
	if err != nil {
		return err
	}
	rc := runtimeConfig(cmd, cfg)

	if flagDisplay != "window" {
		warnSmallTerminal(rc)
	}

	var tone core.ToneOutput = core.NopTone{}
	if !flagMute {
		out, closeTone := sound.OpenOrSilent(sound.Options{
			ClockHz:  cfg.Tone.ClockHz,
			Duration: time.Duration(cfg.Tone.DurationMS) * time.Millisecond,
		}, logger)
		defer closeTone()
		tone = out
	}

	s, err := session.New(session.Options{
		GameID:  gameID,
		Runtime: rc,
		Tone:    tone,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Start(ctx); err != nil {
		return err
	}
	defer s.Stop() //nolint:errcheck // best-effort shutdown

	switch flagDisplay {
	case "tcell":
		return termfe.Run(ctx, s)
	case "window":
		return window.Run(ctx, s, flagScale)
	default:
		return tui.Run(ctx, s)
	}
}

// warnSmallTerminal tells the user when the frame will be scaled down.
func warnSmallTerminal(rc core.RuntimeConfig) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	cols, rows := tui.FrameSize(rc.ScreenW, rc.ScreenH, 1)
	if w < cols || h < rows+3 {
		fmt.Fprintf(os.Stderr, "Note: terminal is %dx%d, the %dx%d frame needs %dx%d cells and will be scaled down.\n",
			w, h, rc.ScreenW, rc.ScreenH, cols, rows+3)
		time.Sleep(time.Second)
	}
}
