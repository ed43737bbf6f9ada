// lcdpong plays two-player pong on a simulated 128x160 LCD board.
//
// Usage:
//
//	lcdpong list              - List available games
//	lcdpong play <game>       - Play a game
//	lcdpong sim <game>        - Run a game headless with scripted switches
//	lcdpong config            - Print the effective configuration
//	lcdpong serve             - Start SSH server for remote play
//
// Global flags:
//
//	--tick-rate <rate>  - Ticks per second (default: from config, 15)
//	--seed <value>      - RNG seed for reproducible serves
//	--log-file <path>   - Log file (play defaults to ~/.lcdpong/lcdpong.log)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-pong/internal/config"
	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/games/pong"
	"github.com/vovakirdan/lcd-pong/internal/logging"
)

var (
	// Global flags
	flagTickRate int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string

	// Shared by play, sim, config and serve
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lcdpong",
	Short: "LCD Pong - two-player pong on a simulated LCD board",
	Long: `LCD Pong renders a 128x160 RGB565 LCD with layered shapes, moves the
paddles from four push switches and sweeps a buzzer tone on every hit.

Available commands:
  list     - Show all available games
  play     - Play in the terminal or a window
  sim      - Run headless with a scripted switch sequence
  config   - Print the effective YAML configuration
  serve    - Start SSH server for remote play

Examples:
  lcdpong list
  lcdpong play pong
  lcdpong play pong-cpu --display window
  lcdpong sim pong --ticks 300 --script "1x10,-x20,34x5"
  lcdpong serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick-rate", 15, "Ticks per second (overrides the config when set)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// addGameFlags registers the config and difficulty flags on cmd.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// newLogger builds the logger. defaultPath is used when --log-file is not
// given; empty logs to stderr.
func newLogger(defaultPath string) (*log.Logger, io.Closer, error) {
	path := flagLogFile
	if path == "" {
		path = defaultPath
	}
	return logging.New(logging.Options{
		Path:   path,
		Level:  flagLogLevel,
		Prefix: "lcdpong",
	})
}

// applyGameFlags hands the shared flags to the game package and returns the
// resolved configuration.
func applyGameFlags(logger *log.Logger) (config.PongConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.PongConfig{}, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	pong.SetConfigPath(flagConfig)
	pong.SetDifficultyPreset(preset)
	pong.SetLogger(logger)

	cfg, source, err := pong.LoadConfig()
	if err != nil {
		return cfg, err
	}
	logger.Info("config loaded", "source", source, "difficulty", preset)
	return cfg, nil
}

// runtimeConfig derives the runtime settings from the configuration and the
// global flags.
func runtimeConfig(cmd *cobra.Command, cfg config.PongConfig) core.RuntimeConfig {
	rc := core.RuntimeConfig{
		ScreenW:  cfg.Screen.Width,
		ScreenH:  cfg.Screen.Height,
		TickRate: cfg.Gameplay.TickRate,
		Seed:     flagSeed,
	}
	if cmd.Flags().Changed("tick-rate") {
		rc.TickRate = flagTickRate
	}
	return rc
}
