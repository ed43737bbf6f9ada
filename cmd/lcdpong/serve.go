package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-pong/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeGame   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent game rendered in the remote
terminal. The game is picked from the SSH command, falling back to --game.
There is no sound over SSH.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lcdpong/host_key

Examples:
  lcdpong serve                           # Listen on :23234 with auto-generated key
  lcdpong serve --ssh :2222               # Listen on port 2222
  lcdpong serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234
  ssh localhost -p 23234 -t pong          # two players on one keyboard`,
	RunE: runServe,
}

func init() {
	addGameFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeGame, "game", "pong-cpu", "Game for sessions that do not name one")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("")
	if err != nil {
		return err
	}
	defer closer.Close()

	gameCfg, err := applyGameFlags(logger)
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		DefaultGame: flagServeGame,
		Runtime:     runtimeConfig(cmd, gameCfg),
		Logger:      logger.WithPrefix("lcdpong-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting lcdpong SSH server on %s\n", cfg.Address)
	fmt.Fprintln(out, "Connect with: ssh localhost -p 23234")
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
