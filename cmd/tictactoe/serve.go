package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tic Tac Toe SSH server",
	Long: `Start an SSH server that lets users connect and play.

Every SSH connection gets its own game against the computer, using the
game flags given here (-d, -c, -o, --strategy, --difficulty).
Results are stored per-server in the results database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key_path from the config

Examples:
  tictactoe serve                           # Listen on :23235
  tictactoe serve --ssh :2222 -d 5          # 5x5 games on port 2222
  tictactoe serve --difficulty easy         # Random computer moves

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default: server.address from config, :23235)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if missing)")
	serveCmd.Flags().StringVar(&flagIdleTimeout, "idle-timeout", "", "Idle timeout before disconnecting, e.g. 10m")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout != "" {
		d, err := time.ParseDuration(flagIdleTimeout)
		if err != nil {
			fail("invalid --idle-timeout: %v", err)
		}
		cfg.Server.IdleTimeout = d
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	opts, err := cfg.Options()
	if err != nil {
		fail("%v", err)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:       cfg.Server.Address,
		HostKeyPath:   cfg.Server.HostKeyPath,
		DBPath:        cfg.Storage.DBPath,
		IdleTimeout:   cfg.Server.IdleTimeout,
		Game:          opts,
		Strategy:      cfg.Computer.Strategy,
		Seed:          cfg.Computer.Seed,
		ComputerDelay: core.DefaultConfig().ComputerDelay,
	}, logger.WithPrefix("tictactoe-ssh"))
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Tic Tac Toe SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(context.Background()); err != nil {
		fail("server: %v", err)
	}
}
