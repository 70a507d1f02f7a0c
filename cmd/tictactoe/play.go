package main

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/prompt"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var flagPlain bool

func init() {
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-oriented prompt instead of the full-screen UI")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	// The full-screen UI needs a terminal; fall back to the prompt otherwise
	interactive := term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	plain := flagPlain || !interactive

	var logOut io.Writer = os.Stderr
	if !plain {
		// stderr would tear the alternate screen
		logOut = io.Discard
	}
	logger, closeLog, err := newLogger(cfg, logOut)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	opts, err := cfg.Options()
	if err != nil {
		fail("%v", err)
	}
	seed := seedFor(cfg)
	session, err := registry.NewSession(opts, cfg.Computer.Strategy, seed)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("game started",
		"dimension", cfg.Board.Dimension,
		"human", session.HumanMark(),
		"first", session.Turn(),
		"strategy", cfg.Computer.Strategy,
		"seed", seed,
	)

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if plain {
		started := time.Now()
		outcome, err := prompt.New(session, os.Stdin, os.Stdout, logger).Play()
		if errors.Is(err, prompt.ErrInputClosed) {
			logger.Info("input closed, game abandoned")
			return
		}
		if err != nil {
			fail("%v", err)
		}
		logger.Info("game over", "outcome", outcome.Key())
		if store != nil {
			rec := storage.NewRecord(session, cfg.Computer.Strategy, time.Since(started))
			if _, err := store.SaveResult(rec); err != nil {
				logger.Warn("could not save result", "error", err)
			}
		}
		return
	}

	rc := core.DefaultConfig()
	rc.Seed = seed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	if err := tui.Run(tui.Options{
		Session:  session,
		Strategy: cfg.Computer.Strategy,
		Store:    store,
		Logger:   logger,
		Runtime:  rc,
		Source:   storage.SourceLocal,
	}); err != nil {
		fail("running game: %v", err)
	}
}
