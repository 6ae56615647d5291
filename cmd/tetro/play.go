package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetro/internal/config"
	"github.com/vovakirdan/tetro/internal/core"
	"github.com/vovakirdan/tetro/internal/games/tetro"
	"github.com/vovakirdan/tetro/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source := config.Load()

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	// Terminal size is read once; the field does not follow later resizes
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.Seed = time.Now().UnixNano()

	game := tetro.New(cfg)
	game.Reset(rc)

	fieldW, fieldH := tetro.FieldSize(width, height)
	logger.Info("starting",
		"config", source,
		"field", fmt.Sprintf("%dx%d", fieldW, fieldH),
		"seed", rc.Seed,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := tui.Run(game, cfg, rc, logger,
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	)
	interrupted := ctx.Err() != nil
	if err := exitError(runErr, interrupted); err != nil {
		logger.Error("game ended with error", "err", runErr)
		return err
	}
	if interrupted {
		logger.Info("interrupted")
		return nil
	}

	state := game.State()
	logger.Info("exit", "score", state.Score, "lives", state.Lives)
	return nil
}

// exitError decides how a finished program maps to the process exit.
// A kill caused by an interrupt signal is a clean exit; a recovered panic
// is always an error even though bubbletea reports it as a kill too.
func exitError(runErr error, interrupted bool) error {
	switch {
	case runErr == nil:
		return nil
	case errors.Is(runErr, tea.ErrProgramPanic):
		return fmt.Errorf("game crashed: %w", runErr)
	case interrupted && errors.Is(runErr, tea.ErrProgramKilled):
		return nil
	}
	return fmt.Errorf("error running game: %w", runErr)
}

// newLogger opens the configured log file. Without one, log output is
// discarded since the terminal belongs to the game.
func newLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetro",
	})

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	return logger, closeFn, nil
}
