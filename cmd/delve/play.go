package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/samdwyer/delve/internal/game"
	"github.com/samdwyer/delve/internal/ui"
)

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// The terminal belongs to tcell, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	stopTelemetry := startTelemetry(ctx, logger)
	defer stopTelemetry()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	session, err := game.NewSession(ctx, cfg, game.WithLogger(logger))
	if err != nil {
		return err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	term := ui.NewTerminal(screen)
	return game.Run(ctx, session, term, term)
}
