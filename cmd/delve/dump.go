package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/delve/internal/devtools"
	"github.com/samdwyer/delve/internal/game"
)

var (
	flagColor    bool
	flagRevealed bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Generate a dungeon and print it",
	Long: `Generate a dungeon and print it as text, with a legend and the actor list.

Examples:
  delve dump --seed 42
  delve dump --seed 42 --color
  delve dump --revealed`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().BoolVar(&flagColor, "color", false, "Colorize the output")
	dumpCmd.Flags().BoolVar(&flagRevealed, "revealed", false, "Show only what the player has seen")
}

func runDump(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger, closeLog, err := newLogger(os.Stderr)
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

	return devtools.WriteMap(cmd.OutOrStdout(), session, devtools.DumpOptions{
		Color:        flagColor,
		RevealedOnly: flagRevealed,
	})
}
