package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/discochess/gobbler"
	"github.com/discochess/gobbler/internal/inspect"
	"github.com/discochess/gobbler/internal/position"
)

const version = "1.0.0"

var (
	dataDir    string
	generation uint64
	forceColor bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "gobb-inspect [POSITION-ID]",
	Short: "Interactive inspection of Gobblet Gobblers analysis data",
	Long: `Gobb-inspect loads a stored analysis table and enters an interactive
loop. It draws the board of the current position, reports whether the
player to move wins or loses and in how many turns, and ranks every
forward and retrograde move.

Examples:
  # Inspect the empty starting position of the latest stored generation
  gobb-inspect -d ./data

  # Inspect a specific position of a specific generation
  gobb-inspect -d ./data -g 12 2879927166`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runInspect,
}

func init() {
	rootCmd.Flags().StringVarP(&dataDir, "data-dir", "d", ".", "directory (or gs:// URL) of analysis data files")
	rootCmd.Flags().Uint64VarP(&generation, "generation", "g", 0, "load analysis data of generation NUM")
	rootCmd.Flags().BoolVarP(&forceColor, "color", "c", false, "print pieces in color on the terminal")
	rootCmd.Flags().BoolVarP(&noColor, "no-color", "C", false, "do not print pieces in color on the terminal")
	rootCmd.MarkFlagsMutuallyExclusive("color", "no-color")
}

func runInspect(cmd *cobra.Command, args []string) error {
	posID := position.InitialID
	if len(args) == 1 {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid position %q", args[0])
		}
		posID = id
	}

	color := isatty.IsTerminal(os.Stdout.Fd())
	if forceColor {
		color = true
	}
	if noColor {
		color = false
	}

	ctx := context.Background()

	dirOption, err := gobbler.WithDataDir(ctx, dataDir)
	if err != nil {
		return err
	}
	inspector, err := gobbler.NewInspector(dirOption)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("generation") {
		if err := inspector.Load(ctx, generation); err != nil {
			return fmt.Errorf("loading the analysis data file of the specified generation: %w", err)
		}
	} else {
		if _, err := inspector.LoadLatest(ctx); err != nil {
			return fmt.Errorf("loading an analysis data file: %w", err)
		}
	}

	renderer := inspect.NewAsciiRenderer(color)
	processor := inspect.NewProcessor(inspector.Internal(), renderer, os.Stdout, posID)
	return processor.Run(os.Stdin)
}
