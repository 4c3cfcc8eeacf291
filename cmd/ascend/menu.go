package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ascend/internal/platform/tui"
	"github.com/vovakirdan/ascend/internal/registry"
)

// layoutUser is implemented by games that accept a per-instance layout.
type layoutUser interface {
	UseLayout(ref string)
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and layout interactively",
	Long: `Start in interactive menu mode.

Pick a mode, then a starting layout. When you quit a game you return to
the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit

Examples:
  ascend menu
  ascend menu --fps 60 --difficulty easy`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config
		if menuResult.Quit {
			break
		}

		selection, err := tui.RunLayoutSelector(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if selection == nil {
			continue // Back to menu
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if lu, ok := game.(layoutUser); ok {
			lu.UseLayout(selection.LayoutID)
		}

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting game", "mode", menuResult.GameID, "layout", selection.LayoutID)
		if err := tui.Run(game, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
