package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ascend/internal/core"
	"github.com/vovakirdan/ascend/internal/games/ascend"
	"github.com/vovakirdan/ascend/internal/platform/tui"
	"github.com/vovakirdan/ascend/internal/registry"
)

var (
	flagDifficulty string
	flagLayout     string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Ascend",
	Long: `Start playing. The mode defaults to "ascend" (with hints);
"ascend_blind" hides the advisor.

Controls:
  Left/Right  - Slide the selected block
  Up/Down     - Select another block
  Enter       - Apply the hint
  F           - Freeze (the board stops rising, bosses shrink to 1)
  P           - Pause
  R           - Restart (after game over)
  ?           - Show all keys
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, fewer bosses, slower rise
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, more bosses, faster rise
  fixed  - No progression, stays at config's initial level

Examples:
  ascend play
  ascend play --layout intro
  ascend play --layout ./boards/mine.yaml
  ascend play ascend_blind --difficulty hard
  ascend play --config ./my-ascend.yaml --log-file ascend.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Starting layout: built-in ID or path to a YAML file")
}

// configureGame pushes the shared flags into the game package.
func configureGame() error {
	ascend.SetConfigPath(flagConfig)
	if err := ascend.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	tui.SetTheme(tui.ThemeByName(flagTheme))
	return nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := ascend.IDHints
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ascend list' to see available modes.")
		os.Exit(1)
	}

	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ascend.SetLayout(flagLayout)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting game", "mode", registry.Title(gameID), "layout", flagLayout, "seed", flagSeed)
	if err := tui.Run(game, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
