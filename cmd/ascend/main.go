// ascend is a terminal puzzle where rows of blocks rise toward the top of
// the board and a move advisor suggests the slide that clears the most.
//
// Usage:
//
//	ascend list              - List game modes
//	ascend play [mode]       - Play (default mode: ascend)
//	ascend menu              - Pick mode and layout interactively
//	ascend layouts [dir]     - List built-in or on-disk layouts
//	ascend hint <layout>     - Rank every move on a layout
//	ascend serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Custom ascend.yaml
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/ascend/internal/games/ascend"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagTheme    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ascend",
	Short: "Ascend - clear rising rows in your terminal",
	Long: `Ascend is a terminal puzzle game. Rows of blocks are pushed up one
row at a time; slide blocks left and right to complete rows before a
block reaches the top. A move advisor suggests the best slide.

Available commands:
  list     - Show game modes
  play     - Play directly
  menu     - Interactive mode and layout picker
  layouts  - List layouts
  hint     - Rank the moves on a layout
  serve    - Start SSH server for remote play

Examples:
  ascend play
  ascend play --layout intro
  ascend play ascend_blind --difficulty hard
  ascend hint boss-rush
  ascend serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd.Name())
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom ascend.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Menu theme: default, mono")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(serveCmd)
}
