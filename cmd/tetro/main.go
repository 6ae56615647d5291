// tetro is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetro           - Play the game
//	tetro config    - Print the effective configuration
//
// Configuration is read from ~/.tetro/config.yaml, then ./configs/tetro.yaml,
// then the built-in defaults.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetro",
	Short: "Tetro CLI - falling blocks in your terminal",
	Long: `Tetro is a falling-block puzzle game played in the terminal.

Controls:
  Left/Right - Move
  Down       - Soft drop
  Up         - Rotate
  Q/Ctrl+C   - Quit

Clear full rows to score. A piece that cannot spawn costs a life;
the game ends when all lives are gone.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
