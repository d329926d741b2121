// platformer is a TUI side-scrolling platformer played in the terminal.
//
// Usage:
//
//	platformer play              - Play, starting at the configured level
//	platformer levels            - List builtin levels
//	platformer serve             - Start SSH server for remote play
//	platformer scores <level>    - Show high scores for a level
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 100)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.platformer/scores.db)
//	--config <path>   - Path to a game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - A side-scrolling platformer in your terminal",
	Long: `TUI Platformer is a terminal-based side-scrolling platformer.
Run, jump, stomp mobs, collect coins and stars, and reach the flag.

Available commands:
  play     - Play, starting at the configured level
  levels   - List builtin levels
  serve    - Start SSH server for remote play
  scores   - View high scores for a level

Examples:
  platformer play
  platformer play --config ./my-levels.yaml
  platformer serve --ssh :2222
  platformer scores level1`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 100, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
