package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tui-platformer/internal/config"
	"tui-platformer/internal/core"
	"tui-platformer/internal/game"
	"tui-platformer/internal/platform/tui"
	"tui-platformer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the platformer",
	Long: `Start playing at the level named in the configuration.

Controls:
  A/D, Left/Right - Walk
  Space/W/Up      - Jump (only when grounded)
  S/Down          - Duck (enter a tunnel when standing on one)
  P/Esc           - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Examples:
  platformer play
  platformer play --config ./my-levels.yaml
  platformer play --fps 60 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	exitMsg, runErr := tui.Run(game.New(gameCfg), store, cfg, gameCfg.Name)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	if exitMsg != "" {
		fmt.Fprintf(os.Stderr, "Game ended: %s\n", exitMsg)
		os.Exit(1)
	}
}
