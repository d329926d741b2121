package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tui-platformer/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List builtin levels",
	Long:  `Shows the names of the levels compiled into the binary.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	names := game.BuiltinLevelNames()

	if len(names) == 0 {
		fmt.Println("No builtin levels.")
		return
	}

	fmt.Println("Builtin levels:")
	fmt.Println()
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Level files in the configured level directory take precedence.")
}
