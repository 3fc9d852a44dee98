// Package main is the entry point for Dungeo.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dungeo",
	Short: "A turn-based terminal dungeon crawler",
	Long: `Dungeo is a small turn-based dungeon crawler. Pick a class, explore a
9x9 board, fight what you find and defeat the boss.`,
	SilenceUsage: true,
	RunE:         runGame,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
