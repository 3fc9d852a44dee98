package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeo/internal/errors"
	"github.com/samdwyer/dungeo/internal/world"
)

var (
	boardSeed int64
	boardSize int
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a generated board",
	Long:  `Generate a board and print it fully revealed, with the player on the start tile.`,
	RunE:  runBoard,
}

func init() {
	boardCmd.Flags().Int64Var(&boardSeed, "seed", 0, "random seed (0 picks one)")
	boardCmd.Flags().IntVar(&boardSize, "size", world.DefaultSize, "board size (odd, at least 5)")
}

func runBoard(cmd *cobra.Command, args []string) error {
	seed := boardSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := world.DefaultGenerator()
	g.Size = boardSize

	b, err := g.Generate(cmd.Context(), rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("seed %d: %s: %w", seed, errors.GetCode(err), err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d\n", seed)
	fmt.Fprint(out, b.String())
	fmt.Fprintf(out, "monsters %d  treasure %d  stories %d\n",
		b.Count(world.TileMonster), b.Count(world.TileTreasure), b.Count(world.TileStory))
	return nil
}
