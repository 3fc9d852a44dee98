package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeo/internal/errors"
	"github.com/samdwyer/dungeo/internal/telemetry"
)

const (
	defaultMinTreasure     = 3
	defaultMinBossDistance = 3
	defaultMaxAttempts     = 100
)

// Rand is the random source used by the generator.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Weights are the relative odds of each kind for a random interior tile.
type Weights struct {
	Empty    float64
	Monster  float64
	Treasure float64
	Story    float64
}

// DefaultWeights gives cumulative thresholds of 0.65 / 0.80 / 0.90 / 1.0.
var DefaultWeights = Weights{Empty: 0.65, Monster: 0.15, Treasure: 0.10, Story: 0.10}

func (w Weights) total() float64 {
	return w.Empty + w.Monster + w.Treasure + w.Story
}

// pick maps a uniform roll in [0, 1) onto a kind.
func (w Weights) pick(roll float64) TileKind {
	r := roll * w.total()
	switch {
	case r < w.Empty:
		return TileEmpty
	case r < w.Empty+w.Monster:
		return TileMonster
	case r < w.Empty+w.Monster+w.Treasure:
		return TileTreasure
	default:
		return TileStory
	}
}

// Generator builds boards. The zero value is not usable; start from
// DefaultGenerator and override fields.
type Generator struct {
	Size            int
	Weights         Weights
	MinTreasure     int
	MinBossDistance int
	// MaxAttempts bounds boss placement. Treasure promotion may sample
	// MaxAttempts*Size*Size cells before giving up.
	MaxAttempts int
}

// DefaultGenerator returns the generator used for new games.
func DefaultGenerator() Generator {
	return Generator{
		Size:            DefaultSize,
		Weights:         DefaultWeights,
		MinTreasure:     defaultMinTreasure,
		MinBossDistance: defaultMinBossDistance,
		MaxAttempts:     defaultMaxAttempts,
	}
}

// Generate builds a default board from a seed.
func Generate(ctx context.Context, seed int64) (*Board, error) {
	return DefaultGenerator().Generate(ctx, rand.New(rand.NewSource(seed)))
}

// Generate builds a board: a wall ring with entry and exit gaps, weighted
// random interior, one boss room away from the start and a treasure floor.
// It fails rather than loop when a placement constraint cannot be met.
func (g Generator) Generate(ctx context.Context, rng Rand) (*Board, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	if err := g.validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	b := newBoard(g.Size, TileWall)

	for y := 1; y < g.Size-1; y++ {
		for x := 1; x < g.Size-1; x++ {
			b.Tiles[y][x].Kind = g.Weights.pick(rng.Float64())
		}
	}

	exitX, exitY := b.Exit()
	b.Tiles[exitY][exitX].Kind = TileEmpty
	startX, startY := b.Start()
	b.Tiles[startY][startX].Kind = TileEmpty
	b.PlayerX, b.PlayerY = startX, startY
	b.Reveal(startX, startY)

	bossAttempts, err := g.placeBoss(b, rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	promoted, err := g.enforceTreasureFloor(b, rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("board.size", g.Size),
		attribute.Int("board.boss_attempts", bossAttempts),
		attribute.Int("board.treasure_promoted", promoted),
		attribute.Int("board.monsters", b.Count(TileMonster)),
		attribute.Int("board.treasure", b.Count(TileTreasure)),
		attribute.Int64("board.generation_us", time.Since(startTime).Microseconds()),
	)

	return b, nil
}

func (g Generator) validate() error {
	if g.Size < 5 || g.Size%2 == 0 {
		return errors.InvalidArgumentf("board size must be odd and at least 5, got %d", g.Size)
	}
	if g.Weights.total() <= 0 {
		return errors.InvalidArgumentf("tile weights must sum to a positive value")
	}
	if g.MaxAttempts <= 0 {
		return errors.InvalidArgumentf("max attempts must be positive, got %d", g.MaxAttempts)
	}
	return nil
}

// placeBoss samples cells in [2, Size-3] until one is far enough from the
// start. It returns the number of attempts used.
func (g Generator) placeBoss(b *Board, rng Rand) (int, error) {
	startX, startY := b.Start()
	span := g.Size - 4

	for attempt := 1; attempt <= g.MaxAttempts; attempt++ {
		x := 2 + rng.Intn(span)
		y := 2 + rng.Intn(span)
		if manhattan(x, y, startX, startY) >= g.MinBossDistance {
			b.Tiles[y][x].Kind = TileBossRoom
			return attempt, nil
		}
	}

	return g.MaxAttempts, errors.ResourceExhaustedf("no boss room cell at distance %d after %d attempts",
		g.MinBossDistance, g.MaxAttempts).
		WithMeta("size", g.Size).
		WithMeta("attempts", g.MaxAttempts)
}

// enforceTreasureFloor promotes random empty interior cells to treasure until
// MinTreasure is met. It returns how many cells were promoted.
func (g Generator) enforceTreasureFloor(b *Board, rng Rand) (int, error) {
	count := b.Count(TileTreasure)
	promoted := 0
	limit := g.MaxAttempts * g.Size * g.Size
	inner := g.Size - 2

	for attempt := 0; attempt < limit && count < g.MinTreasure; attempt++ {
		x := 1 + rng.Intn(inner)
		y := 1 + rng.Intn(inner)
		if b.Tiles[y][x].Kind != TileEmpty {
			continue
		}
		b.Tiles[y][x].Kind = TileTreasure
		count++
		promoted++
	}

	if count < g.MinTreasure {
		return promoted, errors.ResourceExhaustedf("only %d of %d treasure tiles placed after %d samples",
			count, g.MinTreasure, limit).
			WithMeta("size", g.Size).
			WithMeta("attempts", limit)
	}
	return promoted, nil
}
