package world

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/dungeo/internal/errors"
)

func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	n := b.Size
	mid := n / 2

	// Outer ring is wall except the two corridor gaps
	for i := 0; i < n; i++ {
		for _, c := range [][2]int{{i, 0}, {i, n - 1}, {0, i}, {n - 1, i}} {
			x, y := c[0], c[1]
			kind := b.Tiles[y][x].Kind
			isGap := x == mid && (y == 0 || y == n-1)
			if isGap && kind != TileEmpty {
				t.Errorf("gap (%d,%d) is %v, want empty", x, y, kind)
			}
			if !isGap && kind != TileWall {
				t.Errorf("ring (%d,%d) is %v, want wall", x, y, kind)
			}
		}
	}

	// Start is empty and revealed
	sx, sy := b.Start()
	start := b.Tiles[sy][sx]
	if start.Kind != TileEmpty || !start.Revealed {
		t.Errorf("start tile = %+v, want empty and revealed", start)
	}
	if px, py := b.PlayerPosition(); px != sx || py != sy {
		t.Errorf("player at (%d,%d), want start (%d,%d)", px, py, sx, sy)
	}

	// Exactly one boss room, far enough from the start
	if got := b.Count(TileBossRoom); got != 1 {
		t.Fatalf("boss rooms = %d, want 1", got)
	}
	bx, by, _ := b.Find(TileBossRoom)
	if d := manhattan(bx, by, sx, sy); d < 3 {
		t.Errorf("boss at (%d,%d) is %d from start, want >= 3", bx, by, d)
	}

	if got := b.Count(TileTreasure); got < 3 {
		t.Errorf("treasure tiles = %d, want >= 3", got)
	}

	// Interior only holds weighted kinds (plus the boss)
	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			switch b.Tiles[y][x].Kind {
			case TileEmpty, TileMonster, TileTreasure, TileStory, TileBossRoom:
			default:
				t.Errorf("interior (%d,%d) has kind %v", x, y, b.Tiles[y][x].Kind)
			}
		}
	}

	// Only the start is revealed on a fresh board
	revealed := 0
	for y := range b.Tiles {
		for x := range b.Tiles[y] {
			if b.Tiles[y][x].Revealed {
				revealed++
			}
		}
	}
	if revealed != 1 {
		t.Errorf("revealed tiles = %d, want 1", revealed)
	}
}

func TestGenerateInvariants(t *testing.T) {
	ctx := context.Background()
	for seed := int64(0); seed < 500; seed++ {
		b, err := Generate(ctx, seed)
		if err != nil {
			t.Fatalf("seed %d: Generate failed: %v", seed, err)
		}
		if b.Size != DefaultSize {
			t.Fatalf("seed %d: size = %d, want %d", seed, b.Size, DefaultSize)
		}
		checkInvariants(t, b)
	}
}

func TestGenerateReproducibility(t *testing.T) {
	ctx := context.Background()
	b1, err := Generate(ctx, 12345)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := Generate(ctx, 12345)
	if err != nil {
		t.Fatal(err)
	}
	if b1.String() != b2.String() {
		t.Errorf("same seed produced different boards:\n%s\n%s", b1, b2)
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	ctx := context.Background()
	b1, _ := Generate(ctx, 12345)
	b2, _ := Generate(ctx, 54321)
	if b1.String() == b2.String() {
		t.Error("boards with different seeds should not be identical")
	}
}

func TestGenerateLargerBoard(t *testing.T) {
	g := DefaultGenerator()
	g.Size = 15
	for seed := int64(0); seed < 50; seed++ {
		b, err := g.Generate(context.Background(), rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		checkInvariants(t, b)
	}
}

func TestGenerateTreasureFloorPromotes(t *testing.T) {
	g := DefaultGenerator()
	g.Weights = Weights{Empty: 1}

	b, err := g.Generate(context.Background(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got := b.Count(TileTreasure); got != 3 {
		t.Errorf("treasure tiles = %d, want exactly the floor of 3", got)
	}
}

func TestGenerateTreasureFloorFailsFast(t *testing.T) {
	g := DefaultGenerator()
	g.Weights = Weights{Monster: 1}

	_, err := g.Generate(context.Background(), rand.New(rand.NewSource(1)))
	if err == nil {
		t.Fatal("expected an error when no empty tile can be promoted")
	}
	if !errors.IsResourceExhausted(err) {
		t.Errorf("error code = %v, want RESOURCE_EXHAUSTED", errors.GetCode(err))
	}
}

// fixedRand always returns the same values.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func TestGenerateBossPlacementFailsFast(t *testing.T) {
	// On a 5x5 board the only boss candidate is (2,2), two steps from the start.
	g := DefaultGenerator()
	g.Size = 5

	_, err := g.Generate(context.Background(), fixedRand{f: 0.1, n: 0})
	if err == nil {
		t.Fatal("expected boss placement to fail on a 5x5 board")
	}
	if !errors.IsResourceExhausted(err) {
		t.Errorf("error code = %v, want RESOURCE_EXHAUSTED", errors.GetCode(err))
	}
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Generator)
	}{
		{"even size", func(g *Generator) { g.Size = 8 }},
		{"tiny size", func(g *Generator) { g.Size = 3 }},
		{"zero weights", func(g *Generator) { g.Weights = Weights{} }},
		{"zero attempts", func(g *Generator) { g.MaxAttempts = 0 }},
	}

	for _, tt := range tests {
		g := DefaultGenerator()
		tt.mutate(&g)
		_, err := g.Generate(context.Background(), rand.New(rand.NewSource(1)))
		if errors.GetCode(err) != errors.CodeInvalidArgument {
			t.Errorf("%s: error = %v, want INVALID_ARGUMENT", tt.name, err)
		}
	}
}

func TestWeightsPick(t *testing.T) {
	tests := []struct {
		roll float64
		want TileKind
	}{
		{0.0, TileEmpty},
		{0.64, TileEmpty},
		{0.65, TileMonster},
		{0.79, TileMonster},
		{0.80, TileTreasure},
		{0.89, TileTreasure},
		{0.90, TileStory},
		{0.999, TileStory},
	}

	for _, tt := range tests {
		if got := DefaultWeights.pick(tt.roll); got != tt.want {
			t.Errorf("pick(%v) = %v, want %v", tt.roll, got, tt.want)
		}
	}
}

func TestMovePlayer(t *testing.T) {
	b, err := Generate(context.Background(), 99)
	if err != nil {
		t.Fatal(err)
	}

	// Start is on the bottom edge: moving down leaves the board
	sx, sy := b.Start()
	if _, ok := b.MovePlayer(0, 1); ok {
		t.Error("moving off the bottom edge should be blocked")
	}
	if x, y := b.PlayerPosition(); x != sx || y != sy {
		t.Errorf("blocked move changed position to (%d,%d)", x, y)
	}

	kind, ok := b.MovePlayer(0, -1)
	if !ok {
		t.Fatal("moving up from the start should succeed")
	}
	want := b.Tiles[sy-1][sx]
	if kind != want.Kind {
		t.Errorf("MovePlayer returned %v, want %v", kind, want.Kind)
	}
	if !want.Revealed {
		t.Error("destination should be revealed")
	}
	if x, y := b.PlayerPosition(); x != sx || y != sy-1 {
		t.Errorf("position = (%d,%d), want (%d,%d)", x, y, sx, sy-1)
	}
}

func TestMovePlayerNeverLeavesBoard(t *testing.T) {
	b, _ := Generate(context.Background(), 7)
	rng := rand.New(rand.NewSource(7))
	dirs := [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for i := 0; i < 2000; i++ {
		d := dirs[rng.Intn(len(dirs))]
		beforeX, beforeY := b.PlayerPosition()
		_, ok := b.MovePlayer(d[0], d[1])
		x, y := b.PlayerPosition()
		if !b.InBounds(x, y) {
			t.Fatalf("player left the board at (%d,%d)", x, y)
		}
		if !ok && (x != beforeX || y != beforeY) {
			t.Fatalf("blocked move changed position")
		}
	}
}

func TestReveal(t *testing.T) {
	b, _ := Generate(context.Background(), 3)

	if _, ok := b.Reveal(-1, 0); ok {
		t.Error("Reveal out of bounds should report not found")
	}
	if _, ok := b.Reveal(0, b.Size); ok {
		t.Error("Reveal out of bounds should report not found")
	}

	kind, ok := b.Reveal(0, 0)
	if !ok || kind != TileWall {
		t.Errorf("Reveal(0,0) = %v, %v; want wall, true", kind, ok)
	}
	kind, ok = b.Reveal(0, 0)
	if !ok || kind != TileWall || !b.Tiles[0][0].Revealed {
		t.Error("Reveal should be idempotent")
	}
}

func TestCloneIsDeep(t *testing.T) {
	b, _ := Generate(context.Background(), 5)
	c := b.Clone()
	c.Tiles[1][1].Revealed = true
	c.PlayerX = 0
	if b.Tiles[1][1].Revealed {
		t.Error("Clone shares tile storage")
	}
	if b.PlayerX == 0 {
		t.Error("Clone shares player position")
	}
}

func TestTileKindString(t *testing.T) {
	tests := []struct {
		kind TileKind
		want string
	}{
		{TileEmpty, "empty"},
		{TileMonster, "monster"},
		{TileTreasure, "treasure"},
		{TileStory, "story"},
		{TileWall, "wall"},
		{TileBossRoom, "boss_room"},
		{TileKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("TileKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
