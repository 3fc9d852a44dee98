package world

import "strings"

// DefaultSize is the board edge length. It must be odd so the corridor gaps
// sit exactly at the horizontal center.
const DefaultSize = 9

// Board is a square grid of tiles plus the player's position.
type Board struct {
	Size    int
	Tiles   [][]Tile // Indexed [y][x]
	PlayerX int
	PlayerY int
}

// newBoard creates a board with every tile set to kind.
func newBoard(size int, kind TileKind) *Board {
	tiles := make([][]Tile, size)
	for y := range tiles {
		tiles[y] = make([]Tile, size)
		for x := range tiles[y] {
			tiles[y][x] = Tile{Kind: kind}
		}
	}
	return &Board{Size: size, Tiles: tiles}
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Size && y >= 0 && y < b.Size
}

// Tile returns the tile at (x, y) and whether it is in bounds.
func (b *Board) Tile(x, y int) (Tile, bool) {
	if !b.InBounds(x, y) {
		return Tile{}, false
	}
	return b.Tiles[y][x], true
}

// Start returns the entry corridor cell where the player begins.
func (b *Board) Start() (int, int) {
	return b.Size / 2, b.Size - 1
}

// Exit returns the exit corridor cell in the top edge.
func (b *Board) Exit() (int, int) {
	return b.Size / 2, 0
}

// PlayerPosition returns the player's current x, y coordinates.
func (b *Board) PlayerPosition() (int, int) {
	return b.PlayerX, b.PlayerY
}

// Reveal marks the tile at (x, y) revealed and returns its kind.
// It returns false without mutating anything when (x, y) is out of bounds.
func (b *Board) Reveal(x, y int) (TileKind, bool) {
	if !b.InBounds(x, y) {
		return 0, false
	}
	b.Tiles[y][x].Revealed = true
	return b.Tiles[y][x].Kind, true
}

// MovePlayer moves the player by (dx, dy), reveals the destination and
// returns its kind. It returns false without moving when the destination is
// out of bounds. Callers pass unit steps; the magnitude is not checked.
func (b *Board) MovePlayer(dx, dy int) (TileKind, bool) {
	x, y := b.PlayerX+dx, b.PlayerY+dy
	if !b.InBounds(x, y) {
		return 0, false
	}
	b.PlayerX, b.PlayerY = x, y
	return b.Reveal(x, y)
}

// MarkCleared flags the tile at (x, y) as cleared.
func (b *Board) MarkCleared(x, y int) {
	if b.InBounds(x, y) {
		b.Tiles[y][x].Cleared = true
	}
}

// Count returns how many tiles have the given kind.
func (b *Board) Count(kind TileKind) int {
	count := 0
	for y := range b.Tiles {
		for x := range b.Tiles[y] {
			if b.Tiles[y][x].Kind == kind {
				count++
			}
		}
	}
	return count
}

// Find returns the first cell (row-major) holding kind.
func (b *Board) Find(kind TileKind) (x, y int, ok bool) {
	for y := range b.Tiles {
		for x := range b.Tiles[y] {
			if b.Tiles[y][x].Kind == kind {
				return x, y, true
			}
		}
	}
	return -1, -1, false
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{Size: b.Size, PlayerX: b.PlayerX, PlayerY: b.PlayerY}
	c.Tiles = make([][]Tile, len(b.Tiles))
	for y := range b.Tiles {
		c.Tiles[y] = append([]Tile(nil), b.Tiles[y]...)
	}
	return c
}

// String renders the fully revealed board with the player as '@'.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.Tiles {
		for x := range b.Tiles[y] {
			if x == b.PlayerX && y == b.PlayerY {
				sb.WriteRune('@')
				continue
			}
			sb.WriteRune(b.Tiles[y][x].Kind.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// manhattan returns the grid distance between two cells.
func manhattan(x1, y1, x2, y2 int) int {
	return abs(x1-x2) + abs(y1-y2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
