// Package world provides the dungeon board and its procedural generator.
package world

// TileKind is what occupies a board cell. It never changes after generation.
type TileKind int

const (
	TileEmpty TileKind = iota
	TileMonster
	TileTreasure
	TileStory
	TileWall
	TileBossRoom
)

// String returns a human-readable kind name.
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileMonster:
		return "monster"
	case TileTreasure:
		return "treasure"
	case TileStory:
		return "story"
	case TileWall:
		return "wall"
	case TileBossRoom:
		return "boss_room"
	default:
		return "unknown"
	}
}

// Rune returns the tile's display character.
func (k TileKind) Rune() rune {
	switch k {
	case TileEmpty:
		return '.'
	case TileMonster:
		return 'm'
	case TileTreasure:
		return '$'
	case TileStory:
		return '?'
	case TileWall:
		return '#'
	case TileBossRoom:
		return 'B'
	default:
		return ' '
	}
}

// Tile represents a single board cell.
type Tile struct {
	Kind     TileKind
	Revealed bool // Flips to true on first visit or reveal, never back
	Cleared  bool // Monster tile whose encounter was won
}
