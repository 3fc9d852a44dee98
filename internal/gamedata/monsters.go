package gamedata

import "github.com/gdamore/tcell/v2"

// MaxTier is the highest monster tier in the catalog.
const MaxTier = 3

// MonsterDef defines a monster archetype loaded from JSON.
// Instance stats are the level-scaled base stats times the multipliers.
type MonsterDef struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Glyph             string  `json:"glyph"`
	Color             string  `json:"color"`
	Tier              int     `json:"tier"`
	HPMultiplier      float64 `json:"hpMultiplier"`
	AttackMultiplier  float64 `json:"attackMultiplier"`
	DefenseMultiplier float64 `json:"defenseMultiplier"`
	SpecialAbility    string  `json:"specialAbility"`
	SpawnWeight       int     `json:"spawnWeight"` // Relative frequency within the tier
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	if len(m.Glyph) == 0 {
		return '?'
	}
	return rune(m.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (m *MonsterDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(m.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// TierForLevel maps a monster level onto a catalog tier.
// Levels 1-3 are tier 1, 4-6 tier 2, and everything above tier 3.
func TierForLevel(level int) int {
	tier := (level + 2) / 3
	if tier < 1 {
		return 1
	}
	if tier > MaxTier {
		return MaxTier
	}
	return tier
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster archetypes from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}
