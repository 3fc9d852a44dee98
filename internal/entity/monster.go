package entity

import (
	"math"

	"github.com/samdwyer/dungeo/internal/gamedata"
)

// BaseStats returns the unscaled stats for a monster of the given level.
func BaseStats(level int) (hp, attack, defense int) {
	return 20 + 8*level, 3 + level, 3 + level
}

// ExpReward returns the experience granted for defeating a monster of level.
func ExpReward(level int) int {
	return 20 + 10*level
}

// Monster is one encounter's opponent.
type Monster struct {
	Def            *gamedata.MonsterDef
	Name           string
	Level          int
	HP, MaxHP      int
	Attack         int
	Defense        int
	SpecialAbility string
	ExpReward      int
}

// NewMonster creates a monster of the given level from an archetype.
func NewMonster(def *gamedata.MonsterDef, level int) *Monster {
	if level < 1 {
		level = 1
	}
	hp, atk, dfn := BaseStats(level)
	maxHP := scale(hp, def.HPMultiplier)
	return &Monster{
		Def:            def,
		Name:           def.Name,
		Level:          level,
		HP:             maxHP,
		MaxHP:          maxHP,
		Attack:         scale(atk, def.AttackMultiplier),
		Defense:        scale(dfn, def.DefenseMultiplier),
		SpecialAbility: def.SpecialAbility,
		ExpReward:      ExpReward(level),
	}
}

// IsAlive returns true if the monster has HP remaining.
func (m *Monster) IsAlive() bool { return m.HP > 0 }

// TakeDamage reduces HP, never below zero, and returns the damage taken.
func (m *Monster) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, m.HP)
	m.HP -= actual
	return actual
}

// ID returns the archetype identifier.
func (m *Monster) ID() string {
	if m.Def != nil {
		return m.Def.ID
	}
	return m.Name
}

// scale multiplies a base stat, rounding to the nearest integer with a floor of 1.
func scale(base int, multiplier float64) int {
	v := int(math.Round(float64(base) * multiplier))
	if v < 1 {
		return 1
	}
	return v
}
