// Package entity provides the player and monster records mutated by combat.
package entity

import "github.com/samdwyer/dungeo/internal/gamedata"

// Level-up gains
const (
	levelUpHP      = 10
	levelUpAttack  = 2
	levelUpDefense = 1
	expPerLevel    = 100
)

// Player holds the per-session character stats.
type Player struct {
	Name        string
	ClassID     string
	SpecialName string
	Level       int
	Exp         int

	HP, MaxHP         int
	Spirit, MaxSpirit int
	Attack            int
	Defense           int // Current defense, including a Defend buff
	BaseDefense       int // Defense without buffs: class base plus level-up gains
	Speed             int
}

// NewPlayer creates a level 1 player from a class definition.
func NewPlayer(name string, def *gamedata.ClassDef) *Player {
	return &Player{
		Name:        name,
		ClassID:     def.ID,
		SpecialName: def.SpecialName,
		Level:       1,
		HP:          def.HP,
		MaxHP:       def.HP,
		Spirit:      def.Spirit,
		MaxSpirit:   def.Spirit,
		Attack:      def.Attack,
		Defense:     def.Defense,
		BaseDefense: def.Defense,
		Speed:       def.Speed,
	}
}

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// TakeDamage reduces HP, never below zero, and returns the damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, p.HP)
	p.HP -= actual
	return actual
}

// Heal restores HP up to MaxHP and returns the amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, p.MaxHP-p.HP)
	if actual < 0 {
		actual = 0
	}
	p.HP += actual
	return actual
}

// SpendSpirit reduces spirit and returns false if insufficient.
func (p *Player) SpendSpirit(amount int) bool {
	if p.Spirit < amount {
		return false
	}
	p.Spirit -= amount
	return true
}

// RestoreSpirit restores spirit up to MaxSpirit and returns the amount restored.
func (p *Player) RestoreSpirit(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, p.MaxSpirit-p.Spirit)
	if actual < 0 {
		actual = 0
	}
	p.Spirit += actual
	return actual
}

// ResetDefense clears any Defend buff.
func (p *Player) ResetDefense() {
	p.Defense = p.BaseDefense
}

// ExpToNextLevel returns the experience needed to level up.
func (p *Player) ExpToNextLevel() int {
	return p.Level * expPerLevel
}

// GainExp adds experience and levels up at most once. Leftover experience is
// discarded on level-up. It reports whether the player levelled.
func (p *Player) GainExp(amount int) bool {
	p.Exp += amount
	if p.Exp < p.ExpToNextLevel() {
		return false
	}

	p.Level++
	p.Exp = 0
	p.MaxHP += levelUpHP
	p.HP = p.MaxHP
	p.Attack += levelUpAttack
	p.Defense += levelUpDefense
	p.BaseDefense += levelUpDefense
	return true
}
