// Package game provides the game state machine that owns a play session.
package game

// State is the screen the game is on.
type State int

const (
	// StateMainMenu offers New Game, Settings and Exit.
	StateMainMenu State = iota
	// StateSettings toggles sound and god mode.
	StateSettings
	// StateCharacterSelect picks the player's class.
	StateCharacterSelect
	// StateBoard is exploration of the dungeon grid.
	StateBoard
	// StateCombat is a fight against one monster.
	StateCombat
	// StateEnding shows the result of a finished run.
	StateEnding
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateSettings:
		return "settings"
	case StateCharacterSelect:
		return "character_select"
	case StateBoard:
		return "board"
	case StateCombat:
		return "combat"
	case StateEnding:
		return "ending"
	default:
		return "unknown"
	}
}
