package game

import "github.com/samdwyer/dungeo/internal/combat"

// ActionKind identifies an abstract input.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMenuUp
	ActionMenuDown
	ActionConfirm
	ActionCancel
	// ActionSelect moves the menu cursor to Index and confirms it.
	ActionSelect
	ActionMove
	ActionCombatUp
	ActionCombatDown
	ActionCombatConfirm
	// ActionCombatChoose picks Option directly.
	ActionCombatChoose
)

// String returns a human-readable action name.
func (k ActionKind) String() string {
	switch k {
	case ActionMenuUp:
		return "menu_up"
	case ActionMenuDown:
		return "menu_down"
	case ActionConfirm:
		return "confirm"
	case ActionCancel:
		return "cancel"
	case ActionSelect:
		return "select"
	case ActionMove:
		return "move"
	case ActionCombatUp:
		return "combat_up"
	case ActionCombatDown:
		return "combat_down"
	case ActionCombatConfirm:
		return "combat_confirm"
	case ActionCombatChoose:
		return "combat_choose"
	default:
		return "none"
	}
}

// Direction is a unit step on the board.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Delta returns the x, y step for the direction. North is up (y-1).
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "none"
	}
}

// Action is one discrete input sent to the Machine.
type Action struct {
	Kind   ActionKind
	Dir    Direction     // ActionMove
	Index  int           // ActionSelect
	Option combat.Action // ActionCombatChoose
}

// Convenience constructors
var (
	MenuUp        = Action{Kind: ActionMenuUp}
	MenuDown      = Action{Kind: ActionMenuDown}
	Confirm       = Action{Kind: ActionConfirm}
	Cancel        = Action{Kind: ActionCancel}
	CombatUp      = Action{Kind: ActionCombatUp}
	CombatDown    = Action{Kind: ActionCombatDown}
	CombatConfirm = Action{Kind: ActionCombatConfirm}
)

// Move returns a move action.
func Move(dir Direction) Action {
	return Action{Kind: ActionMove, Dir: dir}
}

// Select returns an action that picks menu entry index.
func Select(index int) Action {
	return Action{Kind: ActionSelect, Index: index}
}

// CombatChoose returns an action that resolves option immediately.
func CombatChoose(option combat.Action) Action {
	return Action{Kind: ActionCombatChoose, Option: option}
}
