package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeo/internal/combat"
	"github.com/samdwyer/dungeo/internal/game"
)

// KeyAction maps a key press to a game action for the given state.
func KeyAction(state game.State, ev *tcell.EventKey) (game.Action, bool) {
	return actionFor(state, ev.Key(), ev.Rune())
}

// actionFor maps a key and rune to an action. Arrow keys, WASD and vi keys
// all steer; digits pick menu entries directly.
func actionFor(state game.State, key tcell.Key, ch rune) (game.Action, bool) {
	dir, isDir := direction(key, ch)

	switch key {
	case tcell.KeyEnter:
		if state == game.StateCombat {
			return game.CombatConfirm, true
		}
		return game.Confirm, true
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return game.Cancel, true
	}

	switch state {
	case game.StateBoard:
		if isDir {
			return game.Move(dir), true
		}

	case game.StateCombat:
		switch ch {
		case ' ':
			return game.CombatConfirm, true
		case 'a', 'A', '1':
			return game.CombatChoose(combat.ActionAttack), true
		case 'd', 'D', '2':
			return game.CombatChoose(combat.ActionDefend), true
		case 'x', 'X', '3':
			return game.CombatChoose(combat.ActionSpecial), true
		case 'r', 'R', '4':
			return game.CombatChoose(combat.ActionRun), true
		}
		if isDir && dir == game.North {
			return game.CombatUp, true
		}
		if isDir && dir == game.South {
			return game.CombatDown, true
		}

	default:
		if ch == ' ' {
			return game.Confirm, true
		}
		if ch >= '1' && ch <= '9' {
			return game.Select(int(ch - '1')), true
		}
		if isDir && dir == game.North {
			return game.MenuUp, true
		}
		if isDir && dir == game.South {
			return game.MenuDown, true
		}
	}

	return game.Action{}, false
}

func direction(key tcell.Key, ch rune) (game.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return game.North, true
	case tcell.KeyDown:
		return game.South, true
	case tcell.KeyRight:
		return game.East, true
	case tcell.KeyLeft:
		return game.West, true
	case tcell.KeyRune:
		switch ch {
		case 'w', 'W', 'k':
			return game.North, true
		case 's', 'S', 'j':
			return game.South, true
		case 'd', 'D', 'l':
			return game.East, true
		case 'a', 'A', 'h':
			return game.West, true
		}
	}
	return 0, false
}
