package game

import (
	"github.com/samdwyer/dungeo/internal/combat"
	"github.com/samdwyer/dungeo/internal/entity"
	"github.com/samdwyer/dungeo/internal/gamedata"
	"github.com/samdwyer/dungeo/internal/world"
)

// Snapshot is a read-only copy of the session for presentation.
// Nothing in it aliases the Machine's state.
type Snapshot struct {
	SessionID string
	State     State

	// Menu holds the options of the current menu or combat cursor.
	Menu      []string
	MenuIndex int

	// Classes is set on the character select screen.
	Classes []gamedata.ClassDef

	Board   *world.Board
	Player  *entity.Player
	Monster *entity.Monster

	Phase              combat.Phase
	Outcome            combat.Outcome
	Boss               bool
	MonsterTurnPending bool

	Message string
	Log     []string

	// PlayerHit is set when the step that produced this snapshot hurt the player.
	PlayerHit bool

	Settings Settings
	Quit     bool
}

// Snapshot returns a copy of the current session.
func (m *Machine) Snapshot() Snapshot {
	s := &m.session
	snap := Snapshot{
		SessionID:          s.ID.String(),
		State:              s.State,
		Menu:               m.menuOptions(),
		Message:            s.Message,
		Log:                append([]string(nil), s.Log...),
		Settings:           s.Settings,
		Quit:               s.Quit,
		PlayerHit:          m.hit,
		MonsterTurnPending: m.pending != nil,
	}

	switch s.State {
	case StateCombat:
		snap.MenuIndex = s.CombatIndex
	default:
		snap.MenuIndex = s.MenuIndex
	}

	if s.State == StateCharacterSelect {
		snap.Classes = append([]gamedata.ClassDef(nil), m.catalog.Classes.All()...)
	}
	if s.Board != nil {
		snap.Board = s.Board.Clone()
	}
	if s.Player != nil {
		p := *s.Player
		snap.Player = &p
	}
	if enc := s.Encounter; enc != nil {
		mon := *enc.Monster
		snap.Monster = &mon
		snap.Phase = enc.Phase
		snap.Outcome = enc.Outcome
		snap.Boss = enc.Boss
	}
	return snap
}
