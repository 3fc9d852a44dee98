package game

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeo/internal/combat"
	"github.com/samdwyer/dungeo/internal/entity"
	"github.com/samdwyer/dungeo/internal/telemetry"
	"github.com/samdwyer/dungeo/internal/world"
)

// startEncounter spawns a monster of the given level and enters combat.
func (m *Machine) startEncounter(ctx context.Context, level int) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "combat.start")
	defer span.End()

	def, err := m.catalog.Monsters.SpawnForLevel(m.rng, level)
	if err != nil {
		log.Printf("Monster spawn failed: %v", err)
		span.RecordError(err)
		m.session.say("Something stirs in the dark, then is gone.")
		return
	}

	monster := entity.NewMonster(def, level)
	enc := combat.NewEncounter(m.session.Player, monster)
	enc.Invulnerable = m.session.Settings.GodMode

	m.session.Encounter = enc
	m.session.State = StateCombat
	m.session.CombatIndex = 0

	span.SetAttributes(
		attribute.String("monster", monster.ID()),
		attribute.Int("monster_level", level),
		attribute.Bool("boss", enc.Boss),
	)

	if enc.Boss {
		m.session.say(fmt.Sprintf("The %s (level %d) guards this chamber!", monster.Name, level))
		return
	}
	m.session.say(fmt.Sprintf("A wild %s (level %d) appears!", monster.Name, level))
}

func (m *Machine) combatOptions() []string {
	opts := make([]string, len(combat.Actions))
	for i, a := range combat.Actions {
		opts[i] = a.String()
		if a == combat.ActionSpecial && m.session.Player != nil {
			opts[i] = fmt.Sprintf("Special (%s)", m.session.Player.SpecialName)
		}
	}
	return opts
}

func (m *Machine) handleCombat(ctx context.Context, action Action) {
	n := len(combat.Actions)
	s := &m.session

	switch action.Kind {
	case ActionCombatUp, ActionMenuUp:
		s.CombatIndex = wrap(s.CombatIndex, -1, n)
	case ActionCombatDown, ActionMenuDown:
		s.CombatIndex = wrap(s.CombatIndex, 1, n)
	case ActionCombatConfirm, ActionConfirm:
		m.resolveChoice(ctx, combat.Actions[s.CombatIndex])
	case ActionCombatChoose:
		for i, a := range combat.Actions {
			if a == action.Option {
				s.CombatIndex = i
				m.resolveChoice(ctx, a)
				return
			}
		}
		s.say("Unknown action.")
	case ActionSelect:
		if action.Index < 0 || action.Index >= n {
			return
		}
		s.CombatIndex = action.Index
		m.resolveChoice(ctx, combat.Actions[action.Index])
	}
}

// resolveChoice runs the player's action and then schedules the monster.
func (m *Machine) resolveChoice(ctx context.Context, choice combat.Action) {
	enc := m.session.Encounter
	result := m.resolver.PlayerAction(ctx, enc, choice)
	m.session.say(result.Message)
	if !result.Accepted {
		return
	}
	if result.Ended() {
		m.finishEncounter(result.Outcome)
		return
	}

	if m.cfg.MonsterTurnDelay <= 0 || m.notify == nil {
		m.monsterTurn(ctx)
		return
	}
	m.armMonsterTurn()
}

// MonsterTurnDue resolves the monster turn identified by token. Stale
// tokens, and tokens that arrive after the encounter moved on, are ignored.
func (m *Machine) MonsterTurnDue(ctx context.Context, token uint64) Snapshot {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.monster_turn_due")
	defer span.End()
	span.SetAttributes(attribute.Int64("token", int64(token)))

	m.hit = false
	if !m.claimMonsterTurn(token) {
		span.SetAttributes(attribute.Bool("stale", true))
		return m.Snapshot()
	}

	enc := m.session.Encounter
	if m.session.State != StateCombat || enc == nil || enc.Phase != combat.PhaseMonsterTurn {
		span.SetAttributes(attribute.Bool("stale", true))
		return m.Snapshot()
	}

	m.monsterTurn(ctx)
	return m.Snapshot()
}

func (m *Machine) monsterTurn(ctx context.Context) {
	result := m.resolver.MonsterTurn(ctx, m.session.Encounter)
	if !result.Accepted {
		return
	}
	m.session.say(result.Message)
	if result.Damage > 0 {
		m.hit = true
	}
	if result.Ended() {
		m.finishEncounter(result.Outcome)
	}
}

// finishEncounter leaves combat according to the outcome.
func (m *Machine) finishEncounter(outcome combat.Outcome) {
	m.disarmMonsterTurn()
	s := &m.session

	switch {
	case outcome == combat.OutcomeVictory:
		x, y := s.Board.PlayerPosition()
		if tile, ok := s.Board.Tile(x, y); ok && tile.Kind == world.TileMonster {
			s.Board.MarkCleared(x, y)
		}
		s.Encounter = nil
		s.State = StateBoard
	case outcome == combat.OutcomeFled:
		s.Encounter = nil
		s.State = StateBoard
	case outcome.EndsRun():
		s.State = StateEnding
		s.MenuIndex = 0
		log.Printf("Session %s ended: %s at level %d", s.ID, outcome, s.Player.Level)
	}
}
