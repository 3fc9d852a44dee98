// Package combat resolves one-on-one turn-based fights between the player
// and a monster.
package combat

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeo/internal/telemetry"
)

const (
	defendBonus       = 2
	defendHeal        = 10
	specialCost       = 20
	specialMultiplier = 2
	fleeChance        = 0.5
)

// Action is a player combat choice.
type Action int

const (
	ActionAttack Action = iota
	ActionDefend
	ActionSpecial
	ActionRun
)

// Actions lists the combat menu in display order.
var Actions = []Action{ActionAttack, ActionDefend, ActionSpecial, ActionRun}

// String returns the menu label of the action.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "Attack"
	case ActionDefend:
		return "Defend"
	case ActionSpecial:
		return "Special"
	case ActionRun:
		return "Run"
	default:
		return "Unknown"
	}
}

// Rand is the random source for flee rolls. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Result describes one resolved action.
type Result struct {
	// Accepted is false when the action was rejected and nothing changed.
	Accepted  bool
	Damage    int
	Healing   int
	Message   string
	Outcome   Outcome // Set when this action ended the encounter
	ExpGained int
	LeveledUp bool
}

// Ended reports whether this result finished the encounter.
func (r Result) Ended() bool {
	return r.Outcome != OutcomeNone
}

// Resolver applies combat rules to encounters.
type Resolver struct {
	rng Rand
}

// NewResolver creates a resolver drawing flee rolls from rng.
func NewResolver(rng Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Damage is attack minus defense with a floor of 1.
func Damage(attack, defense int) int {
	return max(1, attack-defense)
}

// PlayerAction resolves the player's choice. Rejected actions leave the
// encounter untouched and keep the player's turn.
func (r *Resolver) PlayerAction(ctx context.Context, enc *Encounter, action Action) Result {
	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.player_action")
	defer span.End()
	span.SetAttributes(
		attribute.String("action", action.String()),
		attribute.String("monster", enc.Monster.ID()),
		attribute.Int("turn", enc.Turn),
	)

	if enc.Phase != PhasePlayerTurn {
		return reject(span, "Wait for your turn!")
	}

	player, monster := enc.Player, enc.Monster
	var result Result

	switch action {
	case ActionAttack:
		dealt := monster.TakeDamage(Damage(player.Attack, monster.Defense))
		result = Result{
			Accepted: true,
			Damage:   dealt,
			Message:  fmt.Sprintf("You strike the %s for %d damage!", monster.Name, dealt),
		}

	case ActionDefend:
		player.Defense += defendBonus
		healed := player.Heal(defendHeal)
		result = Result{
			Accepted: true,
			Healing:  healed,
			Message:  fmt.Sprintf("You brace yourself and recover %d HP.", healed),
		}

	case ActionSpecial:
		if !player.SpendSpirit(specialCost) {
			return reject(span, fmt.Sprintf("Not enough spirit for %s! (need %d)", player.SpecialName, specialCost))
		}
		dealt := monster.TakeDamage(player.Attack * specialMultiplier)
		result = Result{
			Accepted: true,
			Damage:   dealt,
			Message:  fmt.Sprintf("You use %s on the %s for %d damage!", player.SpecialName, monster.Name, dealt),
		}

	case ActionRun:
		if enc.Boss {
			return reject(span, "You cannot escape the boss!")
		}
		enc.Turn++
		if r.rng.Float64() > fleeChance {
			result = Result{Accepted: true, Message: "You escaped!"}
			r.end(ctx, enc, OutcomeFled, &result)
			span.SetAttributes(attribute.String("outcome", result.Outcome.String()))
			return result
		}
		enc.Phase = PhaseMonsterTurn
		span.SetAttributes(attribute.Bool("fled", false))
		return Result{Accepted: true, Message: "You couldn't escape!"}

	default:
		return reject(span, "Unknown action.")
	}

	enc.Turn++
	span.SetAttributes(
		attribute.Int("damage", result.Damage),
		attribute.Int("healing", result.Healing),
	)

	if !monster.IsAlive() {
		outcome := OutcomeVictory
		if enc.Boss {
			outcome = OutcomeBossVictory
			if !player.IsAlive() {
				outcome = OutcomeBossDefeat
			}
		}
		r.end(ctx, enc, outcome, &result)
		span.SetAttributes(attribute.String("outcome", result.Outcome.String()))
		return result
	}

	enc.Phase = PhaseMonsterTurn
	return result
}

// MonsterTurn resolves the monster's attack. It does nothing unless the
// encounter is waiting on the monster, so a late or repeated call is harmless.
func (r *Resolver) MonsterTurn(ctx context.Context, enc *Encounter) Result {
	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.monster_turn")
	defer span.End()

	if enc.Phase != PhaseMonsterTurn {
		span.SetAttributes(attribute.Bool("skipped", true))
		return Result{}
	}

	player, monster := enc.Player, enc.Monster

	// Defend lasts until exactly here
	player.ResetDefense()

	dmg := Damage(monster.Attack, player.Defense)
	if enc.Invulnerable && dmg >= player.HP {
		dmg = player.HP - 1
	}
	taken := player.TakeDamage(dmg)
	enc.Turn++

	result := Result{
		Accepted: true,
		Damage:   taken,
		Message:  fmt.Sprintf("The %s hits you for %d damage!", monster.Name, taken),
	}
	span.SetAttributes(
		attribute.String("monster", monster.ID()),
		attribute.Int("damage", taken),
		attribute.Int("player_hp", player.HP),
	)

	if !player.IsAlive() {
		outcome := OutcomeDefeat
		if enc.Boss {
			outcome = OutcomeBossDefeat
		}
		r.end(ctx, enc, outcome, &result)
		return result
	}

	enc.Phase = PhasePlayerTurn
	return result
}

// end closes the encounter, awards experience and appends the ending text.
func (r *Resolver) end(ctx context.Context, enc *Encounter, outcome Outcome, result *Result) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	defer span.End()

	enc.Phase = PhaseEnded
	enc.Outcome = outcome
	result.Outcome = outcome

	player, monster := enc.Player, enc.Monster
	player.ResetDefense()

	switch outcome {
	case OutcomeVictory:
		result.ExpGained = monster.ExpReward
		result.LeveledUp = player.GainExp(monster.ExpReward)
		result.Message += fmt.Sprintf(" The %s is defeated! +%d EXP.", monster.Name, monster.ExpReward)
		if result.LeveledUp {
			result.Message += fmt.Sprintf(" You reached level %d!", player.Level)
		}
	case OutcomeBossVictory:
		result.ExpGained = monster.ExpReward
		player.Exp += monster.ExpReward
		result.Message += fmt.Sprintf(" The %s falls. The dungeon is yours!", monster.Name)
	case OutcomeBossDefeat:
		result.Message += fmt.Sprintf(" You fall before the %s...", monster.Name)
	case OutcomeDefeat:
		result.Message += " You have been defeated..."
	}

	span.SetAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.Int("turns_taken", enc.Turn),
		attribute.Int("player_hp_remaining", player.HP),
		attribute.Int("exp_gained", result.ExpGained),
		attribute.Bool("leveled_up", result.LeveledUp),
	)
}

func reject(span trace.Span, message string) Result {
	span.SetAttributes(attribute.Bool("rejected", true))
	return Result{Accepted: false, Message: message}
}
