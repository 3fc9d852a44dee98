package combat

import "github.com/samdwyer/dungeo/internal/entity"

// BossLevelGap is how many levels above the player a monster must be to
// count as the boss.
const BossLevelGap = 5

// Phase is the turn state of an encounter.
type Phase int

const (
	// PhasePlayerTurn - waiting for the player to choose an action
	PhasePlayerTurn Phase = iota
	// PhaseMonsterTurn - the monster acts next
	PhaseMonsterTurn
	// PhaseEnded - the encounter is over, see Outcome
	PhaseEnded
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseMonsterTurn:
		return "monster_turn"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome is how an encounter ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeFled
	OutcomeDefeat
	OutcomeBossVictory
	OutcomeBossDefeat
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVictory:
		return "victory"
	case OutcomeFled:
		return "fled"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeBossVictory:
		return "boss_victory"
	case OutcomeBossDefeat:
		return "boss_defeat"
	default:
		return "unknown"
	}
}

// EndsRun reports whether the outcome finishes the game session.
func (o Outcome) EndsRun() bool {
	return o == OutcomeDefeat || o == OutcomeBossVictory || o == OutcomeBossDefeat
}

// IsBoss reports whether monster counts as a boss for player.
func IsBoss(player *entity.Player, monster *entity.Monster) bool {
	return monster.Level >= player.Level+BossLevelGap
}

// Encounter holds the state of one fight.
type Encounter struct {
	Player  *entity.Player
	Monster *entity.Monster
	Phase   Phase
	Outcome Outcome
	Boss    bool
	Turn    int // Actions resolved so far, both sides

	// Invulnerable keeps the player at 1 HP or more (god mode).
	Invulnerable bool
}

// NewEncounter starts a fight on the player's turn.
func NewEncounter(player *entity.Player, monster *entity.Monster) *Encounter {
	return &Encounter{
		Player:  player,
		Monster: monster,
		Phase:   PhasePlayerTurn,
		Boss:    IsBoss(player, monster),
	}
}

// Ended reports whether the encounter is over.
func (e *Encounter) Ended() bool {
	return e.Phase == PhaseEnded
}
