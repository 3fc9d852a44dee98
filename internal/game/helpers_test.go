package game

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeo/internal/combat"
	"github.com/samdwyer/dungeo/internal/entity"
	"github.com/samdwyer/dungeo/internal/gamedata"
	"github.com/samdwyer/dungeo/internal/world"
)

// scriptedRand returns queued Float64 values before falling back to the
// seeded source.
type scriptedRand struct {
	*rand.Rand
	floats []float64
}

func newScriptedRand(seed int64) *scriptedRand {
	return &scriptedRand{Rand: rand.New(rand.NewSource(seed))}
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) > 0 {
		f := r.floats[0]
		r.floats = r.floats[1:]
		return f
	}
	return r.Rand.Float64()
}

type manualTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// manualScheduler records timers and fires them on demand.
type manualScheduler struct {
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &manualTimer{delay: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) fire(i int) {
	t := s.timers[i]
	if t.stopped || t.fired {
		return
	}
	t.fired = true
	t.f()
}

type harness struct {
	m      *Machine
	rng    *scriptedRand
	sched  *manualScheduler
	tokens []uint64
}

// newHarness builds a machine with a manual scheduler and a token recorder.
func newHarness(t *testing.T, cfg Config, opts ...Option) *harness {
	t.Helper()
	h := &harness{rng: newScriptedRand(1), sched: &manualScheduler{}}
	all := append([]Option{
		WithRand(h.rng),
		WithScheduler(h.sched),
		WithTurnNotifier(func(token uint64) { h.tokens = append(h.tokens, token) }),
	}, opts...)
	h.m = New(gamedata.MustLoadCatalog(), cfg, all...)
	return h
}

// instant returns a config whose monster turns resolve inside Dispatch.
func instant() Config {
	return Config{}
}

// startRun goes from the main menu to the board with the class at index.
func (h *harness) startRun(t *testing.T, classIndex int) {
	t.Helper()
	ctx := context.Background()
	h.m.Dispatch(ctx, Select(mainNewGame))
	require.Equal(t, StateCharacterSelect, h.m.State())
	h.m.Dispatch(ctx, Select(classIndex))
	require.Equal(t, StateBoard, h.m.State())
}

// openBoard returns a 9x9 board with walls on the ring, empty floor
// everywhere else and the player on the start tile.
func openBoard(placed map[[2]int]world.TileKind) *world.Board {
	const n = world.DefaultSize
	b := &world.Board{Size: n, Tiles: make([][]world.Tile, n)}
	for y := 0; y < n; y++ {
		b.Tiles[y] = make([]world.Tile, n)
		for x := 0; x < n; x++ {
			edge := x == 0 || y == 0 || x == n-1 || y == n-1
			gap := x == n/2 && (y == 0 || y == n-1)
			if edge && !gap {
				b.Tiles[y][x].Kind = world.TileWall
			}
		}
	}
	for pos, kind := range placed {
		b.Tiles[pos[1]][pos[0]].Kind = kind
	}
	b.PlayerX, b.PlayerY = b.Start()
	b.Reveal(b.PlayerX, b.PlayerY)
	return b
}

// fight puts the session into combat against the given archetype.
func (h *harness) fight(t *testing.T, monsterID string, level int) *combat.Encounter {
	t.Helper()
	def := h.m.catalog.Monsters.GetByID(monsterID)
	require.NotNil(t, def, "monster %q", monsterID)

	enc := combat.NewEncounter(h.m.session.Player, entity.NewMonster(def, level))
	h.m.session.Encounter = enc
	h.m.session.State = StateCombat
	h.m.session.CombatIndex = 0
	return enc
}
