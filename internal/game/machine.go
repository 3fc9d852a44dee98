package game

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeo/internal/combat"
	"github.com/samdwyer/dungeo/internal/entity"
	"github.com/samdwyer/dungeo/internal/errors"
	"github.com/samdwyer/dungeo/internal/gamedata"
	"github.com/samdwyer/dungeo/internal/telemetry"
	"github.com/samdwyer/dungeo/internal/world"
)

const (
	treasureHeal   = 20
	treasureSpirit = 20
)

var mainMenuOptions = []string{"New Game", "Settings", "Exit"}

const (
	mainNewGame = iota
	mainSettings
	mainExit
)

type settingsItem int

const (
	settingSound settingsItem = iota
	settingGodMode
	settingBack
)

// Rand is the random source for boards, spawns, names and flee rolls.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Option configures a Machine.
type Option func(*Machine)

// WithRand replaces the seeded random source.
func WithRand(rng Rand) Option {
	return func(m *Machine) { m.rng = rng }
}

// WithScheduler replaces the timer used for the monster turn.
func WithScheduler(s Scheduler) Option {
	return func(m *Machine) { m.scheduler = s }
}

// WithTurnNotifier sets the callback that receives monster turn tokens.
// It runs on the scheduler's goroutine and must only hand the token back to
// the caller's loop. Without a notifier the monster acts immediately.
func WithTurnNotifier(notify func(token uint64)) Option {
	return func(m *Machine) { m.notify = notify }
}

// WithGenerator replaces the board generator.
func WithGenerator(g world.Generator) Option {
	return func(m *Machine) { m.generator = g }
}

// Machine owns the session and applies actions to it. It is not safe for
// concurrent use: one loop calls Dispatch and MonsterTurnDue.
type Machine struct {
	cfg       Config
	catalog   *gamedata.Catalog
	generator world.Generator
	rng       Rand
	resolver  *combat.Resolver

	scheduler Scheduler
	notify    func(token uint64)
	pending   *pendingTurn
	nextToken uint64

	session Session
	hit     bool // player took damage during the current step
}

// New creates a Machine on the main menu.
func New(catalog *gamedata.Catalog, cfg Config, opts ...Option) *Machine {
	m := &Machine{
		cfg:       cfg,
		catalog:   catalog,
		generator: world.DefaultGenerator(),
		scheduler: SystemScheduler{},
		session:   newSession(Settings{SoundOn: true}),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Printf("Using seed: %d", seed)
		m.rng = rand.New(rand.NewSource(seed))
	}
	m.resolver = combat.NewResolver(m.rng)
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	return m.session.State
}

// Dispatch applies one action and returns the resulting snapshot.
// Actions that make no sense in the current state are ignored; invalid
// ones are rejected with a message and change nothing else.
func (m *Machine) Dispatch(ctx context.Context, action Action) Snapshot {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.dispatch")
	defer span.End()

	from := m.session.State
	m.hit = false

	switch from {
	case StateMainMenu:
		m.handleMainMenu(action)
	case StateSettings:
		m.handleSettings(action)
	case StateCharacterSelect:
		m.handleCharacterSelect(ctx, action)
	case StateBoard:
		m.handleBoard(ctx, action)
	case StateCombat:
		m.handleCombat(ctx, action)
	case StateEnding:
		m.handleEnding(action)
	}

	span.SetAttributes(
		attribute.String("session.id", m.session.ID.String()),
		attribute.String("action", action.Kind.String()),
		attribute.String("state.from", from.String()),
		attribute.String("state.to", m.session.State.String()),
	)
	return m.Snapshot()
}

// enter switches state and resets the menu cursor.
func (m *Machine) enter(state State) {
	m.session.State = state
	m.session.MenuIndex = 0
	m.session.Message = ""
}

// reset discards the run and returns to the main menu. Settings are kept.
func (m *Machine) reset() {
	m.disarmMonsterTurn()
	m.session = newSession(m.session.Settings)
}

// wrap moves a cursor by delta over n entries, wrapping at both ends.
func wrap(index, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((index+delta)%n + n) % n
}

// navigate applies cursor actions to a menu of n entries and reports
// whether the entry under the cursor was chosen.
func navigate(cursor *int, action Action, n int) bool {
	switch action.Kind {
	case ActionMenuUp:
		*cursor = wrap(*cursor, -1, n)
	case ActionMenuDown:
		*cursor = wrap(*cursor, 1, n)
	case ActionConfirm:
		return n > 0
	case ActionSelect:
		if action.Index < 0 || action.Index >= n {
			return false
		}
		*cursor = action.Index
		return true
	}
	return false
}

func (m *Machine) handleMainMenu(action Action) {
	if !navigate(&m.session.MenuIndex, action, len(mainMenuOptions)) {
		return
	}
	switch m.session.MenuIndex {
	case mainNewGame:
		m.enter(StateCharacterSelect)
	case mainSettings:
		m.enter(StateSettings)
	case mainExit:
		m.session.Quit = true
	}
}

func (m *Machine) settingsItems() []settingsItem {
	items := []settingsItem{settingSound}
	if m.cfg.GodModeAvailable {
		items = append(items, settingGodMode)
	}
	return append(items, settingBack)
}

func (m *Machine) handleSettings(action Action) {
	if action.Kind == ActionCancel {
		m.enter(StateMainMenu)
		return
	}

	items := m.settingsItems()
	if !navigate(&m.session.MenuIndex, action, len(items)) {
		return
	}

	s := &m.session.Settings
	switch items[m.session.MenuIndex] {
	case settingSound:
		s.SoundOn = !s.SoundOn
		m.session.say("Sound " + onOff(s.SoundOn) + ".")
	case settingGodMode:
		s.GodMode = !s.GodMode
		m.session.say("God mode " + onOff(s.GodMode) + ".")
	case settingBack:
		m.enter(StateMainMenu)
	}
}

func (m *Machine) handleCharacterSelect(ctx context.Context, action Action) {
	if action.Kind == ActionCancel {
		m.enter(StateMainMenu)
		return
	}
	if !navigate(&m.session.MenuIndex, action, m.catalog.Classes.Count()) {
		return
	}
	m.startRun(ctx, m.catalog.Classes.At(m.session.MenuIndex))
}

// startRun builds the player and a fresh board. On generation failure the
// session stays on character select with the error as the message.
func (m *Machine) startRun(ctx context.Context, def *gamedata.ClassDef) {
	board, err := m.generator.Generate(ctx, m.rng)
	if err != nil {
		log.Printf("Board generation failed: %v", err)
		m.session.say("The dungeon could not be built: " + errors.GetMessage(err))
		return
	}

	name := m.catalog.Stories.RandomName(m.rng, def.ID, def.Name)
	m.session.Board = board
	m.session.Player = entity.NewPlayer(name, def)
	m.session.Encounter = nil
	m.session.Log = nil
	m.enter(StateBoard)
	m.session.say(fmt.Sprintf("%s the %s enters the dungeon.", name, def.Name))
	log.Printf("Session %s: %s the %s started", m.session.ID, name, def.ID)
}

func (m *Machine) handleBoard(ctx context.Context, action Action) {
	switch action.Kind {
	case ActionCancel:
		m.reset()
	case ActionMove:
		m.move(ctx, action.Dir)
	}
}

func (m *Machine) move(ctx context.Context, dir Direction) {
	b := m.session.Board
	dx, dy := dir.Delta()
	x, y := b.PlayerPosition()

	dest, ok := b.Tile(x+dx, y+dy)
	if !ok {
		m.session.say("You can't go that way.")
		return
	}
	if dest.Kind == world.TileWall {
		m.session.say("A wall blocks your path.")
		return
	}

	kind, ok := b.MovePlayer(dx, dy)
	if !ok {
		m.session.say("You can't go that way.")
		return
	}
	m.session.Message = ""

	switch kind {
	case world.TileTreasure:
		m.openTreasure()
	case world.TileStory:
		m.session.say(m.catalog.Stories.RandomStory(m.rng))
	case world.TileMonster:
		if dest.Cleared {
			m.session.say("Bones of a fallen foe litter the floor.")
			return
		}
		m.startEncounter(ctx, m.session.Player.Level)
	case world.TileBossRoom:
		m.startEncounter(ctx, m.session.Player.Level+combat.BossLevelGap)
	}
}

// openTreasure heals and restores spirit. Nothing is reported when the
// player was already full.
func (m *Machine) openTreasure() {
	p := m.session.Player
	hp := p.Heal(treasureHeal)
	sp := p.RestoreSpirit(treasureSpirit)
	if hp == 0 && sp == 0 {
		return
	}
	m.session.say(fmt.Sprintf("You found treasure! +%d HP, +%d spirit.", hp, sp))
}

func (m *Machine) handleEnding(action Action) {
	if navigate(&m.session.MenuIndex, action, 1) {
		m.reset()
	}
}

// menuOptions returns the labels for the current state's cursor.
func (m *Machine) menuOptions() []string {
	switch m.session.State {
	case StateMainMenu:
		return append([]string(nil), mainMenuOptions...)
	case StateSettings:
		var opts []string
		for _, item := range m.settingsItems() {
			switch item {
			case settingSound:
				opts = append(opts, "Sound: "+onOff(m.session.Settings.SoundOn))
			case settingGodMode:
				opts = append(opts, "God Mode: "+onOff(m.session.Settings.GodMode))
			case settingBack:
				opts = append(opts, "Back")
			}
		}
		return opts
	case StateCharacterSelect:
		classes := m.catalog.Classes.All()
		opts := make([]string, len(classes))
		for i, c := range classes {
			opts[i] = c.Name
		}
		return opts
	case StateCombat:
		return m.combatOptions()
	case StateEnding:
		return []string{"Return to Menu"}
	default:
		return nil
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
