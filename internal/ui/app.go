package ui

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeo/internal/game"
	"github.com/samdwyer/dungeo/internal/gamedata"
	"github.com/samdwyer/dungeo/internal/telemetry"
)

// monsterTurnEvent carries a monster turn token from the timer goroutine
// into the event loop.
type monsterTurnEvent struct {
	tcell.EventTime
	token uint64
}

func newMonsterTurnEvent(token uint64) *monsterTurnEvent {
	ev := &monsterTurnEvent{token: token}
	ev.SetEventNow()
	return ev
}

// App runs the terminal event loop around a game.Machine.
type App struct {
	screen   *Screen
	renderer *Renderer
	machine  *game.Machine
	running  bool
}

// NewApp opens the terminal and creates the machine.
func NewApp(catalog *gamedata.Catalog, cfg game.Config) (*App, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}

	notify := func(token uint64) {
		if err := screen.PostEvent(newMonsterTurnEvent(token)); err != nil {
			log.Printf("Dropped monster turn %d: %v", token, err)
		}
	}

	return &App{
		screen:   screen,
		renderer: NewRenderer(screen, catalog.Classes),
		machine:  game.New(catalog, cfg, game.WithTurnNotifier(notify)),
		running:  true,
	}, nil
}

// Run executes the main loop until the player exits.
func (a *App) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("ui")
	_, span := tracer.Start(ctx, "ui.run")
	defer span.End()
	defer a.screen.Close()

	snap := a.machine.Snapshot()
	span.SetAttributes(attribute.String("session.id", snap.SessionID))

	for a.running {
		a.renderer.Render(snap)
		if snap.Quit {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		snap = a.handleEvent(ctx, a.screen.PollEvent(), snap)
	}
	return nil
}

// handleEvent processes a single event and returns the new snapshot.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event, snap game.Snapshot) game.Snapshot {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			a.running = false
			return snap
		}
		action, ok := KeyAction(snap.State, ev)
		if !ok {
			return snap
		}
		return a.apply(a.machine.Dispatch(ctx, action))

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return snap
		}
		_, y := ev.Position()
		if i, ok := a.renderer.MenuIndexAt(y); ok {
			return a.apply(a.machine.Dispatch(ctx, game.Select(i)))
		}

	case *monsterTurnEvent:
		return a.apply(a.machine.MonsterTurnDue(ctx, ev.token))

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return snap
}

// apply plays side effects of a step.
func (a *App) apply(snap game.Snapshot) game.Snapshot {
	if snap.PlayerHit && snap.Settings.SoundOn {
		a.screen.Beep()
	}
	return snap
}
