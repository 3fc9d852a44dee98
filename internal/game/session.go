package game

import (
	"github.com/google/uuid"

	"github.com/samdwyer/dungeo/internal/combat"
	"github.com/samdwyer/dungeo/internal/entity"
	"github.com/samdwyer/dungeo/internal/world"
)

// maxLogLines is how many recent messages the session keeps.
const maxLogLines = 6

// Settings are the player's toggles. They survive a session reset.
type Settings struct {
	SoundOn bool
	GodMode bool
}

// Session is the whole mutable state of one play session.
type Session struct {
	ID          uuid.UUID
	State       State
	Board       *world.Board      // nil before a run starts
	Player      *entity.Player    // nil before a run starts
	Encounter   *combat.Encounter // nil outside combat and ending
	MenuIndex   int
	CombatIndex int
	Message     string
	Log         []string
	Settings    Settings
	Quit        bool
}

// newSession returns a fresh session on the main menu.
func newSession(settings Settings) Session {
	return Session{
		ID:       uuid.New(),
		State:    StateMainMenu,
		Settings: settings,
	}
}

// say sets the current message and appends it to the log.
func (s *Session) say(msg string) {
	s.Message = msg
	if msg == "" {
		return
	}
	s.Log = append(s.Log, msg)
	if len(s.Log) > maxLogLines {
		s.Log = s.Log[len(s.Log)-maxLogLines:]
	}
}
