package game

import "time"

// Timer is a pending scheduled call.
type Timer interface {
	// Stop cancels the call and reports whether it was still pending.
	Stop() bool
}

// Scheduler runs f once after d. The real implementation wraps
// time.AfterFunc; tests substitute a manual one.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemScheduler schedules on the runtime timer.
type SystemScheduler struct{}

// AfterFunc wraps time.AfterFunc.
func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// pendingTurn is the monster turn currently armed.
type pendingTurn struct {
	token uint64
	timer Timer
}

// armMonsterTurn stops any pending monster turn and schedules a new one.
// The callback only hands the token to notify; it never touches the session.
func (m *Machine) armMonsterTurn() {
	m.disarmMonsterTurn()

	m.nextToken++
	token := m.nextToken
	notify := m.notify
	m.pending = &pendingTurn{
		token: token,
		timer: m.scheduler.AfterFunc(m.cfg.MonsterTurnDelay, func() { notify(token) }),
	}
}

// disarmMonsterTurn cancels the pending monster turn, if any.
func (m *Machine) disarmMonsterTurn() {
	if m.pending == nil {
		return
	}
	m.pending.timer.Stop()
	m.pending = nil
}

// claimMonsterTurn consumes the pending turn if token matches it.
func (m *Machine) claimMonsterTurn(token uint64) bool {
	if m.pending == nil || m.pending.token != token {
		return false
	}
	m.pending = nil
	return true
}
