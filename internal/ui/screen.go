// Package ui draws game snapshots and turns terminal input into game actions.
package ui

import "github.com/gdamore/tcell/v2"

var styleBase = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Screen is the terminal the app draws on and reads events from.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the real terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(term)
}

// newScreen initializes term. Tests pass a simulation screen.
func newScreen(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(styleBase)
	term.EnableMouse()
	term.HideCursor()
	term.Clear()
	return &Screen{term: term}, nil
}

// Close restores the terminal.
func (s *Screen) Close() { s.term.Fini() }

// PollEvent blocks for the next event.
func (s *Screen) PollEvent() tcell.Event { return s.term.PollEvent() }

// PostEvent queues ev for PollEvent from any goroutine.
func (s *Screen) PostEvent(ev tcell.Event) error { return s.term.PostEvent(ev) }

// Beep rings the bell.
func (s *Screen) Beep() { _ = s.term.Beep() }

// Clear empties the back buffer.
func (s *Screen) Clear() { s.term.Clear() }

// Show flushes the back buffer.
func (s *Screen) Show() { s.term.Show() }

// Sync repaints everything, e.g. after a resize.
func (s *Screen) Sync() { s.term.Sync() }

// Size returns the terminal width and height in cells.
func (s *Screen) Size() (int, int) { return s.term.Size() }

// Put draws one rune.
func (s *Screen) Put(x, y int, r rune, style tcell.Style) {
	s.term.SetContent(x, y, r, nil, style)
}

// Text draws msg on row y starting at x, clipped at the right edge.
// It returns the number of cells written.
func (s *Screen) Text(x, y int, msg string, style tcell.Style) int {
	w, _ := s.term.Size()
	n := 0
	for _, r := range msg {
		if x+n >= w {
			break
		}
		s.term.SetContent(x+n, y, r, nil, style)
		n++
	}
	return n
}
