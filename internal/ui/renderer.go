package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeo/internal/combat"
	"github.com/samdwyer/dungeo/internal/game"
	"github.com/samdwyer/dungeo/internal/gamedata"
	"github.com/samdwyer/dungeo/internal/world"
)

const (
	boardLeft = 2
	boardTop  = 2
	menuTop   = 4
	panelGap  = 4
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleCursor = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold)
	styleGood   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer handles drawing snapshots to the screen.
type Renderer struct {
	screen  *Screen
	classes *gamedata.ClassRegistry

	// Rows of the last drawn menu, for mouse selection.
	menuY     int
	menuCount int
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, classes *gamedata.ClassRegistry) *Renderer {
	return &Renderer{screen: screen, classes: classes}
}

// Render draws the snapshot.
func (r *Renderer) Render(snap game.Snapshot) {
	r.screen.Clear()
	r.menuCount = 0

	r.drawText(boardLeft, 0, "D U N G E O", styleTitle)

	switch snap.State {
	case game.StateMainMenu:
		r.drawText(boardLeft, 2, "A turn-based dungeon crawl.", styleDim)
		r.drawMenu(boardLeft, menuTop, snap.Menu, snap.MenuIndex)
	case game.StateSettings:
		r.drawText(boardLeft, 2, "Settings", styleText)
		r.drawMenu(boardLeft, menuTop, snap.Menu, snap.MenuIndex)
	case game.StateCharacterSelect:
		r.drawText(boardLeft, 2, "Choose your class", styleText)
		r.drawMenu(boardLeft, menuTop, snap.Menu, snap.MenuIndex)
		r.drawClasses(boardLeft+14, menuTop, snap.Classes)
	case game.StateBoard:
		r.drawBoard(snap)
		r.drawStatus(boardLeft+snap.Board.Size*2+panelGap, boardTop, snap)
	case game.StateCombat:
		r.drawCombat(snap)
	case game.StateEnding:
		r.drawEnding(snap)
	}

	_, h := r.screen.Size()
	if snap.Message != "" {
		r.drawText(boardLeft, h-2, snap.Message, styleText)
	}
	r.drawText(boardLeft, h-1, r.helpLine(snap.State), styleDim)

	r.screen.Show()
}

// MenuIndexAt returns the menu entry drawn on row y.
func (r *Renderer) MenuIndexAt(y int) (int, bool) {
	i := y - r.menuY
	if i < 0 || i >= r.menuCount {
		return 0, false
	}
	return i, true
}

func (r *Renderer) helpLine(state game.State) string {
	switch state {
	case game.StateBoard:
		return "arrows/wasd move  esc menu  ctrl-c quit"
	case game.StateCombat:
		return "up/down choose  enter act  a/d/x/r shortcuts"
	default:
		return "up/down choose  enter confirm  esc back"
	}
}

func (r *Renderer) drawMenu(x, y int, options []string, cursor int) {
	r.menuY = y
	r.menuCount = len(options)
	for i, opt := range options {
		if i == cursor {
			r.drawText(x, y+i, "> "+opt+" ", styleCursor)
			continue
		}
		r.drawText(x, y+i, "  "+opt, styleText)
	}
}

func (r *Renderer) drawClasses(x, y int, classes []gamedata.ClassDef) {
	for i, c := range classes {
		style := tcell.StyleDefault.Foreground(c.TCellColor())
		r.screen.Put(x, y+i, c.SymbolRune(), style)
		r.drawText(x+2, y+i, fmt.Sprintf("HP %-3d ATK %-2d DEF %-2d SPD %-2d SPIRIT %-2d  %s",
			c.HP, c.Attack, c.Defense, c.Speed, c.Spirit, c.SpecialName), styleDim)
	}
}

func (r *Renderer) drawBoard(snap game.Snapshot) {
	b := snap.Board
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			tile := b.Tiles[y][x]
			ch, style := '·', styleDim
			if tile.Revealed {
				ch, style = tile.Kind.Rune(), tileStyle(tile)
			}
			r.screen.Put(boardLeft+x*2, boardTop+y, ch, style)
		}
	}

	symbol, color := '@', tcell.ColorYellow
	if def, err := r.classes.Get(snap.Player.ClassID); err == nil {
		symbol, color = def.SymbolRune(), def.TCellColor()
	}
	px, py := b.PlayerPosition()
	r.screen.Put(boardLeft+px*2, boardTop+py, symbol, tcell.StyleDefault.Foreground(color).Bold(true))
}

func tileStyle(tile world.Tile) tcell.Style {
	switch tile.Kind {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileMonster:
		if tile.Cleared {
			return styleDim
		}
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case world.TileTreasure:
		return tcell.StyleDefault.Foreground(tcell.ColorGold)
	case world.TileStory:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua)
	case world.TileBossRoom:
		return tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorSilver)
	}
}

func (r *Renderer) drawStatus(x, y int, snap game.Snapshot) {
	p := snap.Player
	lines := []string{
		p.Name,
		fmt.Sprintf("Level %d  EXP %d/%d", p.Level, p.Exp, p.ExpToNextLevel()),
		fmt.Sprintf("HP     %s %d/%d", bar(p.HP, p.MaxHP, 10), p.HP, p.MaxHP),
		fmt.Sprintf("Spirit %s %d/%d", bar(p.Spirit, p.MaxSpirit, 10), p.Spirit, p.MaxSpirit),
		fmt.Sprintf("ATK %d  DEF %d  SPD %d", p.Attack, p.Defense, p.Speed),
	}
	for i, line := range lines {
		r.drawText(x, y+i, line, styleText)
	}
	if snap.Settings.GodMode {
		r.drawText(x, y+len(lines)+1, "god mode", styleGood)
	}

	for i, line := range snap.Log {
		r.drawText(x, y+len(lines)+3+i, line, styleDim)
	}
}

func (r *Renderer) drawCombat(snap game.Snapshot) {
	m := snap.Monster
	title := fmt.Sprintf("%s  (level %d)", m.Name, m.Level)
	if snap.Boss {
		title = "BOSS  " + title
	}
	r.screen.Put(boardLeft, boardTop, m.Def.GlyphRune(), tcell.StyleDefault.Foreground(m.Def.TCellColor()).Bold(true))
	r.drawText(boardLeft+2, boardTop, title, styleBad)
	r.drawText(boardLeft+2, boardTop+1, fmt.Sprintf("HP %s %d/%d  ATK %d  DEF %d",
		bar(m.HP, m.MaxHP, 10), m.HP, m.MaxHP, m.Attack, m.Defense), styleText)

	r.drawStatus(boardLeft+40, boardTop, snap)

	r.drawMenu(boardLeft, boardTop+4, snap.Menu, snap.MenuIndex)
	if snap.MonsterTurnPending || snap.Phase == combat.PhaseMonsterTurn {
		r.drawText(boardLeft, boardTop+4+len(snap.Menu)+1, fmt.Sprintf("The %s is about to act...", m.Name), styleDim)
	}
}

func (r *Renderer) drawEnding(snap game.Snapshot) {
	title, style := "DEFEAT", styleBad
	if snap.Outcome == combat.OutcomeBossVictory {
		title, style = "VICTORY", styleGood
	}
	r.drawText(boardLeft, boardTop, title, style)
	if p := snap.Player; p != nil {
		r.drawText(boardLeft, boardTop+1, fmt.Sprintf("%s reached level %d.", p.Name, p.Level), styleText)
	}
	for i, line := range snap.Log {
		r.drawText(boardLeft, boardTop+3+i, line, styleDim)
	}
	r.drawMenu(boardLeft, boardTop+4+len(snap.Log), snap.Menu, snap.MenuIndex)
}

func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	r.screen.Text(x, y, msg, style)
}

// bar renders value/max as a fixed-width gauge.
func bar(value, maxValue, width int) string {
	if maxValue <= 0 {
		return "[" + strings.Repeat("-", width) + "]"
	}
	filled := value * width / maxValue
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
