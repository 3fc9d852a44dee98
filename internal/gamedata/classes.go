package gamedata

import "github.com/gdamore/tcell/v2"

// ClassDef defines a playable class loaded from JSON.
type ClassDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "warrior")
	Name        string `json:"name"`        // Display name (e.g., "Warrior")
	Symbol      string `json:"symbol"`      // Single character for rendering (e.g., "W")
	Color       string `json:"color"`       // Hex color code for the player glyph
	HP          int    `json:"hp"`          // Base hit points
	Attack      int    `json:"attack"`      // Base attack power
	Defense     int    `json:"defense"`     // Base defense value
	Speed       int    `json:"speed"`       // Base speed
	Spirit      int    `json:"spirit"`      // Spirit pool that gates the special
	SpecialName string `json:"specialName"` // Name of the class special (e.g., "Cleave")
}

// SymbolRune returns the symbol as a rune for rendering.
func (c *ClassDef) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '@'
	}
	return rune(c.Symbol[0])
}

// TCellColor returns the class color as a tcell.Color.
func (c *ClassDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorYellow
	}
	return color
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}
