package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ActorDef defines an actor archetype loaded from JSON.
type ActorDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "orc")
	Name        string `json:"name"`        // Display name
	Glyph       string `json:"glyph"`       // Single character for rendering
	Color       string `json:"color"`       // Hex color code (e.g., "#3F7F3F")
	HP          int    `json:"hp"`          // Starting and maximum hit points
	Defense     int    `json:"defense"`     // Subtracted from incoming damage
	Power       int    `json:"power"`       // Melee damage before defense
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency, monsters only
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ActorDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color, white when the hex code is invalid.
func (d *ActorDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ActorsFile represents the structure of actors.json.
type ActorsFile struct {
	Player   ActorDef   `json:"player"`
	Monsters []ActorDef `json:"monsters"`
}

// LoadActors loads the player archetype and monster table from the embedded actors.json.
func LoadActors() (*ActorDef, *MonsterTable, error) {
	file, err := Load[ActorsFile]("actors.json")
	if err != nil {
		return nil, nil, err
	}
	if file.Player.ID == "" {
		return nil, nil, errors.New("gamedata: actors.json has no player archetype")
	}
	if len(file.Monsters) == 0 {
		return nil, nil, errors.New("gamedata: actors.json has no monsters")
	}
	player := file.Player
	return &player, NewMonsterTable(file.Monsters), nil
}
