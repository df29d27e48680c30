package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/game"
)

// Tile background colors.
var (
	colorDarkWall    = tcell.NewRGBColor(0, 0, 100)
	colorDarkGround  = tcell.NewRGBColor(50, 50, 150)
	colorLightWall   = tcell.NewRGBColor(130, 110, 50)
	colorLightGround = tcell.NewRGBColor(200, 180, 50)
)

var (
	_ game.Presenter   = (*Terminal)(nil)
	_ game.InputSource = (*Terminal)(nil)
)

// Terminal draws sessions to a Screen and reads player input from it.
// It implements game.Presenter and game.InputSource.
type Terminal struct {
	screen *Screen
}

// NewTerminal creates a terminal front end on an initialized screen.
func NewTerminal(screen *Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Render draws the map, the visible actors, the player's HP and the latest messages.
func (t *Terminal) Render(s *game.Session) {
	t.screen.Clear()
	t.drawMap(s)
	t.drawActors(s)
	t.drawStatus(s)
	t.screen.Show()
}

func (t *Terminal) drawMap(s *game.Session) {
	m := s.Map()
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			visible := s.IsVisible(x, y)
			if !visible && !s.IsExplored(x, y) {
				continue
			}
			t.screen.SetContent(x, y, ' ', tcell.StyleDefault.Background(tileColor(m.IsWall(x, y), visible)))
		}
	}
}

func tileColor(wall, visible bool) tcell.Color {
	switch {
	case visible && wall:
		return colorLightWall
	case visible:
		return colorLightGround
	case wall:
		return colorDarkWall
	default:
		return colorDarkGround
	}
}

// drawActors draws corpses first so living actors, and the player last, end up on top.
func (t *Terminal) drawActors(s *game.Session) {
	actors := s.Actors().All()
	player := s.Player()
	draw := func(a *entity.Actor) {
		if !s.IsVisible(a.X, a.Y) {
			return
		}
		bg := tileColor(s.Map().IsWall(a.X, a.Y), true)
		t.screen.SetContent(a.X, a.Y, a.Glyph, tcell.StyleDefault.Foreground(a.Color).Background(bg))
	}
	for _, a := range actors {
		if !a.Alive && a != player {
			draw(a)
		}
	}
	for _, a := range actors {
		if a.Alive && a != player {
			draw(a)
		}
	}
	if player != nil {
		draw(player)
	}
}

func (t *Terminal) drawStatus(s *game.Session) {
	top := s.Map().Height
	_, height := t.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	if player := s.Player(); player != nil {
		status := fmt.Sprintf("HP: %d/%d", player.GetHP(), maxHP(player))
		if !player.Alive {
			status += "  You died. Press q to quit."
		}
		t.screen.DrawText(0, top, status, style)
	}

	rows := height - top - 1
	if rows <= 0 {
		return
	}
	msgs := s.Messages()
	if len(msgs) > rows {
		msgs = msgs[len(msgs)-rows:]
	}
	for i, msg := range msgs {
		t.screen.DrawText(0, top+1+i, msg, style)
	}
}

func maxHP(a *entity.Actor) int {
	if a.Fighter == nil {
		return 0
	}
	return a.Fighter.MaxHP
}
