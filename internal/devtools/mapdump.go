// Package devtools renders sessions as plain text for debugging generated dungeons.
package devtools

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/game"
)

// DumpOptions controls WriteMap output.
type DumpOptions struct {
	Color        bool // Emit ANSI color codes
	RevealedOnly bool // Show only explored tiles and visible actors, as the player would
}

var (
	styleWall    = color.Style{color.FgGray}
	styleFloor   = color.Style{color.FgBlue}
	styleLit     = color.Style{color.FgYellow}
	stylePlayer  = color.Style{color.FgGreen, color.OpBold}
	styleMonster = color.Style{color.FgRed, color.OpBold}
	styleCorpse  = color.Style{color.FgGray}
)

// WriteMap writes the map one row per line, followed by a legend and the actor list.
func WriteMap(w io.Writer, s *game.Session, opts DumpOptions) error {
	var b strings.Builder
	paint := func(style color.Style, text string) string {
		if !opts.Color {
			return text
		}
		return style.Sprint(text)
	}

	m := s.Map()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if a := actorAt(s, x, y, opts.RevealedOnly); a != nil {
				b.WriteString(paint(actorStyle(s, a), string(a.Glyph)))
				continue
			}
			visible := s.IsVisible(x, y)
			switch {
			case opts.RevealedOnly && !s.IsExplored(x, y):
				b.WriteByte(' ')
			case m.IsWall(x, y):
				b.WriteString(paint(styleWall, "#"))
			case visible:
				b.WriteString(paint(styleLit, "."))
			default:
				b.WriteString(paint(styleFloor, "."))
			}
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nseed %d, turn %d, %dx%d\n", s.Seed(), s.Turn(), m.Width, m.Height)
	b.WriteString("legend: # wall  . floor  @ player\n")
	for _, a := range s.Actors().All() {
		if opts.RevealedOnly && !s.IsVisible(a.X, a.Y) {
			continue
		}
		line := fmt.Sprintf("%c %-8s (%d,%d) hp %d", a.Glyph, a.Name, a.X, a.Y, a.GetHP())
		if !a.Alive {
			line += " dead"
		}
		b.WriteString(paint(actorStyle(s, a), line))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// actorAt picks the actor to draw on (x, y): the player, then a living actor, then a corpse.
func actorAt(s *game.Session, x, y int, revealedOnly bool) *entity.Actor {
	if revealedOnly && !s.IsVisible(x, y) {
		return nil
	}
	var living, corpse *entity.Actor
	for _, a := range s.Actors().All() {
		if a.X != x || a.Y != y {
			continue
		}
		switch {
		case a.ID == s.PlayerID():
			return a
		case a.Alive && living == nil:
			living = a
		case !a.Alive && corpse == nil:
			corpse = a
		}
	}
	if living != nil {
		return living
	}
	return corpse
}

func actorStyle(s *game.Session, a *entity.Actor) color.Style {
	switch {
	case a.ID == s.PlayerID():
		return stylePlayer
	case !a.Alive:
		return styleCorpse
	default:
		return styleMonster
	}
}
