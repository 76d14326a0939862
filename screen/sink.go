// Package screen paints terminal commands onto a tcell.Screen.
//
// Sink lets the renderer drive any tcell backend (a real tty, or the
// simulation screen in tests) instead of writing escape sequences directly.
// Output is staged in the screen's cell buffer until Flush calls Show.
package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridterm/terminal"
)

// Sink implements terminal.Sink and terminal.Flusher over a tcell.Screen
type Sink struct {
	screen tcell.Screen
	x, y   int
	style  tcell.Style
}

// NewSink wraps an initialized screen
func NewSink(s tcell.Screen) *Sink {
	return &Sink{screen: s, style: tcell.StyleDefault}
}

// Screen returns the wrapped screen
func (s *Sink) Screen() tcell.Screen {
	return s.screen
}

// Apply executes one command against the screen's cell buffer
func (s *Sink) Apply(c terminal.Command) error {
	switch cmd := c.(type) {
	case terminal.MoveTo:
		s.x, s.y = cmd.X, cmd.Y
	case terminal.ApplyStyle:
		s.style = ApplyStyle(s.style, cmd.Style)
	case terminal.Write:
		for _, r := range cmd.Text {
			s.screen.SetContent(s.x, s.y, r, nil, s.style)
			s.x++
		}
	case terminal.Cursor:
		if cmd.Visibility == terminal.Show {
			s.screen.ShowCursor(s.x, s.y)
		} else {
			s.screen.HideCursor()
		}
	case terminal.Clear:
		s.screen.Clear()
	}
	return nil
}

// Flush presents staged content
func (s *Sink) Flush() error {
	s.screen.Show()
	return nil
}

// ApplyStyle folds a terminal style into a tcell style
func ApplyStyle(base tcell.Style, st terminal.Style) tcell.Style {
	switch st.Kind {
	case terminal.StyleForeground:
		return base.Foreground(Color(st.Color))
	case terminal.StyleBackground:
		return base.Background(Color(st.Color))
	default:
		return tcell.StyleDefault
	}
}

// Color converts a terminal color to its tcell equivalent
// Named colors map to the first 16 palette entries, which follow the same ANSI order
func Color(c terminal.Color) tcell.Color {
	if c.IsRGB() {
		v := c.RGB()
		return tcell.NewRGBColor(int32(v.R), int32(v.G), int32(v.B))
	}
	return tcell.PaletteColor(int(c.Palette()))
}
