package terminal

import "fmt"

// StyleKind selects which attribute a Style changes
type StyleKind uint8

const (
	StyleReset StyleKind = iota
	StyleForeground
	StyleBackground
)

// Style is a text attribute applied before writing a character
// The zero value is Reset
type Style struct {
	Kind  StyleKind
	Color Color
}

// Reset clears all attributes (SGR 0)
var Reset = Style{}

// Fg returns a foreground style
func Fg(c Color) Style {
	return Style{Kind: StyleForeground, Color: c}
}

// Bg returns a background style
func Bg(c Color) Style {
	return Style{Kind: StyleBackground, Color: c}
}

func (s Style) String() string {
	switch s.Kind {
	case StyleForeground:
		return "Foreground(" + s.Color.String() + ")"
	case StyleBackground:
		return "Background(" + s.Color.String() + ")"
	case StyleReset:
		return "Reset"
	default:
		return fmt.Sprintf("Style(%d)", uint8(s.Kind))
	}
}
