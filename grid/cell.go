package grid

import (
	"strconv"

	"github.com/lixenwraith/gridterm/terminal"
)

// Cell is the visual content of one grid position
// The zero value is Empty; a cell with a non-zero Char is filled
type Cell struct {
	Char rune
	Fg   terminal.Style
	Bg   terminal.Style
}

// Empty is the blank cell every grid starts with
var Empty = Cell{}

// Filled returns a cell drawing ch with the given foreground and background styles
func Filled(ch rune, fg, bg terminal.Style) Cell {
	return Cell{Char: ch, Fg: fg, Bg: bg}
}

// IsEmpty reports whether the cell draws nothing
func (c Cell) IsEmpty() bool {
	return c.Char == 0
}

// Equal compares character and both styles
func (c Cell) Equal(other Cell) bool {
	if c.IsEmpty() || other.IsEmpty() {
		return c.IsEmpty() == other.IsEmpty()
	}
	return c == other
}

func (c Cell) String() string {
	if c.IsEmpty() {
		return "Empty"
	}
	return "Filled(" + strconv.QuoteRune(c.Char) + " fg=" + c.Fg.String() + " bg=" + c.Bg.String() + ")"
}
