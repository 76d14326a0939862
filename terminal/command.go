package terminal

import (
	"fmt"
	"strconv"
)

// Visibility is the cursor state selected by a Cursor command
type Visibility bool

const (
	Hidden Visibility = false
	Show   Visibility = true
)

func (v Visibility) String() string {
	if v {
		return "Show"
	}
	return "Hidden"
}

// Command is one primitive terminal-control instruction
// Implemented only by MoveTo, ApplyStyle, Write, Cursor and Clear
type Command interface {
	fmt.Stringer
	// encode appends the wire form of the command in the given color mode
	encode(dst []byte, mode ColorMode) []byte
}

// MoveTo positions the cursor, coordinates are 0-indexed
type MoveTo struct {
	X, Y int
}

// ApplyStyle sets a foreground, background or resets attributes
type ApplyStyle struct {
	Style Style
}

// Write emits raw text at the cursor
type Write struct {
	Text string
}

// Cursor shows or hides the cursor
type Cursor struct {
	Visibility Visibility
}

// Clear erases the whole screen
type Clear struct{}

func (c MoveTo) String() string     { return "MoveTo(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")" }
func (c ApplyStyle) String() string { return "ApplyStyle(" + c.Style.String() + ")" }
func (c Write) String() string      { return "Write(" + strconv.Quote(c.Text) + ")" }
func (c Cursor) String() string     { return "Cursor(" + c.Visibility.String() + ")" }
func (Clear) String() string        { return "Clear" }
