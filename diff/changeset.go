package diff

import (
	"fmt"

	"github.com/lixenwraith/gridterm/grid"
)

// Changeset is one cell transition between two grids
// Implemented only by Add, Remove and Update
type Changeset interface {
	fmt.Stringer
	// Pos returns the affected coordinate
	Pos() grid.Point
	changeset()
}

// Changesets is an ordered list of transitions, row-major by position
type Changesets []Changeset

// Add reports a cell that became non-empty
type Add struct {
	X, Y int
	Cell grid.Cell
}

// Remove reports a cell that became empty
type Remove struct {
	X, Y int
}

// Update reports a non-empty cell whose content or style changed
type Update struct {
	X, Y int
	Cell grid.Cell
}

func (c Add) Pos() grid.Point    { return grid.Point{X: c.X, Y: c.Y} }
func (c Remove) Pos() grid.Point { return grid.Point{X: c.X, Y: c.Y} }
func (c Update) Pos() grid.Point { return grid.Point{X: c.X, Y: c.Y} }

func (Add) changeset()    {}
func (Remove) changeset() {}
func (Update) changeset() {}

func (c Add) String() string    { return fmt.Sprintf("[+] (%d, %d) - %v", c.X, c.Y, c.Cell) }
func (c Remove) String() string { return fmt.Sprintf("[-] (%d, %d)", c.X, c.Y) }
func (c Update) String() string { return fmt.Sprintf("[~] (%d, %d) - %v", c.X, c.Y, c.Cell) }
