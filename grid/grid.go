// @lixen: #focus{sys[grid,buffer]}
package grid

import (
	"encoding/binary"
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/zeebo/xxh3"

	"github.com/lixenwraith/gridterm/terminal"
)

// Point is a cell coordinate, 0-indexed from the top-left corner
type Point struct {
	X, Y int
}

// Grid is a fixed-size frame buffer of cells
// Cells are row-major: cells[y*width + x]
// A Grid has a single owner; concurrent mutation during iteration or diffing is undefined
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// New creates a grid with all cells Empty
// Non-positive dimensions yield a zero-capacity grid
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Capacity returns the number of cells held in the backing array
// Equals Width()*Height() until Clear is called, 0 afterwards
func (g *Grid) Capacity() int {
	return len(g.cells)
}

func (g *Grid) idx(x, y int) int {
	return y*g.width + x
}

// check panics with a BoundsError when (x, y) is outside the grid
func (g *Grid) check(op string, x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(&BoundsError{Op: op, X: x, Y: y, Width: g.width, Height: g.height})
	}
}

// Set replaces the cell at (x, y)
// Out-of-range coordinates and filled cells with a surrogate or negative Char
// panic before any cell is touched
func (g *Grid) Set(x, y int, c Cell) {
	g.check("set", x, y)
	if !c.IsEmpty() && !utf8.ValidRune(c.Char) {
		panic(&CharError{X: x, Y: y, Char: c.Char})
	}
	i := g.idx(x, y)
	if i >= len(g.cells) {
		panic(&BoundsError{Op: "set", X: x, Y: y, Width: g.width, Height: g.height, Err: ErrCleared})
	}
	if c.IsEmpty() {
		c = Empty
	}
	g.cells[i] = c
}

// Get returns the cell at (x, y), Empty if the slot is absent
// Out-of-range coordinates panic
func (g *Grid) Get(x, y int) Cell {
	g.check("get", x, y)
	i := g.idx(x, y)
	if i >= len(g.cells) {
		return Empty
	}
	return g.cells[i]
}

// All yields every present cell in row-major order: y outer, x inner
// The sequence is restartable and yields values, never references into the grid
func (g *Grid) All() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for i, c := range g.cells {
			if !yield(Point{X: i % g.width, Y: i / g.width}, c) {
				return
			}
		}
	}
}

// Clear releases the backing array; the grid must be recreated with New before further Set
func (g *Grid) Clear() {
	g.cells = nil
}

// Resize is not supported, grids keep their construction dimensions
func (g *Grid) Resize(width, height int) error {
	return ErrResizeUnsupported
}

// Clone returns a deep copy sharing no storage with g
func (g *Grid) Clone() *Grid {
	return &Grid{
		cells:  slices.Clone(g.cells),
		width:  g.width,
		height: g.height,
	}
}

// Equal reports whether both grids have the same dimensions and cell-for-cell equal content
// Absent slots of a cleared grid compare as Empty
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.Get(x, y).Equal(other.Get(x, y)) {
				return false
			}
		}
	}
	return true
}

// Fingerprint returns a content digest of dimensions and cells
// Equal grids with full storage share a fingerprint
func (g *Grid) Fingerprint() uint64 {
	buf := make([]byte, 0, 16+len(g.cells)*16)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(g.width))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(g.height))
	for _, c := range g.cells {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(c.Char))
		buf = appendStyle(buf, c.Fg)
		buf = appendStyle(buf, c.Bg)
	}
	return xxh3.Hash(buf)
}

func appendStyle(buf []byte, s terminal.Style) []byte {
	var direct byte
	if s.Color.IsRGB() {
		direct = 1
	}
	v := s.Color.RGB()
	return append(buf, byte(s.Kind), byte(s.Color.Palette()), direct, v.R, v.G, v.B)
}
