// @lixen: #focus{sys[diff]}
package diff

import (
	"fmt"
	"iter"

	"github.com/lixenwraith/gridterm/grid"
)

// DimensionError is the panic value for comparing grids of different size
type DimensionError struct {
	Dimension string // "width" or "height"
	A, B      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s doesn't match: %d != %d", e.Dimension, e.A, e.B)
}

// Tracer observes each changeset as Compare emits it
type Tracer func(Changeset)

// Compare returns the transitions turning a into b, in row-major order
// Both grids must have identical dimensions, a mismatch panics with *DimensionError
// Neither grid is modified; the result shares no storage with them
func Compare(a, b *grid.Grid) Changesets {
	return CompareTraced(a, b, nil)
}

// CompareTraced is Compare with an observability hook called for every emitted changeset
func CompareTraced(a, b *grid.Grid, trace Tracer) Changesets {
	if a.Width() != b.Width() {
		panic(&DimensionError{Dimension: "width", A: a.Width(), B: b.Width()})
	}
	if a.Height() != b.Height() {
		panic(&DimensionError{Dimension: "height", A: a.Height(), B: b.Height()})
	}

	var changesets Changesets

	nextA, stopA := iter.Pull2(a.All())
	defer stopA()
	nextB, stopB := iter.Pull2(b.All())
	defer stopB()

	for {
		pa, cellA, okA := nextA()
		pb, cellB, okB := nextB()
		if !okA && !okB {
			break
		}

		// A cleared grid has no cells left; its positions read as Empty
		switch {
		case !okA:
			pa, cellA = pb, grid.Empty
		case !okB:
			pb, cellB = pa, grid.Empty
		}
		if pa != pb {
			panic(fmt.Sprintf("diff: iterators out of step at %v and %v", pa, pb))
		}

		change := classify(pa, cellA, cellB)
		if change == nil {
			continue
		}
		if trace != nil {
			trace(change)
		}
		changesets = append(changesets, change)
	}

	return changesets
}

// classify maps a cell pair to its transition, nil when nothing visible changed
func classify(p grid.Point, a, b grid.Cell) Changeset {
	switch {
	case a.IsEmpty() && b.IsEmpty():
		return nil
	case a.IsEmpty():
		return Add{X: p.X, Y: p.Y, Cell: b}
	case b.IsEmpty():
		return Remove{X: p.X, Y: p.Y}
	case a.Equal(b):
		return nil
	default:
		return Update{X: p.X, Y: p.Y, Cell: b}
	}
}

// Apply replays changesets onto g in order
// Applying Compare(a, b) to a leaves a cell-for-cell equal to b
func Apply(g *grid.Grid, changesets Changesets) {
	for _, change := range changesets {
		switch c := change.(type) {
		case Add:
			g.Set(c.X, c.Y, c.Cell)
		case Update:
			g.Set(c.X, c.Y, c.Cell)
		case Remove:
			g.Set(c.X, c.Y, grid.Empty)
		}
	}
}
