package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrResizeUnsupported is returned by Resize; grids are fixed-size for their whole lifetime
	ErrResizeUnsupported = fmt.Errorf("grid resize: %w", errors.ErrUnsupported)

	// ErrCleared marks access to storage released by Clear
	ErrCleared = errors.New("grid storage cleared")
)

// BoundsError is the panic value for out-of-range cell access
type BoundsError struct {
	Op            string // "set" or "get"
	X, Y          int
	Width, Height int
	Err           error // ErrCleared when storage was released, nil otherwise
}

func (e *BoundsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("grid %s (%d, %d): %v", e.Op, e.X, e.Y, e.Err)
	}
	if e.X < 0 || e.X >= e.Width {
		return fmt.Sprintf("grid %s: x %d is out of bound of width %d", e.Op, e.X, e.Width)
	}
	return fmt.Sprintf("grid %s: y %d is out of bound of height %d", e.Op, e.Y, e.Height)
}

func (e *BoundsError) Unwrap() error {
	return e.Err
}

// CharError is the panic value for a filled cell whose Char is not a valid Unicode scalar value
type CharError struct {
	X, Y int
	Char rune
}

func (e *CharError) Error() string {
	return fmt.Sprintf("grid set (%d, %d): invalid char %U", e.X, e.Y, e.Char)
}
