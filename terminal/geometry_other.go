//go:build !unix

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Size returns the terminal dimensions in cells for the given file
func Size(f *os.File) (width, height int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%s is not a terminal", f.Name())
	}
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return width, height, nil
}
