//go:build unix

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Size returns the terminal dimensions in cells for the given file
// Falls back to the winsize ioctl when x/term cannot answer (e.g. stdin redirected)
func Size(f *os.File) (width, height int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%s is not a terminal", f.Name())
	}

	width, height, err = term.GetSize(fd)
	if err == nil && width > 0 && height > 0 {
		return width, height, nil
	}

	ws, werr := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if werr != nil {
		if err == nil {
			err = werr
		}
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}
