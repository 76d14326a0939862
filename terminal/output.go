// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"io"
)

// Sink receives rendered commands
type Sink interface {
	Apply(c Command) error
}

// Flusher is implemented by sinks that stage output until explicitly presented
type Flusher interface {
	Flush() error
}

// Writer is a Sink emitting ANSI escape sequences to an io.Writer
// Each command is encoded into a reused scratch buffer and written with a single Write call,
// so a failed write always identifies exactly one command
type Writer struct {
	w         io.Writer
	colorMode ColorMode
	scratch   []byte
}

// WriterOption configures a Writer
type WriterOption func(*Writer)

// WithColorMode selects RGB emission, ColorModeTrueColor is the default
func WithColorMode(mode ColorMode) WriterOption {
	return func(w *Writer) {
		w.colorMode = mode
	}
}

// NewWriter creates a Writer over w
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	out := &Writer{
		w:         w,
		colorMode: ColorModeTrueColor,
		scratch:   make([]byte, 0, 64),
	}
	for _, opt := range opts {
		opt(out)
	}
	return out
}

// ColorMode returns the configured color emission mode
func (w *Writer) ColorMode() ColorMode {
	return w.colorMode
}

// Apply encodes and writes one command
func (w *Writer) Apply(c Command) error {
	w.scratch = c.encode(w.scratch[:0], w.colorMode)
	n, err := w.w.Write(w.scratch)
	if err != nil {
		return err
	}
	if n < len(w.scratch) {
		return io.ErrShortWrite
	}
	return nil
}

// Recorder is a Sink that keeps every applied command in order
type Recorder struct {
	Commands []Command
}

// Apply records c
func (r *Recorder) Apply(c Command) error {
	r.Commands = append(r.Commands, c)
	return nil
}

// Reset drops recorded commands
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Configure performs the setup handshake before the first frame
func Configure(s Sink) error {
	return s.Apply(Clear{})
}
