// @lixen: #focus{sys[frame,buffer,output]}
package frame

import (
	"fmt"

	"github.com/lixenwraith/gridterm/diff"
	"github.com/lixenwraith/gridterm/grid"
	"github.com/lixenwraith/gridterm/renderer"
	"github.com/lixenwraith/gridterm/terminal"
)

// Stats summarizes one presented frame for trace hooks
type Stats struct {
	Frame       uint64
	Changes     int
	Fingerprint uint64 // digest of the new baseline
}

// Frame drives the double buffer: callers draw into Back, Present diffs it against the
// last presented baseline and renders only the changed cells
// A Frame has a single owner and is not safe for concurrent use
type Frame struct {
	front *grid.Grid // last successfully presented content
	back  *grid.Grid // working copy
	sink  terminal.Sink
	rend  *renderer.Terminal

	hideCursor bool
	onDiff     diff.Tracer
	onPresent  func(Stats)
	frames     uint64
}

// Option configures a Frame
type Option func(*Frame)

// WithHiddenCursor hides the cursor for the lifetime of the frame
func WithHiddenCursor() Option {
	return func(f *Frame) {
		f.hideCursor = true
	}
}

// WithDiffTrace observes changesets as they are computed
func WithDiffTrace(fn diff.Tracer) Option {
	return func(f *Frame) {
		f.onDiff = fn
	}
}

// WithPresentTrace observes every successful Present
func WithPresentTrace(fn func(Stats)) Option {
	return func(f *Frame) {
		f.onPresent = fn
	}
}

// WithRendererOptions passes options through to the command renderer
func WithRendererOptions(opts ...renderer.Option) Option {
	return func(f *Frame) {
		f.rend = renderer.NewTerminal(f.sink, opts...)
	}
}

// New creates a frame of fixed size rendering to sink
func New(width, height int, sink terminal.Sink, opts ...Option) *Frame {
	f := &Frame{
		front: grid.New(width, height),
		back:  grid.New(width, height),
		sink:  sink,
	}
	f.rend = renderer.NewTerminal(sink)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Back returns the working grid callers draw into
func (f *Frame) Back() *grid.Grid {
	return f.back
}

// Front returns a snapshot of the last presented content
func (f *Frame) Front() *grid.Grid {
	return f.front.Clone()
}

// Frames returns the number of successful Present calls
func (f *Frame) Frames() uint64 {
	return f.frames
}

// Start performs the setup handshake, clearing the screen before the first frame
func (f *Frame) Start() error {
	if err := terminal.Configure(f.sink); err != nil {
		return fmt.Errorf("configure sink: %w", err)
	}
	if f.hideCursor {
		if err := f.sink.Apply(terminal.Cursor{Visibility: terminal.Hidden}); err != nil {
			return fmt.Errorf("hide cursor: %w", err)
		}
	}
	return f.flush()
}

// Present renders the difference between the baseline and Back, then adopts Back as the new baseline
// On failure the baseline is kept, so the next Present re-emits every unconfirmed change
func (f *Frame) Present() (diff.Changesets, error) {
	changes := diff.CompareTraced(f.front, f.back, f.onDiff)
	if err := f.rend.Submit(changes); err != nil {
		return changes, err
	}

	f.front = f.back.Clone()
	f.frames++
	if f.onPresent != nil {
		f.onPresent(Stats{Frame: f.frames, Changes: len(changes), Fingerprint: f.front.Fingerprint()})
	}
	return changes, nil
}

// Sync forces a full redraw: clears the screen and renders every filled cell of Back
func (f *Frame) Sync() (diff.Changesets, error) {
	if err := f.sink.Apply(terminal.Clear{}); err != nil {
		return nil, fmt.Errorf("clear: %w", err)
	}
	// Physical screen is blank now; diff against an empty baseline
	f.front = grid.New(f.back.Width(), f.back.Height())
	return f.Present()
}

// Close restores default attributes and shows the cursor
func (f *Frame) Close() error {
	if err := f.sink.Apply(terminal.ApplyStyle{Style: terminal.Reset}); err != nil {
		return fmt.Errorf("reset style: %w", err)
	}
	if err := f.sink.Apply(terminal.Cursor{Visibility: terminal.Show}); err != nil {
		return fmt.Errorf("show cursor: %w", err)
	}
	return f.flush()
}

func (f *Frame) flush() error {
	if fl, ok := f.sink.(terminal.Flusher); ok {
		return fl.Flush()
	}
	return nil
}
