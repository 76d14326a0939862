// @lixen: #focus{sys[render,output]}
package renderer

import (
	"fmt"

	"github.com/lixenwraith/gridterm/diff"
	"github.com/lixenwraith/gridterm/grid"
	"github.com/lixenwraith/gridterm/terminal"
)

// Blank is written over cells that became empty
const Blank = " "

// Renderer turns changesets into visible output
type Renderer interface {
	Submit(changesets diff.Changesets) error
}

// CommandError reports a sink failure and the command that triggered it
// Commands applied before the failure stay applied
type CommandError struct {
	Command terminal.Command
	Change  diff.Changeset
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("render %v: apply %v: %v", e.Change, e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Terminal renders changesets as terminal commands on a sink
// It holds no cursor or style cache: every changeset starts with MoveTo
type Terminal struct {
	sink  terminal.Sink
	trace func(terminal.Command)
}

// Option configures a Terminal renderer
type Option func(*Terminal)

// WithTrace registers a hook observing every command before it reaches the sink
func WithTrace(fn func(terminal.Command)) Option {
	return func(t *Terminal) {
		t.trace = fn
	}
}

// NewTerminal creates a renderer writing to sink
func NewTerminal(sink terminal.Sink, opts ...Option) *Terminal {
	t := &Terminal{sink: sink}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Submit renders changesets in the order received, stopping at the first sink failure
// Sinks implementing terminal.Flusher are flushed after the last command
func (t *Terminal) Submit(changesets diff.Changesets) error {
	for _, change := range changesets {
		if err := t.Render(change); err != nil {
			return err
		}
	}
	if f, ok := t.sink.(terminal.Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush sink: %w", err)
		}
	}
	return nil
}

// Render applies the command sequence of a single changeset
func (t *Terminal) Render(change diff.Changeset) error {
	for _, cmd := range Commands(change) {
		if t.trace != nil {
			t.trace(cmd)
		}
		if err := t.sink.Apply(cmd); err != nil {
			return &CommandError{Command: cmd, Change: change, Err: err}
		}
	}
	return nil
}

// Commands returns the self-contained command sequence drawing one changeset
func Commands(change diff.Changeset) []terminal.Command {
	switch c := change.(type) {
	case diff.Add:
		return cellCommands(c.X, c.Y, c.Cell)
	case diff.Update:
		return cellCommands(c.X, c.Y, c.Cell)
	case diff.Remove:
		return blankCommands(c.X, c.Y)
	default:
		return nil
	}
}

func cellCommands(x, y int, c grid.Cell) []terminal.Command {
	if c.IsEmpty() {
		return blankCommands(x, y)
	}
	return []terminal.Command{
		terminal.MoveTo{X: x, Y: y},
		terminal.ApplyStyle{Style: c.Fg},
		terminal.ApplyStyle{Style: c.Bg},
		terminal.Write{Text: string(c.Char)},
	}
}

func blankCommands(x, y int) []terminal.Command {
	return []terminal.Command{
		terminal.MoveTo{X: x, Y: y},
		terminal.ApplyStyle{Style: terminal.Reset},
		terminal.Write{Text: Blank},
	}
}
