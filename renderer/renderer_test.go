package renderer

import (
	"bytes"
	"errors"
	"io"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/gridterm/diff"
	"github.com/lixenwraith/gridterm/grid"
	"github.com/lixenwraith/gridterm/terminal"
)

var (
	fgWhite = terminal.Fg(terminal.Named(terminal.White))
	bgRed   = terminal.Bg(terminal.Named(terminal.Red))
	kCell   = grid.Filled('K', fgWhite, bgRed)
)

// failingSink accepts a fixed number of commands, then fails every Apply
type failingSink struct {
	terminal.Recorder
	remaining int
	err       error
}

func (s *failingSink) Apply(c terminal.Command) error {
	if s.remaining == 0 {
		return s.err
	}
	s.remaining--
	return s.Recorder.Apply(c)
}

// flushSink counts Flush calls
type flushSink struct {
	terminal.Recorder
	flushes int
	err     error
}

func (s *flushSink) Flush() error {
	s.flushes++
	return s.err
}

func TestCommandsFilledAdd(t *testing.T) {
	want := []terminal.Command{
		terminal.MoveTo{X: 2, Y: 3},
		terminal.ApplyStyle{Style: fgWhite},
		terminal.ApplyStyle{Style: bgRed},
		terminal.Write{Text: "K"},
	}
	if d := cmp.Diff(want, Commands(diff.Add{X: 2, Y: 3, Cell: kCell})); d != "" {
		t.Errorf("Add commands mismatch (-want +got):\n%s", d)
	}
}

func TestCommandsUpdateMatchesAdd(t *testing.T) {
	add := Commands(diff.Add{X: 1, Y: 1, Cell: kCell})
	update := Commands(diff.Update{X: 1, Y: 1, Cell: kCell})
	if d := cmp.Diff(add, update); d != "" {
		t.Errorf("Update differs from Add (-add +update):\n%s", d)
	}
}

func TestCommandsBlank(t *testing.T) {
	want := []terminal.Command{
		terminal.MoveTo{X: 1, Y: 1},
		terminal.ApplyStyle{Style: terminal.Reset},
		terminal.Write{Text: " "},
	}

	tests := []struct {
		name   string
		change diff.Changeset
	}{
		{"Remove", diff.Remove{X: 1, Y: 1}},
		{"Add empty", diff.Add{X: 1, Y: 1, Cell: grid.Empty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := cmp.Diff(want, Commands(tt.change)); d != "" {
				t.Errorf("commands mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestSubmitPreservesOrder(t *testing.T) {
	changes := diff.Changesets{
		diff.Add{X: 0, Y: 0, Cell: kCell},
		diff.Remove{X: 0, Y: 0},
		diff.Update{X: 0, Y: 0, Cell: grid.Filled('z', fgWhite, bgRed)},
	}

	var rec terminal.Recorder
	if err := NewTerminal(&rec).Submit(changes); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	var want []terminal.Command
	for _, c := range changes {
		want = append(want, Commands(c)...)
	}
	if d := cmp.Diff(want, rec.Commands); d != "" {
		t.Errorf("command stream mismatch (-want +got):\n%s", d)
	}
	if len(rec.Commands) != 11 {
		t.Errorf("len = %d, want 11", len(rec.Commands))
	}
}

func TestSubmitIsStateless(t *testing.T) {
	r := NewTerminal(&terminal.Recorder{})
	change := diff.Changesets{diff.Add{X: 3, Y: 1, Cell: kCell}}

	var first, second terminal.Recorder
	r.sink = &first
	if err := r.Submit(change); err != nil {
		t.Fatal(err)
	}
	r.sink = &second
	if err := r.Submit(change); err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(first.Commands, second.Commands); d != "" {
		t.Errorf("second submit differs (-first +second):\n%s", d)
	}
	if _, ok := second.Commands[0].(terminal.MoveTo); !ok {
		t.Error("second submit did not start with MoveTo")
	}
}

func TestSubmitEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTerminal(terminal.NewWriter(&buf)).Submit(nil); err != nil {
		t.Fatalf("Submit(nil): %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q for no changes", buf.String())
	}
}

func TestSubmitWireBytes(t *testing.T) {
	var buf bytes.Buffer
	changes := diff.Changesets{
		diff.Add{X: 2, Y: 3, Cell: kCell},
		diff.Remove{X: 0, Y: 0},
	}
	if err := NewTerminal(terminal.NewWriter(&buf)).Submit(changes); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[4;3H\x1b[37m\x1b[41mK" + "\x1b[1;1H\x1b[0m "
	if got := buf.String(); got != want {
		t.Errorf("wire = %q, want %q", got, want)
	}
}

func TestSubmitSinkFailure(t *testing.T) {
	sink := &failingSink{remaining: 5, err: syscall.EPIPE}
	changes := diff.Changesets{
		diff.Add{X: 0, Y: 0, Cell: kCell},
		diff.Add{X: 1, Y: 0, Cell: kCell},
		diff.Add{X: 2, Y: 0, Cell: kCell},
	}

	err := NewTerminal(sink).Submit(changes)
	if err == nil {
		t.Fatal("Expected error from failing sink")
	}

	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("error %T is not *CommandError", err)
	}
	if !errors.Is(err, syscall.EPIPE) {
		t.Error("error does not unwrap to the sink cause")
	}
	if d := cmp.Diff(terminal.Command(terminal.ApplyStyle{Style: fgWhite}), ce.Command); d != "" {
		t.Errorf("offending command mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(diff.Changeset(changes[1]), ce.Change); d != "" {
		t.Errorf("offending changeset mismatch (-want +got):\n%s", d)
	}

	// No rollback, no retry: exactly the commands before the failure were applied
	if len(sink.Commands) != 5 {
		t.Errorf("applied %d commands, want 5", len(sink.Commands))
	}
}

func TestSubmitWriterFailure(t *testing.T) {
	w := terminal.NewWriter(errWriter{err: io.ErrClosedPipe})
	err := NewTerminal(w).Submit(diff.Changesets{diff.Remove{X: 4, Y: 4}})

	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("error %v is not *CommandError", err)
	}
	if _, ok := ce.Command.(terminal.MoveTo); !ok {
		t.Errorf("offending command = %v, want MoveTo", ce.Command)
	}
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("error %v does not wrap io.ErrClosedPipe", err)
	}
}

func TestSubmitFlushes(t *testing.T) {
	sink := &flushSink{}
	r := NewTerminal(sink)
	if err := r.Submit(diff.Changesets{diff.Remove{X: 0, Y: 0}}); err != nil {
		t.Fatal(err)
	}
	if sink.flushes != 1 {
		t.Errorf("flushes = %d, want 1", sink.flushes)
	}

	sink.err = errors.New("show failed")
	if err := r.Submit(nil); !errors.Is(err, sink.err) {
		t.Errorf("Submit error = %v, want flush failure", err)
	}
}

func TestWithTrace(t *testing.T) {
	var traced []terminal.Command
	var rec terminal.Recorder
	r := NewTerminal(&rec, WithTrace(func(c terminal.Command) { traced = append(traced, c) }))

	if err := r.Submit(diff.Changesets{diff.Add{X: 1, Y: 2, Cell: kCell}}); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(rec.Commands, traced); d != "" {
		t.Errorf("trace mismatch (-applied +traced):\n%s", d)
	}
}

func TestEndToEnd(t *testing.T) {
	a := grid.New(4, 4)
	b := a.Clone()
	b.Set(0, 0, grid.Filled('X', terminal.Fg(terminal.Named(terminal.Green)), bgRed))
	b.Set(1, 1, grid.Filled('Y', terminal.Fg(terminal.Named(terminal.Green)), bgRed))

	var buf bytes.Buffer
	if err := NewTerminal(terminal.NewWriter(&buf)).Submit(diff.Compare(a, b)); err != nil {
		t.Fatal(err)
	}
	want := "\x1b[1;1H\x1b[32m\x1b[41mX\x1b[2;2H\x1b[32m\x1b[41mY"
	if buf.String() != want {
		t.Errorf("wire = %q, want %q", buf.String(), want)
	}
}

type errWriter struct{ err error }

func (w errWriter) Write(p []byte) (int, error) { return 0, w.err }
