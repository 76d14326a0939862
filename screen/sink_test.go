package screen

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridterm/diff"
	"github.com/lixenwraith/gridterm/grid"
	"github.com/lixenwraith/gridterm/renderer"
	"github.com/lixenwraith/gridterm/terminal"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestColor(t *testing.T) {
	tests := []struct {
		name string
		in   terminal.Color
		want tcell.Color
	}{
		{"Black", terminal.Named(terminal.Black), tcell.ColorBlack},
		{"Red", terminal.Named(terminal.Red), tcell.ColorMaroon},
		{"Bright red", terminal.Named(terminal.BrightRed), tcell.ColorRed},
		{"Bright white", terminal.Named(terminal.BrightWhite), tcell.ColorWhite},
		{"RGB", terminal.RGBColor(26, 27, 38), tcell.NewRGBColor(26, 27, 38)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Color(tt.in); got != tt.want {
				t.Errorf("Color(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyStyle(t *testing.T) {
	st := ApplyStyle(tcell.StyleDefault, terminal.Fg(terminal.Named(terminal.White)))
	st = ApplyStyle(st, terminal.Bg(terminal.RGBColor(1, 2, 3)))

	fg, bg, _ := st.Decompose()
	if fg != tcell.ColorSilver {
		t.Errorf("fg = %v, want silver (palette 7)", fg)
	}
	if bg != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("bg = %v", bg)
	}

	if got := ApplyStyle(st, terminal.Reset); got != tcell.StyleDefault {
		t.Errorf("Reset = %v, want StyleDefault", got)
	}
}

func TestSinkRendersChangesets(t *testing.T) {
	s := newSimScreen(t, 6, 4)
	sink := NewSink(s)

	fg := terminal.Fg(terminal.Named(terminal.Black))
	bg := terminal.Bg(terminal.Named(terminal.Cyan))

	a := grid.New(6, 4)
	b := a.Clone()
	b.Set(2, 3, grid.Filled('k', fg, bg))
	b.Set(5, 0, grid.Filled('!', fg, bg))

	r := renderer.NewTerminal(sink)
	if err := r.Submit(diff.Compare(a, b)); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	mainc, _, style, _ := s.GetContent(2, 3)
	if mainc != 'k' {
		t.Errorf("(2,3) = %q, want 'k'", mainc)
	}
	gotFg, gotBg, _ := style.Decompose()
	if gotFg != tcell.ColorBlack || gotBg != tcell.ColorTeal {
		t.Errorf("(2,3) colors = %v/%v, want black/teal", gotFg, gotBg)
	}
	if mainc, _, _, _ := s.GetContent(5, 0); mainc != '!' {
		t.Errorf("(5,0) = %q, want '!'", mainc)
	}

	// Removing a cell blanks it with the default style
	if err := r.Submit(diff.Compare(b, a)); err != nil {
		t.Fatal(err)
	}
	mainc, _, style, _ = s.GetContent(2, 3)
	if mainc != ' ' {
		t.Errorf("(2,3) after remove = %q, want blank", mainc)
	}
	if style != tcell.StyleDefault {
		t.Errorf("(2,3) style after remove = %v, want default", style)
	}
}

func TestSinkWriteAdvances(t *testing.T) {
	s := newSimScreen(t, 8, 1)
	sink := NewSink(s)

	for _, c := range []terminal.Command{terminal.MoveTo{X: 1, Y: 0}, terminal.Write{Text: "abc"}} {
		if err := sink.Apply(c); err != nil {
			t.Fatal(err)
		}
	}
	for i, want := range "abc" {
		if got, _, _, _ := s.GetContent(1+i, 0); got != want {
			t.Errorf("(%d,0) = %q, want %q", 1+i, got, want)
		}
	}
}

func TestSinkClear(t *testing.T) {
	s := newSimScreen(t, 3, 3)
	sink := NewSink(s)

	sink.Apply(terminal.MoveTo{X: 1, Y: 1})
	sink.Apply(terminal.Write{Text: "z"})
	if err := sink.Apply(terminal.Clear{}); err != nil {
		t.Fatal(err)
	}
	if got, _, _, _ := s.GetContent(1, 1); got != ' ' {
		t.Errorf("(1,1) after Clear = %q, want blank", got)
	}
}

func TestSinkCursor(t *testing.T) {
	s := newSimScreen(t, 5, 5)
	sink := NewSink(s)

	sink.Apply(terminal.MoveTo{X: 3, Y: 2})
	sink.Apply(terminal.Cursor{Visibility: terminal.Show})
	sink.Flush()

	x, y, visible := s.GetCursor()
	if !visible || x != 3 || y != 2 {
		t.Errorf("cursor = (%d,%d) visible=%v, want (3,2) visible", x, y, visible)
	}

	sink.Apply(terminal.Cursor{Visibility: terminal.Hidden})
	sink.Flush()
	if _, _, visible := s.GetCursor(); visible {
		t.Error("cursor still visible after Hidden")
	}
}
