// @focus: #sys { term }
// Package terminal defines the terminal command vocabulary and its ANSI wire form.
//
// Features:
//   - Command variants: MoveTo, ApplyStyle, Write, Cursor, Clear
//   - Named 4-bit palette and 24-bit RGB colors, with xterm-256 downsampling
//   - Sinks: Writer (escape sequences over io.Writer) and Recorder (in-memory)
//   - Terminal geometry discovery and crash-time reset
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
