package terminal

import (
	"fmt"
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota // 24-bit RGB, emitted as 38;2;R;G;B
	ColorMode256                        // xterm-256 palette, RGB downsampled
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeTrueColor:
		return "truecolor"
	case ColorMode256:
		return "256"
	default:
		return fmt.Sprintf("ColorMode(%d)", uint8(m))
	}
}

// ParseColorMode resolves a user-facing mode name; "auto" and "" detect from the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	}
	return 0, fmt.Errorf("unknown color mode %q", s)
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Palette is a named entry of the 4-bit ANSI palette
type Palette uint8

const (
	Black Palette = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var paletteNames = [...]string{
	"Black", "Red", "Green", "Yellow", "Blue", "Magenta", "Cyan", "White",
	"BrightBlack", "BrightRed", "BrightGreen", "BrightYellow",
	"BrightBlue", "BrightMagenta", "BrightCyan", "BrightWhite",
}

func (p Palette) String() string {
	if int(p) < len(paletteNames) {
		return paletteNames[p]
	}
	return fmt.Sprintf("Palette(%d)", uint8(p))
}

// sgrOffset returns the SGR parameter offset from the fg base (30) or bg base (40)
// Standard colors map to 0-7, bright colors to 60-67 (90-97 / 100-107)
func (p Palette) sgrOffset() int {
	if p < BrightBlack {
		return int(p)
	}
	return 60 + int(p-BrightBlack)
}

// PaletteError is the panic value for a named color outside the 16-color palette
type PaletteError struct {
	Palette Palette
}

func (e *PaletteError) Error() string {
	return fmt.Sprintf("palette color %d is out of range 0-%d", uint8(e.Palette), uint8(BrightWhite))
}

// Color is either a named palette entry or an explicit RGB triple
// Construct with Named or RGBColor; the zero value is Named(Black)
// Two colors are == exactly when they render the same
type Color struct {
	name   Palette
	value  RGB
	direct bool
}

// Named returns a palette color, panicking with *PaletteError past BrightWhite
func Named(p Palette) Color {
	if p > BrightWhite {
		panic(&PaletteError{Palette: p})
	}
	return Color{name: p}
}

// RGBColor returns an explicit 24-bit color
func RGBColor(r, g, b uint8) Color {
	return Color{value: RGB{r, g, b}, direct: true}
}

// IsRGB reports whether the color was built with RGBColor
func (c Color) IsRGB() bool { return c.direct }

// Palette returns the named entry; meaningless when IsRGB
func (c Color) Palette() Palette { return c.name }

// RGB returns the explicit triple; zero unless IsRGB
func (c Color) RGB() RGB { return c.value }

func (c Color) String() string {
	if c.direct {
		return fmt.Sprintf("Rgb(%d,%d,%d)", c.value.R, c.value.G, c.value.B)
	}
	return c.name.String()
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := abs(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value
func RGBTo256(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)

	// Grayscale ramp 232-255 maps to luminance 8, 18, ..., 238
	gray := (r + g + b) / 3
	maxDiff := max(abs(r-gray), abs(g-gray), abs(b-gray))

	if maxDiff < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		grayIdx := 232 + (gray-8)/10
		if grayIdx > 255 {
			grayIdx = 255
		}

		grayLevel := 8 + (grayIdx-232)*10
		grayDist := abs(r-grayLevel) + abs(g-grayLevel) + abs(b-grayLevel)

		cubeDist := abs(r-int(cubeValues[cubeIndex[r]])) +
			abs(g-int(cubeValues[cubeIndex[g]])) +
			abs(b-int(cubeValues[cubeIndex[b]]))

		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}

	return 16 + 36*cubeIndex[r] + 6*cubeIndex[g] + cubeIndex[b]
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}
