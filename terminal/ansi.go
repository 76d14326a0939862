// @lixen: #focus{sys[term,ansi]}
package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Color prefixes
	csiFg256 = []byte("\x1b[38;5;") // followed by N m
	csiBg256 = []byte("\x1b[48;5;") // followed by N m
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;B m
	csiBgRGB = []byte("\x1b[48;2;") // followed by R;G;B m
)

// SGR bases for named palette colors
const (
	sgrFgBase = 30
	sgrBgBase = 40
)

// Encode appends the true-color wire form of c to dst
func Encode(dst []byte, c Command) []byte {
	return c.encode(dst, ColorModeTrueColor)
}

// EncodeMode appends the wire form of c to dst, downsampling RGB colors in ColorMode256
func EncodeMode(dst []byte, c Command, mode ColorMode) []byte {
	return c.encode(dst, mode)
}

func (c MoveTo) encode(dst []byte, _ ColorMode) []byte {
	return appendCursorPos(dst, c.X, c.Y)
}

func (c ApplyStyle) encode(dst []byte, mode ColorMode) []byte {
	s := c.Style
	switch s.Kind {
	case StyleForeground:
		return appendColor(dst, s.Color, sgrFgBase, csiFgRGB, csiFg256, mode)
	case StyleBackground:
		return appendColor(dst, s.Color, sgrBgBase, csiBgRGB, csiBg256, mode)
	default:
		return append(dst, csiSGR0...)
	}
}

func (c Write) encode(dst []byte, _ ColorMode) []byte {
	return append(dst, c.Text...)
}

func (c Cursor) encode(dst []byte, _ ColorMode) []byte {
	if c.Visibility == Show {
		return append(dst, csiCursorShow...)
	}
	return append(dst, csiCursorHide...)
}

func (Clear) encode(dst []byte, _ ColorMode) []byte {
	return append(dst, csiClear...)
}

// appendColor writes a complete SGR color sequence
func appendColor(dst []byte, c Color, base int, rgbPrefix, p256Prefix []byte, mode ColorMode) []byte {
	if !c.direct {
		dst = append(dst, csi...)
		dst = appendInt(dst, base+c.name.sgrOffset())
		return append(dst, 'm')
	}
	if mode == ColorMode256 {
		dst = append(dst, p256Prefix...)
		dst = appendInt(dst, int(RGBTo256(c.value)))
		return append(dst, 'm')
	}
	dst = append(dst, rgbPrefix...)
	dst = appendInt(dst, int(c.value.R))
	dst = append(dst, ';')
	dst = appendInt(dst, int(c.value.G))
	dst = append(dst, ';')
	dst = appendInt(dst, int(c.value.B))
	return append(dst, 'm')
}

// appendInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// appendCursorPos writes cursor positioning sequence (0-indexed input, 1-indexed row;col output)
func appendCursorPos(dst []byte, x, y int) []byte {
	dst = append(dst, csi...)
	dst = appendInt(dst, y+1)
	dst = append(dst, ';')
	dst = appendInt(dst, x+1)
	return append(dst, 'H')
}
