package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 16-bit RGB565 pixel value, the native format of the LCD panel.
// It implements image/color.Color so front ends can hand it to image APIs.
type Color uint16

// Predefined colors for game elements.
const (
	ColorBlack   Color = 0x0000
	ColorWhite   Color = 0xffff
	ColorRed     Color = 0xf800
	ColorGreen   Color = 0x07e0
	ColorBlue    Color = 0x001f
	ColorYellow  Color = 0xffe0
	ColorCyan    Color = 0x07ff
	ColorMagenta Color = 0xf81f
	ColorViolet  Color = 0x901a
	ColorGold    Color = 0xfea0
	ColorOrange  Color = 0xfd20
	ColorGray    Color = 0x8410
	ColorNavy    Color = 0x000f
)

var colorNames = map[string]Color{
	"black":   ColorBlack,
	"white":   ColorWhite,
	"red":     ColorRed,
	"green":   ColorGreen,
	"blue":    ColorBlue,
	"yellow":  ColorYellow,
	"cyan":    ColorCyan,
	"magenta": ColorMagenta,
	"violet":  ColorViolet,
	"gold":    ColorGold,
	"orange":  ColorOrange,
	"gray":    ColorGray,
	"navy":    ColorNavy,
}

// RGB565 packs 8-bit channels into a Color, dropping the low bits.
func RGB565(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB expands the color to 8-bit channels, replicating high bits into the
// low bits so that white maps to 0xff.
func (c Color) RGB() (r, g, b uint8) {
	r5 := uint8(c >> 11 & 0x1f)
	g6 := uint8(c >> 5 & 0x3f)
	b5 := uint8(c & 0x1f)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xffff
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Luma returns an approximate brightness in [0, 255].
func (c Color) Luma() int {
	r, g, b := c.RGB()
	return (299*int(r) + 587*int(g) + 114*int(b)) / 1000
}

// ParseColor accepts a color name ("violet"), "#rrggbb" or a raw RGB565
// value written as "0xf800".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("core: invalid color %q: %w", s, err)
		}
		return RGB565(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	if strings.HasPrefix(s, "0x") {
		v, err := strconv.ParseUint(s[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("core: invalid color %q: %w", s, err)
		}
		return Color(v), nil
	}
	return 0, fmt.Errorf("core: unknown color %q", s)
}
