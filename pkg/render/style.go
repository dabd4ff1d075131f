package render

import (
	"fmt"
	"regexp"
	"strconv"
)

// RGB is an 8-bit color.
type RGB struct{ R, G, B uint8 }

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Luminance returns the perceived brightness of c in [0, 1].
func (c RGB) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

var fillColorRe = regexp.MustCompile(`fill-color:\s*rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)`)

// ParseFillColor extracts the fill-color of a style string. It returns false
// when the style has no rgb() fill-color or a channel exceeds 255.
func ParseFillColor(style string) (RGB, bool) {
	m := fillColorRe.FindStringSubmatch(style)
	if m == nil {
		return RGB{}, false
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.Atoi(m[i+1])
		if err != nil || v > 255 {
			return RGB{}, false
		}
		ch[i] = uint8(v)
	}
	return RGB{ch[0], ch[1], ch[2]}, true
}
