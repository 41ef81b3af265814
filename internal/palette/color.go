package palette

import (
	"math"
	"strconv"
	"strings"
)

// hexToRGB parses "#RRGGBB" (leading '#' optional). Returns ok=false on
// malformed input; callers treat those as bucket 0 rather than failing.
func hexToRGB(hex string) (r, g, b int, ok bool) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), true
}

// rgbToHSV returns h in [0,360), s and v in [0,100].
func rgbToHSV(ri, gi, bi int) (h, s, v float64) {
	r := float64(ri) / 255
	g := float64(gi) / 255
	b := float64(bi) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	d := max - min

	switch {
	case d == 0:
		h = 0
	case max == r:
		h = math.Mod((g-b)/d, 6)
		if h < 0 {
			h += 6
		}
	case max == g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	if max > 0 {
		s = d / max * 100
	}
	v = max * 100
	return h, s, v
}

// hueBucket maps a hex color onto one of the 8 45-degree hue buckets.
func hueBucket(hex string) int {
	r, g, b, ok := hexToRGB(hex)
	if !ok {
		return 0
	}
	h, _, _ := rgbToHSV(r, g, b)
	return int(h/45) % hueBuckets
}
