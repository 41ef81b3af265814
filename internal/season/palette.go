package season

import (
	"fmt"
	"math"
)

// Group is the compositional role of a color inside a palette.
type Group string

const (
	GroupNeutral Group = "neutral"
	GroupCore    Group = "core"
	GroupAccent  Group = "accent"
	GroupMetal   Group = "metal"
)

// ColorEntry is one named color in a palette. Hex is the exact display
// value and the dedup key for detail selection; Name is all a free-tier
// user ever sees.
type ColorEntry struct {
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Group Group  `json:"group"`
}

// Palette holds the recommended and to-avoid pools for one season plus
// the one-line advisory shown with every analysis result.
type Palette struct {
	Best   []ColorEntry
	Avoid  []ColorEntry
	Advice string
}

type paletteSpec struct {
	baseHue   float64
	warm      bool
	intensity string // light | bright | soft | dark
}

// Hue anchors per season. Warm families sit in the yellow/orange range,
// cool families in the blue range, matching the source catalog.
var specs = map[Season]paletteSpec{
	LightSpring:  {30, true, "light"},
	TrueSpring:   {45, true, "bright"},
	BrightSpring: {45, true, "bright"},
	WarmSpring:   {40, true, "light"},

	LightSummer: {200, false, "light"},
	TrueSummer:  {220, false, "soft"},
	SoftSummer:  {200, false, "soft"},
	CoolSummer:  {240, false, "light"},

	SoftAutumn: {40, true, "soft"},
	TrueAutumn: {30, true, "dark"},
	DarkAutumn: {20, true, "dark"},
	WarmAutumn: {35, true, "dark"},

	DarkWinter:   {240, false, "dark"},
	TrueWinter:   {240, false, "bright"},
	BrightWinter: {240, false, "bright"},
	CoolWinter:   {240, false, "bright"},
}

var palettes = buildPalettes()

// PaletteFor never fails: the catalog covers every enum value.
func PaletteFor(s Season) Palette {
	return palettes[s]
}

func buildPalettes() map[Season]Palette {
	out := make(map[Season]Palette, len(specs))
	for s, spec := range specs {
		out[s] = Palette{
			Best:   buildBest(spec),
			Avoid:  buildAvoid(spec),
			Advice: DetailsFor(s).DescriptionMN,
		}
	}
	return out
}

// buildBest produces a season's recommended pool: 10 neutrals, 25 core,
// 8 accents, 2 metals (45 total). Hues fan out from the season anchor by
// a golden-angle stride so every selector hue bucket sees candidates;
// value and saturation bands follow the intensity class. The data is
// fully deterministic: same spec, same bytes, every build.
func buildBest(spec paletteSpec) []ColorEntry {
	colors := make([]ColorEntry, 0, 45)

	sMin, sMax, vMin, vMax := intensityBands(spec.intensity)

	for i := 0; i < 10; i++ {
		// Neutrals hug the anchor hue at very low saturation, walking
		// the value band from dark to light.
		h := math.Mod(spec.baseHue+float64(i)*4, 360)
		sat := 6 + float64(i%3)*4
		val := 25 + float64(i)*7
		colors = append(colors, ColorEntry{
			Name:  fmt.Sprintf("Суурь өнгө %d", i+1),
			Hex:   hsvToHex(h, sat, val),
			Group: GroupNeutral,
		})
	}

	for i := 0; i < 25; i++ {
		h := math.Mod(spec.baseHue+float64(i)*137.5, 360)
		sat := sMin + math.Mod(float64(i)*13, sMax-sMin)
		val := vMin + math.Mod(float64(i)*17, vMax-vMin)
		colors = append(colors, ColorEntry{
			Name:  fmt.Sprintf("Үндсэн өнгө %d", i+1),
			Hex:   hsvToHex(h, sat, val),
			Group: GroupCore,
		})
	}

	for i := 0; i < 8; i++ {
		// Accents swing to the far side of the wheel at full punch.
		h := math.Mod(spec.baseHue+180+float64(i)*33, 360)
		sat := math.Min(sMax+15, 100)
		val := math.Min(vMax+5, 95)
		colors = append(colors, ColorEntry{
			Name:  fmt.Sprintf("Тод өнгө %d", i+1),
			Hex:   hsvToHex(h, sat, val),
			Group: GroupAccent,
		})
	}

	if spec.warm {
		colors = append(colors,
			ColorEntry{Name: "Алт/Мөнгө 1", Hex: "#FFD700", Group: GroupMetal},
			ColorEntry{Name: "Алт/Мөнгө 2", Hex: "#DAA520", Group: GroupMetal},
		)
	} else {
		colors = append(colors,
			ColorEntry{Name: "Алт/Мөнгө 1", Hex: "#C0C0C0", Group: GroupMetal},
			ColorEntry{Name: "Алт/Мөнгө 2", Hex: "#E5E4E2", Group: GroupMetal},
		)
	}

	return colors
}

// buildAvoid mirrors the catalog convention: forty colors of the
// opposite temperature, all treated as core.
func buildAvoid(spec paletteSpec) []ColorEntry {
	opposite := spec.baseHue + 180
	colors := make([]ColorEntry, 0, 40)
	for i := 0; i < 40; i++ {
		h := math.Mod(opposite+float64(i)*137.5, 360)
		sat := 40 + math.Mod(float64(i)*11, 55)
		val := 35 + math.Mod(float64(i)*9, 55)
		colors = append(colors, ColorEntry{
			Name:  fmt.Sprintf("Зохимжгүй өнгө %d", i+1),
			Hex:   hsvToHex(h, sat, val),
			Group: GroupCore,
		})
	}
	return colors
}

func intensityBands(intensity string) (sMin, sMax, vMin, vMax float64) {
	switch intensity {
	case "light":
		return 30, 55, 75, 95
	case "bright":
		return 65, 95, 65, 95
	case "soft":
		return 20, 40, 50, 75
	default: // dark
		return 45, 75, 25, 55
	}
}

// hsvToHex converts h in [0,360), s and v in [0,100] to "#RRGGBB".
func hsvToHex(h, s, v float64) string {
	s /= 100
	v /= 100
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	ri := int(math.Round((r + m) * 255))
	gi := int(math.Round((g + m) * 255))
	bi := int(math.Round((b + m) * 255))
	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}
