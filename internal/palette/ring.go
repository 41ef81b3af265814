package palette

import "github.com/NarantsogtB/messenger-bot/internal/season"

// Ring size of the paid detail presentation.
const DetailCount = 12

// RingSelection picks the two 12-color rings (recommended and
// to-avoid) shown to paid users and rendered onto the ring assets.
func RingSelection(s season.Season) (best, avoid []season.ColorEntry) {
	pal := season.PaletteFor(s)
	return SelectDetail(pal.Best, DetailCount), SelectDetail(pal.Avoid, DetailCount)
}
