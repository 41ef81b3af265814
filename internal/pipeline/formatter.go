package pipeline

import (
	"fmt"
	"strings"

	"github.com/NarantsogtB/messenger-bot/internal/palette"
	"github.com/NarantsogtB/messenger-bot/internal/season"
)

const (
	previewBestCount  = 6
	previewAvoidCount = 4
)

// FormatAnalysis renders the free-tier analysis response: the season,
// its keyword line, a name-only color preview and the advisory. Hex
// codes never appear here; free users see names only.
func FormatAnalysis(s season.Season) string {
	pal := season.PaletteFor(s)
	details := season.DetailsFor(s)

	best := palette.SelectPreview(pal.Best, previewBestCount)
	avoid := palette.SelectPreview(pal.Avoid, previewAvoidCount)

	return fmt.Sprintf(`Таны улирлын төрөл: %s.

Түлхүүр үг: %s

Танд дараах өнгөнүүд илүү зохино:
%s

Дараах өнгөнөөс зайлсхийгээрэй:
%s

Зөвлөгөө: %s`,
		s,
		details.KeywordsMN,
		bulletNames(best),
		bulletNames(avoid),
		pal.Advice,
	)
}

func bulletNames(entries []season.ColorEntry) string {
	lines := make([]string, 0, len(entries))
	for _, c := range entries {
		lines = append(lines, "• "+c.Name)
	}
	return strings.Join(lines, "\n")
}
