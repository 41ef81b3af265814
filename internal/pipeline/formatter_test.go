package pipeline

import (
	"strings"
	"testing"

	"github.com/NarantsogtB/messenger-bot/internal/season"
)

func TestFormatAnalysis_ContainsEveryBlock(t *testing.T) {
	out := FormatAnalysis(season.TrueWinter)

	for _, want := range []string{
		"Таны улирлын төрөл: True Winter.",
		"Түлхүүр үг:",
		"Танд дараах өнгөнүүд илүү зохино:",
		"Дараах өнгөнөөс зайлсхийгээрэй:",
		"Зөвлөгөө:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatAnalysis_NamesOnlyNeverHex(t *testing.T) {
	for _, s := range season.All() {
		out := FormatAnalysis(s)
		if strings.Contains(out, "#") {
			t.Fatalf("%q: free-tier output leaks hex codes:\n%s", s, out)
		}
	}
}

func TestFormatAnalysis_PreviewCounts(t *testing.T) {
	out := FormatAnalysis(season.SoftAutumn)
	if got := strings.Count(out, "• "); got != previewBestCount+previewAvoidCount {
		t.Fatalf("expected %d bullets, got %d:\n%s", previewBestCount+previewAvoidCount, got, out)
	}
}

func TestQualityMessage_AppendsRetryAsk(t *testing.T) {
	got := qualityMessage("Зураг будгарсан байна")
	if got != "Зураг будгарсан байна. Өөр зураг илгээнэ үү." {
		t.Fatalf("unexpected message %q", got)
	}
}
