package season

import (
	"strings"
	"testing"
)

func TestParse_RoundtripsEverySeason(t *testing.T) {
	for _, s := range All() {
		got, ok := Parse(string(s))
		if !ok {
			t.Fatalf("Parse(%q) not ok", s)
		}
		if got != s {
			t.Fatalf("Parse(%q) = %q", s, got)
		}
	}
}

func TestParse_RejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "winter", "True  Winter", "true winter"} {
		if _, ok := Parse(raw); ok {
			t.Fatalf("Parse(%q) unexpectedly ok", raw)
		}
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	got, ok := Parse("  True Winter ")
	if !ok || got != TrueWinter {
		t.Fatalf("expected True Winter, got %q ok=%v", got, ok)
	}
}

func TestSlug_Format(t *testing.T) {
	if got := TrueWinter.Slug(); got != "true_winter" {
		t.Fatalf("expected true_winter, got %q", got)
	}
	if got := LightSpring.Slug(); got != "light_spring" {
		t.Fatalf("expected light_spring, got %q", got)
	}
}

func TestAll_SixteenDistinct(t *testing.T) {
	all := All()
	if len(all) != 16 {
		t.Fatalf("expected 16 seasons, got %d", len(all))
	}
	seen := make(map[Season]bool)
	for _, s := range all {
		if seen[s] {
			t.Fatalf("duplicate season %q", s)
		}
		seen[s] = true
	}
}

func TestDetailsFor_CoversEverySeason(t *testing.T) {
	for _, s := range All() {
		d := DetailsFor(s)
		if d.NameMN == "" || d.KeywordsMN == "" || d.DescriptionMN == "" {
			t.Fatalf("incomplete details for %q: %+v", s, d)
		}
	}
}

func TestPaletteFor_CoversEverySeason(t *testing.T) {
	for _, s := range All() {
		pal := PaletteFor(s)
		if len(pal.Best) == 0 {
			t.Fatalf("empty best pool for %q", s)
		}
		if len(pal.Avoid) == 0 {
			t.Fatalf("empty avoid pool for %q", s)
		}
		if pal.Advice == "" {
			t.Fatalf("missing advice for %q", s)
		}
	}
}

func TestPaletteFor_PoolComposition(t *testing.T) {
	for _, s := range All() {
		pal := PaletteFor(s)
		counts := make(map[Group]int)
		for _, c := range pal.Best {
			counts[c.Group]++
			if !strings.HasPrefix(c.Hex, "#") || len(c.Hex) != 7 {
				t.Fatalf("%q: bad hex %q", s, c.Hex)
			}
			if c.Name == "" {
				t.Fatalf("%q: unnamed color %q", s, c.Hex)
			}
		}
		if counts[GroupNeutral] < 3 {
			t.Fatalf("%q: want at least 3 neutrals, got %d", s, counts[GroupNeutral])
		}
		if counts[GroupAccent] < 2 {
			t.Fatalf("%q: want at least 2 accents, got %d", s, counts[GroupAccent])
		}
		if counts[GroupCore] == 0 {
			t.Fatalf("%q: no core colors", s)
		}
		if counts[GroupMetal] != 2 {
			t.Fatalf("%q: want 2 metals, got %d", s, counts[GroupMetal])
		}
	}
}

func TestPaletteFor_DeterministicAcrossCalls(t *testing.T) {
	a := PaletteFor(TrueAutumn)
	b := PaletteFor(TrueAutumn)
	if len(a.Best) != len(b.Best) {
		t.Fatalf("pool size changed between calls")
	}
	for i := range a.Best {
		if a.Best[i] != b.Best[i] {
			t.Fatalf("entry %d changed: %+v vs %+v", i, a.Best[i], b.Best[i])
		}
	}
}
