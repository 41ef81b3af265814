package season

import "strings"

// Season is one of the sixteen seasonal color analysis outcomes: four
// base families (Spring/Summer/Autumn/Winter) times four intensity
// variants. There is no behavior attached to a Season beyond data
// lookup; the string value doubles as the persisted KV representation.
type Season string

const (
	LightSpring  Season = "Light Spring"
	TrueSpring   Season = "True Spring"
	BrightSpring Season = "Bright Spring"
	WarmSpring   Season = "Warm Spring"

	LightSummer Season = "Light Summer"
	TrueSummer  Season = "True Summer"
	SoftSummer  Season = "Soft Summer"
	CoolSummer  Season = "Cool Summer"

	SoftAutumn Season = "Soft Autumn"
	TrueAutumn Season = "True Autumn"
	DarkAutumn Season = "Dark Autumn"
	WarmAutumn Season = "Warm Autumn"

	DarkWinter   Season = "Dark Winter"
	TrueWinter   Season = "True Winter"
	BrightWinter Season = "Bright Winter"
	CoolWinter   Season = "Cool Winter"
)

// All lists every season in family order.
func All() []Season {
	return []Season{
		LightSpring, TrueSpring, BrightSpring, WarmSpring,
		LightSummer, TrueSummer, SoftSummer, CoolSummer,
		SoftAutumn, TrueAutumn, DarkAutumn, WarmAutumn,
		DarkWinter, TrueWinter, BrightWinter, CoolWinter,
	}
}

func Valid(s Season) bool {
	for _, v := range All() {
		if v == s {
			return true
		}
	}
	return false
}

// Parse maps a persisted string back to a Season. Unknown input yields
// ("", false); callers decide the fallback.
func Parse(raw string) (Season, bool) {
	s := Season(strings.TrimSpace(raw))
	if Valid(s) {
		return s, true
	}
	return "", false
}

// Slug is the asset-path form, e.g. "True Winter" -> "true_winter".
func (s Season) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(s)), " ", "_")
}
