package season

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seasons.yaml
var detailsYAML []byte

// Details is the advisory copy attached to each season. Mongolian is
// the user-facing language; English fields exist for operator tooling.
type Details struct {
	NameMN        string `yaml:"nameMn"`
	KeywordsMN    string `yaml:"keywordsMn"`
	KeywordsEN    string `yaml:"keywordsEn"`
	DescriptionMN string `yaml:"descriptionMn"`
	DescriptionEN string `yaml:"descriptionEn"`
}

var details = mustLoadDetails()

func mustLoadDetails() map[Season]Details {
	raw := make(map[string]Details)
	if err := yaml.Unmarshal(detailsYAML, &raw); err != nil {
		panic(fmt.Sprintf("season: embedded details corrupt: %v", err))
	}
	out := make(map[Season]Details, len(raw))
	for k, v := range raw {
		s, ok := Parse(k)
		if !ok {
			panic(fmt.Sprintf("season: unknown season %q in embedded details", k))
		}
		out[s] = v
	}
	for _, s := range All() {
		if _, ok := out[s]; !ok {
			panic(fmt.Sprintf("season: missing details for %q", s))
		}
	}
	return out
}

// DetailsFor never fails: every enum value has an entry, enforced at init.
func DetailsFor(s Season) Details {
	return details[s]
}
