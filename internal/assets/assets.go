// Package assets builds public URLs for pre-rendered content. The
// binaries live behind a CDN; this code only ever constructs logical
// paths.
package assets

import (
	"fmt"
	"strings"

	"github.com/NarantsogtB/messenger-bot/internal/season"
	"github.com/NarantsogtB/messenger-bot/internal/types"
)

type Polarity string

const (
	PolarityBest  Polarity = "best"
	PolarityAvoid Polarity = "avoid"
)

type CardRole string

const (
	RoleAccessory CardRole = "accessory"
	RoleHair      CardRole = "hair"
	RoleMakeup    CardRole = "makeup"
)

// CardVariants is the number of pre-rendered variants per season,
// gender and role.
const CardVariants = 5

type Resolver struct {
	baseURL string
}

func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// RingURL points at the season's palette ring image, e.g.
// <base>/assets/rings/true_winter/best.png.
func (r *Resolver) RingURL(s season.Season, p Polarity) string {
	return fmt.Sprintf("%s/assets/rings/%s/%s.png", r.baseURL, s.Slug(), p)
}

// CardURL points at one advisory card, e.g.
// <base>/assets/cards/true_winter/female/makeup/3.png. variant is 1-based.
func (r *Resolver) CardURL(s season.Season, g types.Gender, role CardRole, variant int) string {
	return fmt.Sprintf("%s/assets/cards/%s/%s/%s/%d.png", r.baseURL, s.Slug(), g, role, variant)
}
