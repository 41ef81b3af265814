// Package palette implements balanced subset selection over a season's
// color pool. Both presentation tiers share the same shape: dedupe,
// reserve compositional roles, then fill for diversity. Both selectors
// are total functions; a pool smaller than the requested count simply
// yields fewer entries.
package palette

import (
	"strings"

	"github.com/NarantsogtB/messenger-bot/internal/season"
)

const hueBuckets = 8 // 45 degrees each

// SelectDetail picks `count` entries for the paid presentation: unique
// by hex, up to 3 neutrals and 2 accents reserved first, remaining
// slots drawn round-robin across hue buckets so the ring reads as
// perceptually diverse rather than a contiguous slice of the pool.
func SelectDetail(pool []season.ColorEntry, count int) []season.ColorEntry {
	unique := uniqueByHex(pool)

	var neutrals, cores, accents []season.ColorEntry
	for _, c := range unique {
		switch c.Group {
		case season.GroupNeutral:
			neutrals = append(neutrals, c)
		case season.GroupCore:
			cores = append(cores, c)
		case season.GroupAccent:
			accents = append(accents, c)
		}
	}

	selection := make([]season.ColorEntry, 0, count)
	usedHex := make(map[string]bool)
	add := func(c season.ColorEntry) {
		key := strings.ToLower(c.Hex)
		if len(selection) < count && !usedHex[key] {
			selection = append(selection, c)
			usedHex[key] = true
		}
	}

	for _, c := range take(neutrals, 3) {
		add(c)
	}
	for _, c := range take(accents, 2) {
		add(c)
	}

	// Remaining slots: cores first, then accent/neutral overflow,
	// bucketed by hue and drained round-robin.
	candidates := append(append(append([]season.ColorEntry{}, cores...), drop(accents, 2)...), drop(neutrals, 3)...)

	buckets := make([][]season.ColorEntry, hueBuckets)
	for _, c := range candidates {
		b := hueBucket(c.Hex)
		buckets[b] = append(buckets[b], c)
	}

	attempts := 0
	for idx := 0; len(selection) < count && attempts < len(candidates)*2; idx = (idx + 1) % hueBuckets {
		if len(buckets[idx]) > 0 {
			add(buckets[idx][0])
			buckets[idx] = buckets[idx][1:]
		}
		attempts++
	}

	// Pool too small or too clustered: force-fill in original order.
	for _, c := range unique {
		if len(selection) >= count {
			break
		}
		add(c)
	}

	return selection
}

// SelectPreview picks `count` entries for the free tier. Only names are
// shown there, so uniqueness is by display name: up to 2 neutrals and 1
// accent reserved, the rest from core in pool order, leftover accents
// and neutrals as backfill.
func SelectPreview(pool []season.ColorEntry, count int) []season.ColorEntry {
	unique := uniqueByHex(pool)

	var neutrals, cores, accents []season.ColorEntry
	for _, c := range unique {
		switch c.Group {
		case season.GroupNeutral:
			neutrals = append(neutrals, c)
		case season.GroupCore:
			cores = append(cores, c)
		case season.GroupAccent:
			accents = append(accents, c)
		}
	}

	selection := make([]season.ColorEntry, 0, count)
	usedName := make(map[string]bool)
	add := func(c season.ColorEntry) {
		if len(selection) < count && !usedName[c.Name] {
			selection = append(selection, c)
			usedName[c.Name] = true
		}
	}

	for _, c := range take(neutrals, 2) {
		add(c)
	}
	for _, c := range take(accents, 1) {
		add(c)
	}
	for _, c := range cores {
		add(c)
	}
	for _, c := range accents {
		add(c)
	}
	for _, c := range neutrals {
		add(c)
	}

	return selection
}

func uniqueByHex(pool []season.ColorEntry) []season.ColorEntry {
	seen := make(map[string]bool, len(pool))
	out := make([]season.ColorEntry, 0, len(pool))
	for _, c := range pool {
		key := strings.ToLower(c.Hex)
		if !seen[key] {
			seen[key] = true
			out = append(out, c)
		}
	}
	return out
}

func take(s []season.ColorEntry, n int) []season.ColorEntry {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func drop(s []season.ColorEntry, n int) []season.ColorEntry {
	if len(s) < n {
		return nil
	}
	return s[n:]
}
