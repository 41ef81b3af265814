package imaging

import (
	"math"

	"github.com/NarantsogtB/messenger-bot/internal/season"
	"github.com/NarantsogtB/messenger-bot/internal/types"
)

// Sampling window inside the face bounding box: a lower-cheek patch
// chosen to avoid eyes, hair and specular highlights.
const (
	patchLeft   = 0.55
	patchRight  = 0.70
	patchTop    = 0.60
	patchBottom = 0.75
)

// Pixels with an R+G+B sum outside this open interval are treated as
// shadow/highlight outliers and excluded from the average.
const (
	outlierLow  = 50
	outlierHigh = 700
)

const (
	// Confidence is a fixed constant, not derived from sample variance.
	// It must never be read as a calibrated probability.
	baseConfidence     = 0.8
	fallbackConfidence = 0.1
)

// fallbackSeason is returned when no usable pixels survive sampling.
// Classification always terminates with some answer.
const fallbackSeason = season.TrueAutumn

// HSV carries hue in degrees [0,360), saturation and value in [0,100],
// all rounded to integers the way the decision thresholds expect.
type HSV struct {
	H int
	S int
	V int
}

// ClassifyTone samples the cheek patch of the decoded image and maps
// the averaged skin tone onto a season. A nil image (decode failed
// upstream) yields the fallback: classification always terminates with
// some answer.
func ClassifyTone(img *Decoded, face types.FaceMetadata) (season.Season, float64) {
	if img == nil {
		return fallbackSeason, fallbackConfidence
	}
	box := face.BoundingBox
	startX := box.X + int(float64(box.Width)*patchLeft)
	endX := box.X + int(float64(box.Width)*patchRight)
	startY := box.Y + int(float64(box.Height)*patchTop)
	endY := box.Y + int(float64(box.Height)*patchBottom)

	var totalR, totalG, totalB, count int
	for y := startY; y < endY; y++ {
		for x := startX; x < endX; x++ {
			if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
				continue
			}
			r, g, b := img.At(x, y)
			sum := r + g + b
			if sum > outlierLow && sum < outlierHigh {
				totalR += r
				totalG += g
				totalB += b
				count++
			}
		}
	}

	if count == 0 {
		return fallbackSeason, fallbackConfidence
	}

	hsv := rgbToHSV(
		int(math.Round(float64(totalR)/float64(count))),
		int(math.Round(float64(totalG)/float64(count))),
		int(math.Round(float64(totalB)/float64(count))),
	)
	return ClassifyHSV(hsv)
}

// ClassifyHSV is the deterministic decision tree over the averaged
// color. Warm skin reads yellower (higher hue), cool skin redder; the
// light and muted cuts pick the variant inside the family. Total over
// the whole HSV space.
func ClassifyHSV(hsv HSV) (season.Season, float64) {
	isWarm := hsv.H > 20
	isLight := hsv.V > 60
	isMuted := hsv.S < 30

	var s season.Season
	switch {
	case isWarm && isLight:
		if isMuted {
			s = season.LightSpring
		} else {
			s = season.TrueSpring
		}
	case isWarm && !isLight:
		if isMuted {
			s = season.SoftAutumn
		} else {
			s = season.TrueAutumn
		}
	case !isWarm && isLight:
		if isMuted {
			s = season.SoftSummer
		} else {
			s = season.LightSummer
		}
	default:
		if isMuted {
			s = season.DarkWinter
		} else {
			s = season.TrueWinter
		}
	}
	return s, baseConfidence
}

func rgbToHSV(ri, gi, bi int) HSV {
	r := float64(ri) / 255
	g := float64(gi) / 255
	b := float64(bi) / 255

	v := math.Max(r, math.Max(g, b))
	c := v - math.Min(r, math.Min(g, b))

	var h float64
	if c != 0 {
		switch v {
		case r:
			h = (g - b) / c
		case g:
			h = 2 + (b-r)/c
		default:
			h = 4 + (r-g)/c
		}
		if h < 0 {
			h += 6
		}
	}

	var s float64
	if v != 0 {
		s = c / v
	}

	return HSV{
		H: int(math.Round(h * 60)),
		S: int(math.Round(s * 100)),
		V: int(math.Round(v * 100)),
	}
}
