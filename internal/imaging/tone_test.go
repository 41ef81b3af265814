package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/NarantsogtB/messenger-bot/internal/season"
	"github.com/NarantsogtB/messenger-bot/internal/types"
)

func uniformImage(w, h int, c color.RGBA) *Decoded {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return &Decoded{Width: w, Height: h, img: img}
}

func fullFrameFace(w, h int) types.FaceMetadata {
	return types.FaceMetadata{
		BoundingBox: types.BoundingBox{X: 0, Y: 0, Width: w, Height: h},
		TotalFaces:  1,
	}
}

func TestClassifyHSV_CoversAllBranches(t *testing.T) {
	cases := []struct {
		name string
		hsv  HSV
		want season.Season
	}{
		{"warm light muted", HSV{H: 30, S: 20, V: 70}, season.LightSpring},
		{"warm light clear", HSV{H: 30, S: 50, V: 70}, season.TrueSpring},
		{"warm deep muted", HSV{H: 30, S: 20, V: 50}, season.SoftAutumn},
		{"warm deep clear", HSV{H: 30, S: 50, V: 50}, season.TrueAutumn},
		{"cool light muted", HSV{H: 10, S: 20, V: 70}, season.SoftSummer},
		{"cool light clear", HSV{H: 10, S: 50, V: 70}, season.LightSummer},
		{"cool deep muted", HSV{H: 10, S: 20, V: 50}, season.DarkWinter},
		{"cool deep clear", HSV{H: 10, S: 50, V: 50}, season.TrueWinter},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, conf := ClassifyHSV(c.hsv)
			if got != c.want {
				t.Fatalf("ClassifyHSV(%+v) = %q, want %q", c.hsv, got, c.want)
			}
			if conf != baseConfidence {
				t.Fatalf("expected confidence %v, got %v", baseConfidence, conf)
			}
		})
	}
}

func TestClassifyHSV_ThresholdsAreStrict(t *testing.T) {
	// Exactly at a threshold falls to the "not" side.
	if got, _ := ClassifyHSV(HSV{H: 20, S: 50, V: 50}); got != season.TrueWinter {
		t.Fatalf("hue 20 should read cool, got %q", got)
	}
	if got, _ := ClassifyHSV(HSV{H: 30, S: 50, V: 60}); got != season.TrueAutumn {
		t.Fatalf("value 60 should read deep, got %q", got)
	}
	if got, _ := ClassifyHSV(HSV{H: 30, S: 30, V: 70}); got != season.TrueSpring {
		t.Fatalf("saturation 30 should read clear, got %q", got)
	}
}

func TestClassifyTone_NilImageFallsBack(t *testing.T) {
	s, conf := ClassifyTone(nil, fullFrameFace(100, 100))
	if s != season.TrueAutumn {
		t.Fatalf("expected fallback season, got %q", s)
	}
	if conf != fallbackConfidence {
		t.Fatalf("expected fallback confidence, got %v", conf)
	}
}

func TestClassifyTone_AllOutlierPixelsFallBack(t *testing.T) {
	// Pure black sums to 0, below the outlier floor; no sample survives.
	img := uniformImage(100, 100, color.RGBA{R: 0, G: 0, B: 0, A: 255})
	s, conf := ClassifyTone(img, fullFrameFace(100, 100))
	if s != season.TrueAutumn || conf != fallbackConfidence {
		t.Fatalf("expected fallback, got %q conf=%v", s, conf)
	}
}

func TestClassifyTone_UniformWarmLightMutedSkin(t *testing.T) {
	// 235/205/180 averages to roughly H=27 S=23 V=92: warm, light, muted.
	img := uniformImage(200, 200, color.RGBA{R: 235, G: 205, B: 180, A: 255})
	s, conf := ClassifyTone(img, fullFrameFace(200, 200))
	if s != season.LightSpring {
		t.Fatalf("expected Light Spring, got %q", s)
	}
	if conf != baseConfidence {
		t.Fatalf("expected base confidence, got %v", conf)
	}
}

func TestClassifyTone_FaceBoxBeyondImageBounds(t *testing.T) {
	// The sampling patch is clipped to the frame; an oversized box must
	// not panic and still classifies from the pixels that exist.
	img := uniformImage(50, 50, color.RGBA{R: 235, G: 205, B: 180, A: 255})
	face := types.FaceMetadata{
		BoundingBox: types.BoundingBox{X: 0, Y: 0, Width: 500, Height: 500},
		TotalFaces:  1,
	}
	s, conf := ClassifyTone(img, face)
	if s != season.TrueAutumn || conf != fallbackConfidence {
		// Patch starts at 55%/60% of a 500px box, entirely outside the
		// 50px frame, so no sample survives.
		t.Fatalf("expected fallback on fully clipped patch, got %q conf=%v", s, conf)
	}
}

func TestRGBToHSV_KnownValues(t *testing.T) {
	cases := []struct {
		r, g, b int
		want    HSV
	}{
		{255, 0, 0, HSV{H: 0, S: 100, V: 100}},
		{0, 255, 0, HSV{H: 120, S: 100, V: 100}},
		{0, 0, 255, HSV{H: 240, S: 100, V: 100}},
		{0, 0, 0, HSV{H: 0, S: 0, V: 0}},
		{255, 255, 255, HSV{H: 0, S: 0, V: 100}},
	}
	for _, c := range cases {
		if got := rgbToHSV(c.r, c.g, c.b); got != c.want {
			t.Fatalf("rgbToHSV(%d,%d,%d) = %+v, want %+v", c.r, c.g, c.b, got, c.want)
		}
	}
}

func TestFingerprint_ContentAddressed(t *testing.T) {
	a := Fingerprint([]byte("same bytes"))
	b := Fingerprint([]byte("same bytes"))
	c := Fingerprint([]byte("other bytes"))
	if a != b {
		t.Fatalf("identical input must fingerprint identically")
	}
	if a == c {
		t.Fatalf("different input must not collide")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not a jpeg")); err == nil {
		t.Fatalf("expected decode error")
	}
}
