package imaging

import (
	"testing"

	"github.com/NarantsogtB/messenger-bot/internal/types"
)

func TestCheckQuality_RuleOrder(t *testing.T) {
	goodBox := types.BoundingBox{X: 0, Y: 0, Width: 500, Height: 500}
	tinyBox := types.BoundingBox{X: 0, Y: 0, Width: 50, Height: 50}

	cases := []struct {
		name   string
		face   types.FaceMetadata
		valid  bool
		reason string
	}{
		{
			name:  "clean photo passes",
			face:  types.FaceMetadata{BoundingBox: goodBox, TotalFaces: 1},
			valid: true,
		},
		{
			name:   "multiple faces",
			face:   types.FaceMetadata{BoundingBox: goodBox, TotalFaces: 2},
			reason: ReasonMultipleFaces,
		},
		{
			name:   "face too small",
			face:   types.FaceMetadata{BoundingBox: tinyBox, TotalFaces: 1},
			reason: ReasonFaceTooFar,
		},
		{
			name: "blurred",
			face: types.FaceMetadata{
				BoundingBox:    goodBox,
				TotalFaces:     1,
				BlurLikelihood: types.LikelihoodLikely,
			},
			reason: ReasonBlurred,
		},
		{
			name: "under exposed",
			face: types.FaceMetadata{
				BoundingBox:            goodBox,
				TotalFaces:             1,
				UnderExposedLikelihood: types.LikelihoodVeryLikely,
			},
			reason: ReasonUnderExposed,
		},
		{
			name: "multiple faces wins over blur and size",
			face: types.FaceMetadata{
				BoundingBox:    tinyBox,
				TotalFaces:     3,
				BlurLikelihood: types.LikelihoodVeryLikely,
			},
			reason: ReasonMultipleFaces,
		},
		{
			name: "size wins over blur",
			face: types.FaceMetadata{
				BoundingBox:    tinyBox,
				TotalFaces:     1,
				BlurLikelihood: types.LikelihoodVeryLikely,
			},
			reason: ReasonFaceTooFar,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CheckQuality(c.face, 1000, 1000)
			if got.Valid != c.valid {
				t.Fatalf("Valid = %v, want %v (reason %q)", got.Valid, c.valid, got.Reason)
			}
			if got.Reason != c.reason {
				t.Fatalf("Reason = %q, want %q", got.Reason, c.reason)
			}
		})
	}
}

func TestCheckQuality_ExactAreaThreshold(t *testing.T) {
	// 15% of a 1000x1000 frame; the cut is strictly-less-than.
	face := types.FaceMetadata{
		BoundingBox: types.BoundingBox{Width: 500, Height: 300},
		TotalFaces:  1,
	}
	if got := CheckQuality(face, 1000, 1000); !got.Valid {
		t.Fatalf("exactly 15%% should pass, got reason %q", got.Reason)
	}
}

func TestCheckQuality_ZeroImageArea(t *testing.T) {
	face := types.FaceMetadata{
		BoundingBox: types.BoundingBox{Width: 100, Height: 100},
		TotalFaces:  1,
	}
	got := CheckQuality(face, 0, 0)
	if got.Valid || got.Reason != ReasonFaceTooFar {
		t.Fatalf("zero-area frame must reject as too far, got %+v", got)
	}
}

func TestLikelihoodBad(t *testing.T) {
	bad := []types.Likelihood{types.LikelihoodLikely, types.LikelihoodVeryLikely}
	ok := []types.Likelihood{
		types.LikelihoodUnknown, types.LikelihoodVeryUnlikely,
		types.LikelihoodUnlikely, types.LikelihoodPossible,
	}
	for _, l := range bad {
		if !l.Bad() {
			t.Fatalf("%q should be bad", l)
		}
	}
	for _, l := range ok {
		if l.Bad() {
			t.Fatalf("%q should not be bad", l)
		}
	}
}
