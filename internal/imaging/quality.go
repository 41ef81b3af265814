package imaging

import "github.com/NarantsogtB/messenger-bot/internal/types"

// User-facing rejection reasons, in rule order.
const (
	ReasonMultipleFaces = "Олон хүн илэрсэн"
	ReasonFaceTooFar    = "Нүүр хэтэрхий хол байна"
	ReasonBlurred       = "Зураг будгарсан байна"
	ReasonUnderExposed  = "Гэрэлтүүлэг хангалтгүй байна"
)

const minFaceAreaRatio = 0.15

// QualityResult reports whether the photo is usable for analysis and,
// when not, the single reason shown to the user.
type QualityResult struct {
	Valid  bool
	Reason string
}

// CheckQuality evaluates the gate rules in fixed order; the first
// failing rule wins even when several apply.
func CheckQuality(face types.FaceMetadata, imgWidth, imgHeight int) QualityResult {
	if face.TotalFaces > 1 {
		return QualityResult{Valid: false, Reason: ReasonMultipleFaces}
	}

	faceArea := face.BoundingBox.Width * face.BoundingBox.Height
	totalArea := imgWidth * imgHeight
	if totalArea <= 0 || float64(faceArea)/float64(totalArea) < minFaceAreaRatio {
		return QualityResult{Valid: false, Reason: ReasonFaceTooFar}
	}

	if face.BlurLikelihood.Bad() {
		return QualityResult{Valid: false, Reason: ReasonBlurred}
	}

	if face.UnderExposedLikelihood.Bad() {
		return QualityResult{Valid: false, Reason: ReasonUnderExposed}
	}

	return QualityResult{Valid: true}
}
