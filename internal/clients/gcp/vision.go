package gcp

import (
	"context"
	"errors"
	"fmt"

	vision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
	"github.com/NarantsogtB/messenger-bot/internal/types"
)

// ErrExternal marks Vision API transport/API failures, as opposed to
// the perfectly valid "no face in this photo" answer.
var ErrExternal = errors.New("gcp: vision call failed")

// FaceDetector is the detection collaborator of the pipeline. One call
// per image keeps Vision costs bounded; results are cached upstream by
// image fingerprint.
type FaceDetector interface {
	// DetectFace returns metadata for the most prominent face, or
	// (nil, nil) when the photo contains no face at all.
	DetectFace(ctx context.Context, img []byte) (*types.FaceMetadata, error)
	Close() error
}

type faceDetector struct {
	log    *logger.Logger
	client *vision.ImageAnnotatorClient
}

func NewFaceDetector(log *logger.Logger, credentials string) (FaceDetector, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	ctx := context.Background()
	client, err := vision.NewImageAnnotatorClient(ctx, ClientOptions(credentials)...)
	if err != nil {
		return nil, fmt.Errorf("vision client: %w", err)
	}
	return &faceDetector{log: log.With("client", "FaceDetector"), client: client}, nil
}

const maxFaceResults = 4

func (d *faceDetector) DetectFace(ctx context.Context, img []byte) (*types.FaceMetadata, error) {
	resp, err := d.client.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image: &visionpb.Image{Content: img},
			Features: []*visionpb.Feature{{
				Type:       visionpb.Feature_FACE_DETECTION,
				MaxResults: maxFaceResults,
			}},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternal, err)
	}
	results := resp.GetResponses()
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: empty batch response", ErrExternal)
	}
	if apiErr := results[0].GetError(); apiErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrExternal, apiErr.GetMessage())
	}
	return faceFromAnnotations(results[0].GetFaceAnnotations()), nil
}

// faceFromAnnotations folds the annotation list into the metadata the
// pipeline consumes. Nil means the photo contains no face.
func faceFromAnnotations(faces []*visionpb.FaceAnnotation) *types.FaceMetadata {
	if len(faces) == 0 {
		return nil
	}
	primary := faces[0]
	return &types.FaceMetadata{
		BoundingBox:            boxFromPoly(primary.GetBoundingPoly()),
		TotalFaces:             len(faces),
		BlurLikelihood:         likelihood(primary.GetBlurredLikelihood()),
		UnderExposedLikelihood: likelihood(primary.GetUnderExposedLikelihood()),
	}
}

func (d *faceDetector) Close() error {
	return d.client.Close()
}

// boxFromPoly folds the polygon vertices into an axis-aligned box.
func boxFromPoly(poly *visionpb.BoundingPoly) types.BoundingBox {
	vertices := poly.GetVertices()
	if len(vertices) == 0 {
		return types.BoundingBox{}
	}
	minX, minY := int(vertices[0].GetX()), int(vertices[0].GetY())
	maxX, maxY := minX, minY
	for _, v := range vertices[1:] {
		x, y := int(v.GetX()), int(v.GetY())
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return types.BoundingBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func likelihood(l visionpb.Likelihood) types.Likelihood {
	switch l {
	case visionpb.Likelihood_VERY_UNLIKELY:
		return types.LikelihoodVeryUnlikely
	case visionpb.Likelihood_UNLIKELY:
		return types.LikelihoodUnlikely
	case visionpb.Likelihood_POSSIBLE:
		return types.LikelihoodPossible
	case visionpb.Likelihood_LIKELY:
		return types.LikelihoodLikely
	case visionpb.Likelihood_VERY_LIKELY:
		return types.LikelihoodVeryLikely
	default:
		return types.LikelihoodUnknown
	}
}
