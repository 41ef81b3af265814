package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
)

// ErrDecode marks undecodable input. The quality gate fails open on it;
// classification without pixel data is impossible and surfaces as a
// retry message instead.
var ErrDecode = errors.New("imaging: decode failed")

// Decoded is the pixel view the classifier samples from.
type Decoded struct {
	Width  int
	Height int
	img    image.Image
}

// At returns the 8-bit RGB at (x, y). Callers must stay in bounds.
func (d *Decoded) At(x, y int) (r, g, b int) {
	r32, g32, b32, _ := d.img.At(d.img.Bounds().Min.X+x, d.img.Bounds().Min.Y+y).RGBA()
	return int(r32 >> 8), int(g32 >> 8), int(b32 >> 8)
}

// Decode handles the fixed inbound format (JPEG, what the Messenger CDN
// serves for photo attachments).
func Decode(data []byte) (*Decoded, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	b := img.Bounds()
	return &Decoded{Width: b.Dx(), Height: b.Dy(), img: img}, nil
}
