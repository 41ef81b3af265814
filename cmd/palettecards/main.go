// Command palettecards renders the per-season ring images that the
// paid flow sends: twelve recommended swatches on best.png and twelve
// to-avoid swatches on avoid.png, laid out under the same path scheme
// the asset resolver produces URLs for.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/NarantsogtB/messenger-bot/internal/palette"
	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
	"github.com/NarantsogtB/messenger-bot/internal/season"
)

const (
	canvasSize   = 1080
	swatchRadius = 110.0
	ringRadius   = 390.0
)

func main() {
	outDir := flag.String("out", "assets/rings", "output directory for ring images")
	flag.Parse()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	titleFace, labelFace, err := loadFaces()
	if err != nil {
		log.Error("Could not load font", "error", err)
		os.Exit(1)
	}

	for _, s := range season.All() {
		best, avoid := palette.RingSelection(s)
		dir := filepath.Join(*outDir, s.Slug())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("Could not create output dir", "dir", dir, "error", err)
			os.Exit(1)
		}

		pages := []struct {
			file    string
			heading string
			colors  []season.ColorEntry
		}{
			{"best.png", "Танд зохих өнгөнүүд", best},
			{"avoid.png", "Зайлсхийх өнгөнүүд", avoid},
		}
		for _, p := range pages {
			path := filepath.Join(dir, p.file)
			if err := renderRing(path, s, p.heading, p.colors, titleFace, labelFace); err != nil {
				log.Error("Render failed", "path", path, "error", err)
				os.Exit(1)
			}
			log.Info("Rendered ring", "path", path, "swatches", len(p.colors))
		}
	}
}

func loadFaces() (title, label font.Face, err error) {
	parsed, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, nil, fmt.Errorf("parse font: %w", err)
	}
	title = truetype.NewFace(parsed, &truetype.Options{Size: 64})
	label = truetype.NewFace(parsed, &truetype.Options{Size: 34})
	return title, label, nil
}

func renderRing(path string, s season.Season, heading string, colors []season.ColorEntry, titleFace, labelFace font.Face) error {
	dc := gg.NewContext(canvasSize, canvasSize)

	dc.SetColor(color.White)
	dc.DrawRectangle(0, 0, canvasSize, canvasSize)
	dc.Fill()

	cx, cy := float64(canvasSize)/2, float64(canvasSize)/2

	// Swatches around the ring, clockwise from twelve o'clock.
	for i, entry := range colors {
		angle := 2*math.Pi*float64(i)/float64(len(colors)) - math.Pi/2
		x := cx + ringRadius*math.Cos(angle)
		y := cy + ringRadius*math.Sin(angle)

		dc.SetHexColor(entry.Hex)
		dc.DrawCircle(x, y, swatchRadius)
		dc.Fill()

		dc.SetRGB(0.85, 0.85, 0.85)
		dc.SetLineWidth(2)
		dc.DrawCircle(x, y, swatchRadius)
		dc.Stroke()
	}

	// Center copy
	d := season.DetailsFor(s)
	dc.SetColor(color.Black)

	dc.SetFontFace(titleFace)
	tw, th := dc.MeasureString(d.NameMN)
	dc.DrawString(d.NameMN, cx-tw/2, cy-th/2)

	dc.SetFontFace(labelFace)
	lw, lh := dc.MeasureString(heading)
	dc.DrawString(heading, cx-lw/2, cy+lh+24)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}
