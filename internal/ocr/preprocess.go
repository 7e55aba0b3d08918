package ocr

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ocrWidth is the target width pages are resized to before recognition;
// scans below it are left alone.
const ocrWidth = 2000

// Variant is one preprocessing recipe tried before OCR. Two variants are
// run per page and the higher-scoring recognition wins (see PickBest).
type Variant struct {
	Name  string
	Apply func(image.Image) image.Image
}

// Variants returns the preprocessing recipes, in trial order.
func Variants() []Variant {
	return []Variant{
		{Name: "sharpen", Apply: sharpenResize},
		{Name: "threshold", Apply: thresholdSharpenResize},
	}
}

func sharpenResize(src image.Image) image.Image {
	img := imaging.Grayscale(src)
	img = imaging.Sharpen(img, 1.5)
	if src.Bounds().Dx() < ocrWidth {
		img = imaging.Resize(img, ocrWidth, 0, imaging.Lanczos)
	}
	return img
}

func thresholdSharpenResize(src image.Image) image.Image {
	img := threshold(imaging.Grayscale(src), 0x70)
	img = imaging.Sharpen(img, 1.5)
	if src.Bounds().Dx() < ocrWidth {
		img = imaging.Resize(img, ocrWidth, 0, imaging.Lanczos)
	}
	return img
}

// threshold binarizes a grayscale image: at or above cut -> white, below ->
// black. Faded thermal prints often OCR better binarized.
func threshold(src *image.NRGBA, cut uint8) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := src.NRGBAAt(x, y)
			v := uint8(0)
			if c.R >= cut {
				v = 0xff
			}
			dst.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 0xff})
		}
	}
	return dst
}

// Candidate pairs a preprocessing variant with its recognition output.
type Candidate struct {
	Variant     string
	Recognition Recognition
}

// Score ranks a recognition. Confidence counts on tesseract's native
// 0..100 scale times ten (ours is stored 0..1), text volume is capped at
// 3000 so a long page of noise cannot outvote a confident pass.
func (c Candidate) Score() float64 {
	n := len(c.Recognition.Text)
	if n > 3000 {
		n = 3000
	}
	return c.Recognition.Confidence*1000 + float64(n)
}

// PickBest returns the highest-scoring candidate. Pure function by design:
// variant selection stays unit-testable without running real OCR.
func PickBest(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Score() > best.Score() {
			best = c
		}
	}
	return best, true
}

// RecognizePage runs every preprocessing variant over one page image and
// keeps the best recognition. Variant failures are skipped, not fatal, as
// long as one pass succeeds.
func (e *Engine) RecognizePage(ctx context.Context, imagePath string) (Recognition, error) {
	src, err := imaging.Open(imagePath)
	if err != nil {
		return Recognition{}, fmt.Errorf("open page image: %w", err)
	}

	tmpDir, err := os.MkdirTemp(e.workDir, "page-*")
	if err != nil {
		return Recognition{}, err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.logger.Warn("ocr.cleanup.failed", "dir", tmpDir, "error", rerr)
		}
	}()

	var cands []Candidate
	var lastErr error
	for _, v := range Variants() {
		out := filepath.Join(tmpDir, v.Name+".png")
		if err := imaging.Save(v.Apply(src), out); err != nil {
			lastErr = err
			continue
		}
		rec, err := e.Recognize(ctx, out)
		if err != nil {
			lastErr = err
			continue
		}
		cands = append(cands, Candidate{Variant: v.Name, Recognition: rec})
	}

	best, ok := PickBest(cands)
	if !ok {
		return Recognition{}, fmt.Errorf("all ocr variants failed: %w", lastErr)
	}
	e.logger.Debug("ocr.variant.picked",
		"variant", best.Variant,
		"confidence", best.Recognition.Confidence,
		"bytes", len(best.Recognition.Text),
	)
	return best.Recognition, nil
}
