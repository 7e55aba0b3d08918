package ocr

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucverdier/lotscan/internal/geometry"
)

// tesseractTSV runs tesseract in TSV mode and parses word-level boxes plus
// the mean word confidence (0..1).
func (e *Engine) tesseractTSV(ctx context.Context, path string) ([]geometry.Word, float64, error) {
	args := append(e.baseArgs(path), "tsv")
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("tesseract TSV: %w (%s)", err, truncate(string(errb), 512))
	}
	words, conf := ParseTSV(string(out))
	return words, conf, nil
}

// ParseTSV converts tesseract's TSV output into words with pixel bounding
// boxes. Columns: level page block par line word left top width height conf
// text. Word rows have level 5; conf -1 rows are layout artifacts.
func ParseTSV(tsv string) ([]geometry.Word, float64) {
	var words []geometry.Word
	var sum, n float64

	for i, ln := range strings.Split(tsv, "\n") {
		if i == 0 || ln == "" {
			continue // header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue // defensive
		}
		level, _ := strconv.Atoi(cols[0])
		if level != 5 {
			continue
		}
		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue
		}
		text := strings.TrimSpace(cols[11])
		if text == "" {
			continue
		}
		left, err1 := strconv.ParseFloat(cols[6], 64)
		top, err2 := strconv.ParseFloat(cols[7], 64)
		width, err3 := strconv.ParseFloat(cols[8], 64)
		height, err4 := strconv.ParseFloat(cols[9], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		words = append(words, geometry.Word{
			Text:       text,
			X0:         left,
			Y0:         top,
			X1:         left + width,
			Y1:         top + height,
			Confidence: conf / 100.0,
		})
		sum += conf
		n++
	}
	if n == 0 {
		return words, 0
	}
	return words, sum / n / 100.0
}
