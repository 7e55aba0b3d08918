package geometry

import (
	"sort"
	"strings"
)

// Word is one recognized token with its page-normalized bounding box.
// Coordinates are in [0,1] after BuildLines; raw pixel boxes go in.
type Word struct {
	Text       string
	X0, Y0     float64
	X1, Y1     float64
	Confidence float64
}

// Line is a row of words clustered by vertical proximity. Words are sorted
// left-to-right; lines top-to-bottom.
type Line struct {
	Y     float64 // mean of member word tops, normalized
	Words []Word
	Text  string
}

// rowTolerance is the vertical clustering tolerance as a fraction of page
// height (~12px on a 1000px-tall page).
const rowTolerance = 0.012

// BuildLines normalizes a page's words against the union of all word boxes
// and clusters them into ordered lines. This is the single representation
// shared by the header and table extractors, so the clustering tolerance
// affects both uniformly.
func BuildLines(words []Word) []Line {
	if len(words) == 0 {
		return nil
	}

	minX, minY := words[0].X0, words[0].Y0
	maxX, maxY := words[0].X1, words[0].Y1
	for _, w := range words[1:] {
		if w.X0 < minX {
			minX = w.X0
		}
		if w.Y0 < minY {
			minY = w.Y0
		}
		if w.X1 > maxX {
			maxX = w.X1
		}
		if w.Y1 > maxY {
			maxY = w.Y1
		}
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	norm := make([]Word, len(words))
	for i, w := range words {
		norm[i] = Word{
			Text:       w.Text,
			X0:         (w.X0 - minX) / spanX,
			Y0:         (w.Y0 - minY) / spanY,
			X1:         (w.X1 - minX) / spanX,
			Y1:         (w.Y1 - minY) / spanY,
			Confidence: w.Confidence,
		}
	}

	sort.Slice(norm, func(i, j int) bool {
		if norm[i].Y0 != norm[j].Y0 {
			return norm[i].Y0 < norm[j].Y0
		}
		return norm[i].X0 < norm[j].X0
	})

	var lines []Line
	var current []Word
	rowY := norm[0].Y0
	for _, w := range norm {
		if len(current) > 0 && w.Y0-rowY > rowTolerance {
			lines = append(lines, finishLine(current))
			current = nil
		}
		if len(current) == 0 {
			rowY = w.Y0
		}
		current = append(current, w)
	}
	if len(current) > 0 {
		lines = append(lines, finishLine(current))
	}
	return lines
}

func finishLine(words []Word) Line {
	sort.Slice(words, func(i, j int) bool { return words[i].X0 < words[j].X0 })
	var sumY float64
	parts := make([]string, len(words))
	for i, w := range words {
		sumY += w.Y0
		parts[i] = w.Text
	}
	return Line{
		Y:     sumY / float64(len(words)),
		Words: words,
		Text:  strings.Join(parts, " "),
	}
}
