package extract

import (
	"regexp"
	"strings"

	"github.com/lucverdier/lotscan/internal/geometry"
	"github.com/lucverdier/lotscan/internal/textnorm"
)

// Column thresholds for the default layout (normalized x).
const (
	numberColMax = 0.20
	priceColMin  = 0.72
)

var (
	rePureNumber = regexp.MustCompile(`^\d{1,4}$`)
	reRefCode    = regexp.MustCompile(`^[A-Z]{1,3}\d{1,4}$`)
	reMoneyToken = regexp.MustCompile(`^(?:\d{1,3}(?:[ .\x{00a0}]\d{3})+|\d+)[.,]\d{2}$`)

	// context that disqualifies a money-shaped token from being a price
	reDateContext  = regexp.MustCompile(`\b\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}\b`)
	rePhoneContext = regexp.MustCompile(`\b0\d(?:[ .]\d{2}){4}\b|\+\d{2}[ .]?\d`)
	reFooterRow    = regexp.MustCompile(`(?i)\btotal\b|\bmontant\s+(?:total|d[uû])\b|\bnet\s+[àa]\s+payer\b|\bfrais\b|\bpage\s+\d+\s*/\s*\d+\b|\br[ée]capitulatif\b`)

	// pre-table header rows carry digits (invoice number, SIRET) that can
	// land in the lot-number column
	reHeaderNoiseRow = regexp.MustCompile(`(?i)\bbordereau\b|\bfacture\b|\binvoice\b|\bacqu[ée]reur\b|\bsiret\b|\btva\b`)
)

// extractLotsDefault reconstructs the lot table using the generic column
// layout: pure-digit lot number on the left, price on the right, description
// in between. Rows without a lot-start signal extend the open lot.
func extractLotsDefault(lines []geometry.Line) []Lot {
	var lots []Lot
	var open *Lot
	started := false

	for _, ln := range lines {
		if started && reFooterRow.MatchString(ln.Text) {
			break
		}
		if !started && reHeaderNoiseRow.MatchString(ln.Text) {
			continue
		}

		number, numberIdx := leftLotNumber(ln)
		price, priceIdx := rightPrice(ln)

		// A lot opens on a left-column number. Some houses never print
		// one: a priced, described row also opens a lot when none is in
		// progress, with a nil number.
		starts := number != nil || (open == nil && price != nil && priceIdx > 0)

		if !starts {
			// continuation of an open lot, or pre-table noise
			if open != nil {
				open.Description = textnorm.CollapseSpaces(open.Description + " " + ln.Text)
				if open.HammerPrice == nil && price != nil {
					open.HammerPrice = price
				}
			}
			continue
		}

		if open != nil {
			lots = appendValid(lots, *open)
		}
		started = true
		open = &Lot{
			Number:      number,
			Description: rowDescription(ln, numberIdx, priceIdx),
			HammerPrice: price,
		}
	}
	if open != nil {
		lots = appendValid(lots, *open)
	}
	return lots
}

// extractLotsDualNumber handles the layout that repeats the lot ordinal in
// two adjacent columns ("Ligne" and "Références"). Two adjacent equal
// pure-number tokens are a lot boundary regardless of column drift; unequal
// neighbours are not.
func extractLotsDualNumber(lines []geometry.Line) []Lot {
	var lots []Lot
	var open *Lot

	for _, ln := range lines {
		if open != nil && reFooterRow.MatchString(ln.Text) {
			break
		}

		pairIdx := adjacentEqualNumbers(ln.Words)
		if pairIdx < 0 {
			// a row carrying its own ordinal pair plus a price is a
			// misread lot row, not description wrap; dropping it beats
			// polluting the open lot
			if open != nil && !misreadLotRow(ln) {
				open.Description = textnorm.CollapseSpaces(open.Description + " " + ln.Text)
			}
			continue
		}

		if open != nil {
			lots = appendValid(lots, *open)
		}
		price, priceIdx := rightmostPrice(ln)
		open = &Lot{
			Number:      strPtr(ln.Words[pairIdx].Text),
			Description: wordsText(ln.Words, pairIdx+2, priceIdx),
			HammerPrice: price,
		}
	}
	if open != nil {
		lots = appendValid(lots, *open)
	}
	return lots
}

// adjacentEqualNumbers returns the index of the first of two adjacent equal
// pure-number tokens, or -1.
func adjacentEqualNumbers(words []geometry.Word) int {
	for i := 0; i+1 < len(words); i++ {
		if rePureNumber.MatchString(words[i].Text) &&
			words[i].Text == words[i+1].Text {
			return i
		}
	}
	return -1
}

// misreadLotRow reports whether a line has the shape of a lot row in the
// dual-number layout (an adjacent pure-number pair plus a price) even
// though its pair is unequal. OCR drift across the repeated-number gutter
// produces these; they must not leak into a neighbouring description.
func misreadLotRow(ln geometry.Line) bool {
	if adjacentNumberPair(ln.Words) < 0 {
		return false
	}
	_, priceIdx := rightmostPrice(ln)
	return priceIdx >= 0
}

func adjacentNumberPair(words []geometry.Word) int {
	for i := 0; i+1 < len(words); i++ {
		if rePureNumber.MatchString(words[i].Text) && rePureNumber.MatchString(words[i+1].Text) {
			return i
		}
	}
	return -1
}

// leftLotNumber accepts only pure-digit tokens in the left column. Reference
// codes like "XF5" are deliberately excluded even when left-aligned.
func leftLotNumber(ln geometry.Line) (*string, int) {
	for i, w := range ln.Words {
		if w.X0 >= numberColMax {
			break
		}
		if rePureNumber.MatchString(w.Text) {
			return strPtr(w.Text), i
		}
	}
	return nil, -1
}

// rightPrice looks for a money-shaped token in the price column, unless the
// row context (date, phone, footer keyword) disqualifies it.
func rightPrice(ln geometry.Line) (*float64, int) {
	if priceContextExcluded(ln.Text) {
		return nil, -1
	}
	for i := len(ln.Words) - 1; i >= 0; i-- {
		w := ln.Words[i]
		if w.X0 < priceColMin {
			break
		}
		if reMoneyToken.MatchString(w.Text) {
			if f, ok := textnorm.ParseAmount(w.Text); ok {
				return floatPtr(f), i
			}
		}
	}
	return nil, -1
}

// rightmostPrice is the position-free variant used by the dual-number
// strategy, where column alignment drifts too much to trust x thresholds.
func rightmostPrice(ln geometry.Line) (*float64, int) {
	if priceContextExcluded(ln.Text) {
		return nil, -1
	}
	for i := len(ln.Words) - 1; i >= 0; i-- {
		if reMoneyToken.MatchString(ln.Words[i].Text) {
			if f, ok := textnorm.ParseAmount(ln.Words[i].Text); ok {
				return floatPtr(f), i
			}
		}
	}
	return nil, -1
}

func priceContextExcluded(rowText string) bool {
	return reDateContext.MatchString(rowText) ||
		rePhoneContext.MatchString(rowText) ||
		reFooterRow.MatchString(rowText)
}

// rowDescription joins the words between the lot number and the price,
// dropping a trailing reference code ("XF5") when the house prints one.
func rowDescription(ln geometry.Line, numberIdx, priceIdx int) string {
	to := priceIdx
	if to < 0 || to > len(ln.Words) {
		to = len(ln.Words)
	}
	if to > 0 && reRefCode.MatchString(ln.Words[to-1].Text) {
		to--
	}
	return wordsText(ln.Words, numberIdx+1, to)
}

func wordsText(words []geometry.Word, from, to int) string {
	if to < 0 || to > len(words) {
		to = len(words)
	}
	if from < 0 {
		from = 0
	}
	if from >= to {
		return ""
	}
	parts := make([]string, 0, to-from)
	for _, w := range words[from:to] {
		parts = append(parts, w.Text)
	}
	return textnorm.StripRefPrefix(textnorm.CollapseSpaces(strings.Join(parts, " ")))
}

func appendValid(lots []Lot, l Lot) []Lot {
	l.Description = textnorm.CollapseSpaces(l.Description)
	if !l.Valid() {
		return lots
	}
	return append(lots, l)
}
