package extract

import (
	"regexp"
	"strings"

	"github.com/lucverdier/lotscan/internal/textnorm"
)

// Line-text grammars for the fallback path. These re-derive the table state
// machine from whitespace-joined OCR lines when word geometry is missing or
// produced nothing.
var (
	// FR layout: "<description> <REF> <price>" — the alphanumeric REF is
	// recognized so it never leaks into the lot number
	reLotLineFR = regexp.MustCompile(`^(.{3,}?)\s+([A-Z]{1,3}\d{1,4})\s+((?:\d{1,3}(?:[ .\x{00a0}]\d{3})+|\d+)[.,]\d{2})\s*$`)
	// EN layout: "<num> <description> <price>"
	reLotLineEN = regexp.MustCompile(`^(\d{1,4})\s+(.{3,}?)\s+((?:\d{1,3}(?:[ .\x{00a0}]\d{3})+|\d+)[.,]\d{2})\s*$`)
	// dual-ordinal free-text signature: two adjacent identical short
	// integers within a bounded look-back window before a decimal price
	reLotLineDual = regexp.MustCompile(`\b(\d{1,4})\s+(\d{1,4})\b(.{0,200}?)((?:\d{1,3}(?:[ .\x{00a0}]\d{3})+|\d+)[.,]\d{2})`)
)

// ExtractFromText re-runs the whole extraction against raw OCR text. It is
// used when geometry produced no words, or as the gap-filling pass after
// page aggregation.
func ExtractFromText(text string) Result {
	var res Result
	headerFromText(text, &res)
	res.Lots = DedupLots(LotsFromText(text))
	res.Total = TotalFromText(text)
	return res
}

// LotsFromText runs the line-text grammars over whitespace-joined lines.
func LotsFromText(text string) []Lot {
	lines := strings.Split(text, "\n")

	if dualSignature(text) {
		if lots := lotsFromDualText(lines); len(lots) > 0 {
			return lots
		}
	}

	var lots []Lot
	var open *Lot
	for _, raw := range lines {
		line := textnorm.CollapseSpaces(raw)
		if line == "" {
			continue
		}
		if open != nil && reFooterRow.MatchString(line) {
			break
		}

		if m := reLotLineEN.FindStringSubmatch(line); m != nil && !priceContextExcluded(line) {
			if open != nil {
				lots = appendValid(lots, *open)
			}
			price, _ := textnorm.ParseAmount(m[3])
			open = &Lot{
				Number:      strPtr(m[1]),
				Description: textnorm.StripRefPrefix(m[2]),
				HammerPrice: floatPtr(price),
			}
			continue
		}
		if m := reLotLineFR.FindStringSubmatch(line); m != nil && !priceContextExcluded(line) {
			if open != nil {
				lots = appendValid(lots, *open)
			}
			price, _ := textnorm.ParseAmount(m[3])
			open = &Lot{
				// m[2] is a reference code, never a lot number
				Number:      nil,
				Description: textnorm.StripRefPrefix(m[1]),
				HammerPrice: floatPtr(price),
			}
			continue
		}
		if open != nil {
			open.Description = textnorm.CollapseSpaces(open.Description + " " + line)
		}
	}
	if open != nil {
		lots = appendValid(lots, *open)
	}
	return lots
}

// dualSignature reports whether the free text carries the repeated-ordinal
// layout: at least two spots where adjacent equal integers precede a price.
func dualSignature(text string) bool {
	count := 0
	for _, m := range reLotLineDual.FindAllStringSubmatch(text, -1) {
		if m[1] == m[2] && !priceContextExcluded(m[0]) {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

func lotsFromDualText(lines []string) []Lot {
	var lots []Lot
	for _, raw := range lines {
		line := textnorm.CollapseSpaces(raw)
		if line == "" {
			continue
		}
		if len(lots) > 0 && reFooterRow.MatchString(line) {
			break
		}
		m := reLotLineDual.FindStringSubmatch(line)
		if m == nil || m[1] != m[2] || priceContextExcluded(line) {
			continue
		}
		price, _ := textnorm.ParseAmount(m[4])
		lots = appendValid(lots, Lot{
			Number:      strPtr(m[1]),
			Description: textnorm.StripRefPrefix(textnorm.CollapseSpaces(m[3])),
			HammerPrice: floatPtr(price),
		})
	}
	return lots
}

// headerFromText fills header fields from raw text, used when no geometry
// is available for page 1.
func headerFromText(text string, res *Result) {
	if res.BordereauNumber == nil {
		if m := reBordereauAcquereur.FindStringSubmatch(text); m != nil {
			res.BordereauNumber = strPtr(m[1])
		} else if m := reGenericInvoiceNo.FindStringSubmatch(text); m != nil {
			res.BordereauNumber = strPtr(m[1])
		}
	}
	if res.SaleReference == nil {
		if m := reSaleReference.FindStringSubmatch(text); m != nil {
			res.SaleReference = strPtr(m[1])
		}
	}
	if res.SaleRoom == nil {
		if m := reKnownSaleRoom.FindString(text); m != "" {
			res.SaleRoom = strPtr(textnorm.CollapseSpaces(m))
		}
	}
	if res.SaleDate == nil {
		order := textnorm.DeriveDateOrder(text)
		for _, line := range strings.Split(text, "\n") {
			if !reDateKeyword.MatchString(line) {
				continue
			}
			if iso, ok := textnorm.ParseDate(line, order); ok {
				res.SaleDate = strPtr(iso)
				break
			}
		}
		if res.SaleDate == nil {
			if iso, ok := textnorm.ParseDate(text, order); ok {
				res.SaleDate = strPtr(iso)
			}
		}
	}
}
