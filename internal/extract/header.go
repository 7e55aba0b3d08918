package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/lucverdier/lotscan/internal/geometry"
	"github.com/lucverdier/lotscan/internal/textnorm"
)

// headerZone limits header scanning to the top of page 1.
const headerZone = 0.30

var (
	// high precision first: this phrasing is unambiguous when present
	reBordereauAcquereur = regexp.MustCompile(`(?i)BORDEREAU\s+ACQU[ÉE]REUR\s+N[°ºO]?\s*[:.]?\s*(\d{1,10})`)
	reGenericInvoiceNo   = regexp.MustCompile(`(?i)\b(?:facture|invoice|bordereau)\s*(?:n[°º]|no\.?|num[ée]ro|#)?\s*[:.]?\s*(\d{1,10})\b`)
	reSaleReference      = regexp.MustCompile(`(?i)\b(?:vente|sale)\s*(?:n[°º]|no\.?|#)\s*[:.]?\s*([A-Z0-9][A-Z0-9/-]{0,14})\b`)
	reDateKeyword        = regexp.MustCompile(`(?i)\bdate\b|\bvente\s+du\b|\bdated\b|\bsale\s+of\b`)

	// two-token names of well-known salerooms win outright over the
	// candidate heuristic
	reKnownSaleRoom = regexp.MustCompile(`(?i)\b(h[ôo]tel\s+drouot|drouot\s+estimations|encheres\s+[a-zéèê]+|ench[èe]res\s+[a-zéèê]+|artcurial\s+[a-z]+|rossini\s+ench[èe]res|tajan\s+[a-z]+|aguttes\s+[a-z]+|millon\s+[a-z]+)\b`)

	// lines containing these are never a saleroom name
	saleRoomNoise = []string{
		"bordereau", "facture", "invoice", "total", "adjudication",
		"acquereur", "acquéreur", "date", "vente du", "page", "tva",
		"siret", "tel", "fax", "www", "@",
	}
)

// ExtractHeader scans the top region of page 1 for the saleroom name, the
// bordereau/invoice number, the sale reference and the sale date. Unmatched
// fields stay nil; absence is meaningful to the fallback controller.
func ExtractHeader(lines []geometry.Line, res *Result) {
	top := topLines(lines)

	if res.SaleRoom == nil {
		res.SaleRoom = findSaleRoom(top)
	}
	if res.BordereauNumber == nil {
		res.BordereauNumber = findBordereauNumber(top)
	}
	if res.SaleReference == nil {
		res.SaleReference = findSaleReference(top)
	}
	if res.SaleDate == nil {
		res.SaleDate = findSaleDate(lines, top)
	}
}

func topLines(lines []geometry.Line) []geometry.Line {
	var top []geometry.Line
	for _, ln := range lines {
		if ln.Y <= headerZone {
			top = append(top, ln)
		}
	}
	return top
}

func findSaleRoom(top []geometry.Line) *string {
	for _, ln := range top {
		if m := reKnownSaleRoom.FindString(ln.Text); m != "" {
			return strPtr(textnorm.CollapseSpaces(m))
		}
	}
	for _, ln := range top {
		if isSaleRoomCandidate(ln) {
			return strPtr(textnorm.CollapseSpaces(ln.Text))
		}
	}
	return nil
}

// isSaleRoomCandidate filters header lines down to the plausible name rows:
// letter-heavy, not too long, horizontally centered, free of noise keywords.
func isSaleRoomCandidate(ln geometry.Line) bool {
	text := textnorm.CollapseSpaces(ln.Text)
	if len(text) > 80 {
		return false
	}
	letters := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < 6 {
		return false
	}
	if len(ln.Words) > 0 {
		center := (ln.Words[0].X0 + ln.Words[len(ln.Words)-1].X1) / 2
		if center < 0.30 || center > 0.70 {
			return false
		}
	}
	lower := strings.ToLower(text)
	for _, kw := range saleRoomNoise {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

func findBordereauNumber(top []geometry.Line) *string {
	for _, ln := range top {
		if m := reBordereauAcquereur.FindStringSubmatch(ln.Text); m != nil {
			return strPtr(m[1])
		}
	}
	for _, ln := range top {
		if m := reGenericInvoiceNo.FindStringSubmatch(ln.Text); m != nil {
			return strPtr(m[1])
		}
	}
	return nil
}

func findSaleReference(top []geometry.Line) *string {
	for _, ln := range top {
		if m := reSaleReference.FindStringSubmatch(ln.Text); m != nil {
			return strPtr(m[1])
		}
	}
	return nil
}

// findSaleDate prefers a date on a keyword-bearing header line over a bare
// date anywhere on the page. The month-first hint comes from English-style
// phrasing near the date.
func findSaleDate(all, top []geometry.Line) *string {
	for _, ln := range top {
		if !reDateKeyword.MatchString(ln.Text) {
			continue
		}
		if iso, ok := textnorm.ParseDate(ln.Text, textnorm.DeriveDateOrder(ln.Text)); ok {
			return strPtr(iso)
		}
	}
	for _, ln := range all {
		if iso, ok := textnorm.ParseDate(ln.Text, textnorm.DeriveDateOrder(ln.Text)); ok {
			return strPtr(iso)
		}
	}
	return nil
}
