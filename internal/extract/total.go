package extract

import (
	"regexp"

	"github.com/lucverdier/lotscan/internal/geometry"
	"github.com/lucverdier/lotscan/internal/textnorm"
)

// footerZone is where invoice totals live (normalized y).
const footerZone = 0.45

var (
	reTotalKeyword  = regexp.MustCompile(`(?i)\btotal\s+(?:ttc|g[ée]n[ée]ral|bordereau|facture|invoice)\b|\bmontant\s+(?:total|d[uû])\b|\bnet\s+[àa]\s+payer\b|\btotal\b`)
	reMoneyAnywhere = regexp.MustCompile(`(?:\d{1,3}(?:[ .\x{00a0}]\d{3})+|\d+)[.,]\d{2}`)

	// last-resort whole-document scan: keyword then a number within 80 chars
	reTotalFreeText = regexp.MustCompile(`(?i)(?:total(?:\s+ttc)?|montant\s+(?:total|d[uû])|net\s+[àa]\s+payer).{0,80}?((?:\d{1,3}(?:[ .\x{00a0}]\d{3})+|\d+)[.,]\d{2})`)
)

// ExtractTotal finds the invoice grand total. Footer rows near a keyword
// win; if the keyword row carries no number the next row is checked; a
// whole-document regex is the last resort. First match wins — no voting.
func ExtractTotal(lines []geometry.Line, rawText string) *float64 {
	for i, ln := range lines {
		if ln.Y < footerZone || !reTotalKeyword.MatchString(ln.Text) {
			continue
		}
		if v := lastAmountIn(ln.Text); v != nil {
			return v
		}
		if i+1 < len(lines) {
			if v := lastAmountIn(lines[i+1].Text); v != nil {
				return v
			}
		}
	}
	return TotalFromText(rawText)
}

// TotalFromText is the text-only variant used by the fallback controller.
func TotalFromText(text string) *float64 {
	if m := reTotalFreeText.FindStringSubmatch(text); m != nil {
		if f, ok := textnorm.ParseAmount(m[1]); ok {
			return floatPtr(f)
		}
	}
	return nil
}

func lastAmountIn(text string) *float64 {
	matches := reMoneyAnywhere.FindAllString(text, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		if f, ok := textnorm.ParseAmount(matches[i]); ok {
			return floatPtr(f)
		}
	}
	return nil
}
