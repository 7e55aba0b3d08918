package textnorm

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reCurrency  = regexp.MustCompile(`(?i)[€$£]|eur|euros?|chf|usd|gbp|ttc|ht\b`)
	reAmountish = regexp.MustCompile(`^-?[\d.,]+$`)
)

// ParseAmount converts a raw OCR token like "1.200,00 €" into a float.
// When both separators are present, "." is the thousands separator and ","
// the decimal one; a lone "," is decimal. Returns ok=false on anything
// non-numeric; it never guesses.
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = reCurrency.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" || !reAmountish.MatchString(s) {
		return 0, false
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case hasComma:
		if strings.Count(s, ",") > 1 {
			// "1,200,300" style: commas are thousands separators
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case hasDot:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
