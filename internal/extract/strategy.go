package extract

import (
	"regexp"

	"github.com/lucverdier/lotscan/internal/geometry"
)

// Document bundles everything a strategy may inspect when deciding whether
// it applies: the row-clustered lines of page 1 and the raw OCR text.
type Document struct {
	Lines []geometry.Line
	Text  string
}

// Strategy is one house-specific layout: a detection predicate plus the
// header and lot extractors for it. Strategies are tried in registration
// order; the last one is the generic default and always matches.
type Strategy struct {
	Name          string
	Detect        func(doc Document) bool
	ExtractHeader func(lines []geometry.Line, res *Result)
	ExtractLots   func(lines []geometry.Line) []Lot
}

var (
	// header phrase printed by houses that repeat the lot ordinal in two
	// adjacent columns
	reDualHeader = regexp.MustCompile(`(?i)ligne\s+r[ée]f[ée]rences?\s+description\s+adjudication`)
)

// strategies is the ordered registry. Adding a house means adding an entry
// here, not threading new conditionals through the extractor.
var strategies = []Strategy{
	{
		Name:          "dual-number",
		Detect:        detectDualNumber,
		ExtractHeader: ExtractHeader,
		ExtractLots:   extractLotsDualNumber,
	},
	{
		Name:          "default",
		Detect:        func(Document) bool { return true },
		ExtractHeader: ExtractHeader,
		ExtractLots:   extractLotsDefault,
	},
}

// SelectStrategy picks the parsing strategy for a whole document, once.
func SelectStrategy(doc Document) Strategy {
	for _, s := range strategies {
		if s.Detect(doc) {
			return s
		}
	}
	return strategies[len(strategies)-1]
}

// detectDualNumber fires on the known header phrase, or generically when at
// least two rows start with a repeated ordinal. The generic signal makes the
// layout self-identifying instead of keyed to one house name.
func detectDualNumber(doc Document) bool {
	if reDualHeader.MatchString(doc.Text) {
		return true
	}
	for _, ln := range doc.Lines {
		if reDualHeader.MatchString(ln.Text) {
			return true
		}
	}
	pairs := 0
	for _, ln := range doc.Lines {
		if adjacentEqualNumbers(ln.Words) >= 0 {
			pairs++
			if pairs >= 2 {
				return true
			}
		}
	}
	return false
}
