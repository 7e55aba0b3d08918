package extract

import (
	"testing"

	"github.com/lucverdier/lotscan/internal/geometry"
)

// row builds a line of words evenly spread between the given x positions.
func row(y float64, entries ...[3]interface{}) geometry.Line {
	var words []geometry.Word
	var text string
	for i, e := range entries {
		t := e[0].(string)
		x0 := e[1].(float64)
		x1 := e[2].(float64)
		words = append(words, geometry.Word{Text: t, X0: x0, Y0: y, X1: x1, Y1: y + 0.01})
		if i > 0 {
			text += " "
		}
		text += t
	}
	return geometry.Line{Y: y, Words: words, Text: text}
}

func w(text string, x0, x1 float64) [3]interface{} {
	return [3]interface{}{text, x0, x1}
}

func TestExtractLotsDefault(t *testing.T) {
	lines := []geometry.Line{
		row(0.30, w("1", 0.05, 0.08), w("Commode", 0.25, 0.35), w("Louis", 0.36, 0.42), w("XV", 0.43, 0.46), w("850,00", 0.80, 0.90)),
		row(0.33, w("et", 0.25, 0.28), w("son", 0.29, 0.33), w("miroir", 0.34, 0.40)),
		row(0.36, w("2", 0.05, 0.08), w("Paire", 0.25, 0.30), w("de", 0.31, 0.33), w("vases", 0.34, 0.40), w("120,00", 0.80, 0.90)),
		row(0.60, w("TOTAL", 0.30, 0.40), w("970,00", 0.80, 0.90)),
	}

	lots := extractLotsDefault(lines)
	if len(lots) != 2 {
		t.Fatalf("got %d lots, want 2: %+v", len(lots), lots)
	}
	if lots[0].Number == nil || *lots[0].Number != "1" {
		t.Errorf("lot 0 number = %v, want 1", lots[0].Number)
	}
	if lots[0].Description != "Commode Louis XV et son miroir" {
		t.Errorf("lot 0 description = %q (continuation not appended?)", lots[0].Description)
	}
	if lots[0].HammerPrice == nil || *lots[0].HammerPrice != 850 {
		t.Errorf("lot 0 price = %v, want 850", lots[0].HammerPrice)
	}
	if lots[1].Description != "Paire de vases" {
		t.Errorf("lot 1 description = %q", lots[1].Description)
	}
}

func TestReferenceCodeIsNotALotNumber(t *testing.T) {
	// "XF5" sits in the left column but must never become a lot number
	lines := []geometry.Line{
		row(0.30, w("1", 0.05, 0.08), w("Gravure", 0.25, 0.35), w("ancienne", 0.36, 0.45), w("60,00", 0.80, 0.90)),
		row(0.34, w("XF5", 0.05, 0.10), w("Commode", 0.25, 0.35), w("Louis", 0.36, 0.42), w("XV", 0.43, 0.46), w("850,00", 0.80, 0.90)),
	}

	lots := extractLotsDefault(lines)
	if len(lots) != 1 {
		t.Fatalf("got %d lots, want 1 (XF5 row is a continuation)", len(lots))
	}
	// the XF5 row extends lot 1 rather than opening a bogus lot
	if lots[0].Number == nil || *lots[0].Number != "1" {
		t.Errorf("number = %v, want 1", lots[0].Number)
	}
}

func TestHeaderRowDigitsDoNotOpenALot(t *testing.T) {
	// the invoice number drifts into the lot-number column; the row must
	// be skipped, not turned into lot 4521
	lines := []geometry.Line{
		row(0.05, w("Bordereau", 0.02, 0.12), w("n°", 0.13, 0.15), w("4521", 0.16, 0.19)),
		row(0.30, w("1", 0.05, 0.08), w("Gravure", 0.25, 0.35), w("ancienne", 0.36, 0.45), w("60,00", 0.80, 0.90)),
	}
	lots := extractLotsDefault(lines)
	if len(lots) != 1 {
		t.Fatalf("got %d lots, want 1: %+v", len(lots), lots)
	}
	if *lots[0].Number != "1" {
		t.Errorf("number = %q, want 1", *lots[0].Number)
	}
}

func TestExtractLotsDualNumber(t *testing.T) {
	lines := []geometry.Line{
		row(0.25, w("8", 0.05, 0.07), w("8", 0.12, 0.14), w("Service", 0.25, 0.33), w("à", 0.34, 0.35), w("thé", 0.36, 0.40), w("en", 0.41, 0.43), w("argent", 0.44, 0.50), w("60,00", 0.78, 0.88)),
		// wrapped description continues the open lot
		row(0.28, w("et", 0.25, 0.28), w("son", 0.29, 0.33), w("plateau", 0.34, 0.42)),
		// unequal pair with its own price: a misread lot row, not wrap text
		row(0.32, w("9", 0.05, 0.07), w("10", 0.12, 0.15), w("Pendule", 0.25, 0.33), w("dorée", 0.34, 0.40), w("45,00", 0.78, 0.88)),
	}

	lots := extractLotsDualNumber(lines)
	if len(lots) != 1 {
		t.Fatalf("got %d lots, want 1 (unequal pair must not open a lot)", len(lots))
	}
	l := lots[0]
	if l.Number == nil || *l.Number != "8" {
		t.Errorf("number = %v, want 8", l.Number)
	}
	if l.Description != "Service à thé en argent et son plateau" {
		t.Errorf("description = %q, want %q", l.Description, "Service à thé en argent et son plateau")
	}
	if l.HammerPrice == nil || *l.HammerPrice != 60 {
		t.Errorf("price = %v, want 60", l.HammerPrice)
	}
}

func TestLotValidityFilter(t *testing.T) {
	zero := 0.0
	if (Lot{Description: "", HammerPrice: &zero}).Valid() {
		t.Error("empty description + zero price must be dropped")
	}
	long := "Important tableau école française du XIXe"
	if !(Lot{Description: long, HammerPrice: &zero}).Valid() {
		t.Error("zero price with a real description must be kept")
	}
}

func TestPriceRejectedInDateContext(t *testing.T) {
	// a zip-code-free date row: the money-shaped token must not be a price
	lines := []geometry.Line{
		row(0.30, w("1", 0.05, 0.08), w("Vente", 0.25, 0.32), w("du", 0.33, 0.36), w("12/05/2024", 0.40, 0.55), w("75,00", 0.80, 0.90)),
	}
	lots := extractLotsDefault(lines)
	if len(lots) != 1 {
		t.Fatalf("got %d lots, want 1", len(lots))
	}
	if lots[0].HammerPrice != nil {
		t.Errorf("price = %v, want nil in date context", *lots[0].HammerPrice)
	}
}

func TestSelectStrategy(t *testing.T) {
	dualByHeader := Document{Text: "Ligne Références Description Adjudication"}
	if got := SelectStrategy(dualByHeader).Name; got != "dual-number" {
		t.Errorf("header phrase: strategy = %q, want dual-number", got)
	}

	// generic inference: two rows with repeated ordinals, no header phrase
	dualByShape := Document{Lines: []geometry.Line{
		row(0.2, w("3", 0.05, 0.07), w("3", 0.12, 0.14), w("Vase", 0.3, 0.4)),
		row(0.3, w("4", 0.05, 0.07), w("4", 0.12, 0.14), w("Plat", 0.3, 0.4)),
	}}
	if got := SelectStrategy(dualByShape).Name; got != "dual-number" {
		t.Errorf("repeated ordinals: strategy = %q, want dual-number", got)
	}

	plain := Document{Text: "BORDEREAU ACQUEREUR N° 123"}
	if got := SelectStrategy(plain).Name; got != "default" {
		t.Errorf("plain document: strategy = %q, want default", got)
	}
}

func TestDedupLots(t *testing.T) {
	n := "8"
	lots := []Lot{
		{Number: &n, Description: "Service à thé en argent"},
		{Number: &n, Description: "Service à thé en argent"},
		{Description: "Pendule dorée"},
	}
	got := DedupLots(lots)
	if len(got) != 2 {
		t.Errorf("DedupLots: got %d lots, want 2", len(got))
	}
}
