package extract

import "testing"

func TestLotsFromTextFRGrammar(t *testing.T) {
	text := "MAISON DE VENTES\n" +
		"Commode Louis XV XF5 850,00\n" +
		"Paire de chenets BR12 120,00\n" +
		"TOTAL 970,00\n"

	lots := LotsFromText(text)
	if len(lots) != 2 {
		t.Fatalf("got %d lots, want 2: %+v", len(lots), lots)
	}
	if lots[0].Number != nil {
		t.Errorf("number = %q, want nil: a reference code is not a lot number", *lots[0].Number)
	}
	if lots[0].Description != "Commode Louis XV" {
		t.Errorf("description = %q, want %q", lots[0].Description, "Commode Louis XV")
	}
	if lots[0].HammerPrice == nil || *lots[0].HammerPrice != 850 {
		t.Errorf("price = %v, want 850", lots[0].HammerPrice)
	}
}

func TestLotsFromTextENGrammar(t *testing.T) {
	text := "12 Victorian silver teapot 260,00\n" +
		"13 Georgian side table 1.150,00\n"

	lots := LotsFromText(text)
	if len(lots) != 2 {
		t.Fatalf("got %d lots, want 2: %+v", len(lots), lots)
	}
	if lots[0].Number == nil || *lots[0].Number != "12" {
		t.Errorf("number = %v, want 12", lots[0].Number)
	}
	if lots[1].HammerPrice == nil || *lots[1].HammerPrice != 1150 {
		t.Errorf("price = %v, want 1150", lots[1].HammerPrice)
	}
}

func TestLotsFromTextDualSignature(t *testing.T) {
	text := "Ligne Références Description Adjudication\n" +
		"8 8 Service à thé en argent 60,00\n" +
		"9 9 Pendule dorée 45,00\n" +
		"8 9 pas un lot 99,00\n"

	lots := LotsFromText(text)
	if len(lots) != 2 {
		t.Fatalf("got %d lots, want 2 (unequal pair must not match): %+v", len(lots), lots)
	}
	if lots[0].Number == nil || *lots[0].Number != "8" {
		t.Errorf("number = %v, want 8", lots[0].Number)
	}
	if lots[0].Description != "Service à thé en argent" {
		t.Errorf("description = %q, want %q", lots[0].Description, "Service à thé en argent")
	}
	if lots[0].HammerPrice == nil || *lots[0].HammerPrice != 60 {
		t.Errorf("price = %v, want 60", lots[0].HammerPrice)
	}
}

func TestLotsFromTextRejectsDateRows(t *testing.T) {
	text := "Vente du 12/05/2024 75,00\n"
	if lots := LotsFromText(text); len(lots) != 0 {
		t.Errorf("date row produced lots: %+v", lots)
	}
}

func TestMergeFillsOnlyGaps(t *testing.T) {
	total := 120.0
	wrongTotal := 0.0
	date := "2024-05-01"

	dst := Result{Total: &total}
	src := Result{Total: &wrongTotal, SaleDate: &date}
	Merge(&dst, src)

	if dst.Total == nil || *dst.Total != 120 {
		t.Errorf("total = %v, want 120: fallback must never overwrite", dst.Total)
	}
	if dst.SaleDate == nil || *dst.SaleDate != date {
		t.Errorf("sale date = %v, want %q", dst.SaleDate, date)
	}
}

func TestExtractFromTextHeaderFields(t *testing.T) {
	text := "HOTEL DROUOT\n" +
		"BORDEREAU ACQUEREUR N° 4521\n" +
		"Vente du 13/07/2024\n" +
		"1 Gravure ancienne 60,00\n" +
		"TOTAL TTC 60,00\n"

	res := ExtractFromText(text)
	if res.BordereauNumber == nil || *res.BordereauNumber != "4521" {
		t.Errorf("bordereau number = %v, want 4521", res.BordereauNumber)
	}
	if res.SaleDate == nil || *res.SaleDate != "2024-07-13" {
		t.Errorf("sale date = %v, want 2024-07-13", res.SaleDate)
	}
	if res.Total == nil || *res.Total != 60 {
		t.Errorf("total = %v, want 60", res.Total)
	}
	if len(res.Lots) != 1 {
		t.Fatalf("got %d lots, want 1", len(res.Lots))
	}
}

func TestExtractFromTextAmbiguousDateStaysUnset(t *testing.T) {
	text := "Vente du 05/07/2024\n"
	res := ExtractFromText(text)
	if res.SaleDate != nil {
		t.Errorf("sale date = %q, want unset: ambiguous day/month must not be guessed", *res.SaleDate)
	}
}
