package extract

import (
	"testing"

	"github.com/lucverdier/lotscan/internal/geometry"
)

func TestExtractTotalFromFooterRow(t *testing.T) {
	lines := []geometry.Line{
		headerLine(0.30, "1 Gravure 60,00", 0.10, 0.90),
		headerLine(0.80, "TOTAL TTC 1.250,00", 0.10, 0.90),
	}
	got := ExtractTotal(lines, "")
	if got == nil || *got != 1250 {
		t.Errorf("total = %v, want 1250", got)
	}
}

func TestExtractTotalKeywordRowWithoutNumber(t *testing.T) {
	lines := []geometry.Line{
		headerLine(0.78, "MONTANT TOTAL", 0.10, 0.50),
		headerLine(0.82, "970,00", 0.70, 0.90),
	}
	got := ExtractTotal(lines, "")
	if got == nil || *got != 970 {
		t.Errorf("total = %v, want 970 (next row carries the number)", got)
	}
}

func TestExtractTotalIgnoresUpperHalf(t *testing.T) {
	lines := []geometry.Line{
		// "total" keyword above the footer zone must not match the
		// row-based scan; the free-text fallback still can
		headerLine(0.10, "TOTAL 55,00", 0.10, 0.90),
	}
	got := ExtractTotal(lines, "no keyword here")
	if got != nil {
		t.Errorf("total = %v, want nil", *got)
	}
}

func TestTotalFromTextWindow(t *testing.T) {
	got := TotalFromText("frais inclus\nTOTAL DU BORDEREAU ......... 2 430,00 EUR")
	if got == nil || *got != 2430 {
		t.Errorf("total = %v, want 2430", got)
	}
	if TotalFromText("rien d'utile ici") != nil {
		t.Error("want nil when no keyword-number window exists")
	}
}
