package extract

import (
	"testing"

	"github.com/lucverdier/lotscan/internal/geometry"
)

func headerLine(y float64, text string, x0, x1 float64) geometry.Line {
	return geometry.Line{
		Y:     y,
		Text:  text,
		Words: []geometry.Word{{Text: text, X0: x0, Y0: y, X1: x1, Y1: y + 0.01}},
	}
}

func TestExtractHeader(t *testing.T) {
	lines := []geometry.Line{
		headerLine(0.02, "MAISON RICHELIEU", 0.35, 0.65),
		headerLine(0.08, "BORDEREAU ACQUEREUR N° 4521", 0.20, 0.80),
		headerLine(0.12, "Vente du 13/07/2024", 0.30, 0.70),
		headerLine(0.50, "1 Gravure 60,00", 0.10, 0.90),
	}

	var res Result
	ExtractHeader(lines, &res)

	if res.SaleRoom == nil || *res.SaleRoom != "MAISON RICHELIEU" {
		t.Errorf("sale room = %v, want MAISON RICHELIEU", res.SaleRoom)
	}
	if res.BordereauNumber == nil || *res.BordereauNumber != "4521" {
		t.Errorf("bordereau number = %v, want 4521", res.BordereauNumber)
	}
	if res.SaleDate == nil || *res.SaleDate != "2024-07-13" {
		t.Errorf("sale date = %v, want 2024-07-13", res.SaleDate)
	}
}

func TestExtractHeaderSkipsNoiseLines(t *testing.T) {
	lines := []geometry.Line{
		headerLine(0.02, "BORDEREAU ACQUEREUR", 0.35, 0.65), // noise keyword, centered
		headerLine(0.06, "GALERIE SAINT HONORE", 0.35, 0.65),
	}
	var res Result
	ExtractHeader(lines, &res)
	if res.SaleRoom == nil || *res.SaleRoom != "GALERIE SAINT HONORE" {
		t.Errorf("sale room = %v, want GALERIE SAINT HONORE", res.SaleRoom)
	}
}

func TestExtractHeaderOffCenterLineIsNotASaleRoom(t *testing.T) {
	lines := []geometry.Line{
		headerLine(0.02, "Quelques mentions legales", 0.01, 0.20), // left margin
	}
	var res Result
	ExtractHeader(lines, &res)
	if res.SaleRoom != nil {
		t.Errorf("sale room = %q, want nil", *res.SaleRoom)
	}
}

func TestExtractHeaderNeverOverwrites(t *testing.T) {
	existing := "MAISON FIXE"
	res := Result{SaleRoom: &existing}
	ExtractHeader([]geometry.Line{headerLine(0.02, "AUTRE MAISON", 0.35, 0.65)}, &res)
	if *res.SaleRoom != "MAISON FIXE" {
		t.Errorf("sale room overwritten: %q", *res.SaleRoom)
	}
}

func TestExtractHeaderKnownSaleRoomWins(t *testing.T) {
	lines := []geometry.Line{
		headerLine(0.02, "GALERIE CENTRALE", 0.35, 0.65),
		headerLine(0.06, "Hôtel Drouot salle 4", 0.05, 0.40),
	}
	var res Result
	ExtractHeader(lines, &res)
	if res.SaleRoom == nil || *res.SaleRoom != "Hôtel Drouot" {
		t.Errorf("sale room = %v, want Hôtel Drouot (brand pattern wins outright)", res.SaleRoom)
	}
}
