package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/lucverdier/lotscan/internal/geometry"
	"github.com/lucverdier/lotscan/internal/ocr"
)

type fakeOCR struct {
	pages      []string
	rasterErr  error
	recognize  map[string]ocr.Recognition
	pageErrs   map[string]error
	cleanups   int
}

func (f *fakeOCR) Rasterize(_ context.Context, _ []byte, _ string) ([]string, func(), error) {
	cleanup := func() { f.cleanups++ }
	if f.rasterErr != nil {
		return nil, cleanup, f.rasterErr
	}
	return f.pages, cleanup, nil
}

func (f *fakeOCR) RecognizePage(_ context.Context, path string) (ocr.Recognition, error) {
	if err, ok := f.pageErrs[path]; ok {
		return ocr.Recognition{}, err
	}
	return f.recognize[path], nil
}

func pw(text string, x0, y0, x1, y1 float64) geometry.Word {
	return geometry.Word{Text: text, X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// bordereauWords is a one-page scan: saleroom, invoice number, sale date,
// one lot row and a total row, in pixel coordinates.
func bordereauWords() []geometry.Word {
	return []geometry.Word{
		pw("Hôtel", 300, 50, 350, 70), pw("Drouot", 355, 50, 420, 70),
		pw("Bordereau", 40, 100, 160, 120), pw("n°", 165, 100, 190, 120), pw("4521", 195, 100, 250, 120),
		pw("Vente", 40, 150, 100, 170), pw("du", 105, 150, 125, 170), pw("13/07/2024", 130, 150, 260, 170),
		pw("12", 40, 600, 70, 620), pw("Commode", 200, 600, 300, 620), pw("Louis", 305, 600, 350, 620), pw("XV", 355, 600, 380, 620), pw("850,00", 900, 600, 960, 620),
		pw("TOTAL", 40, 1290, 150, 1310), pw("850,00", 900, 1290, 960, 1310),
	}
}

func TestExtractFullDocument(t *testing.T) {
	f := &fakeOCR{
		pages: []string{"p1"},
		recognize: map[string]ocr.Recognition{
			"p1": {
				Text:       "Hôtel Drouot\nBordereau n° 4521\nVente du 13/07/2024\n12 Commode Louis XV 850,00\nTOTAL 850,00",
				Confidence: 0.9,
				Words:      bordereauWords(),
			},
		},
	}
	x := New(f, 0, nil)

	out, err := x.Extract(context.Background(), []byte("pdf"), "application/pdf")
	if err != nil {
		t.Fatal(err)
	}
	if f.cleanups != 1 {
		t.Errorf("cleanup called %d times, want 1", f.cleanups)
	}
	res := out.Result
	if res.SaleRoom == nil || *res.SaleRoom != "Hôtel Drouot" {
		t.Errorf("sale room = %v", res.SaleRoom)
	}
	if res.BordereauNumber == nil || *res.BordereauNumber != "4521" {
		t.Errorf("bordereau number = %v", res.BordereauNumber)
	}
	if res.SaleDate == nil || *res.SaleDate != "2024-07-13" {
		t.Errorf("sale date = %v", res.SaleDate)
	}
	if res.Total == nil || *res.Total != 850 {
		t.Errorf("total = %v", res.Total)
	}
	if len(res.Lots) != 1 {
		t.Fatalf("got %d lots, want 1: %+v", len(res.Lots), res.Lots)
	}
	l := res.Lots[0]
	if l.Number == nil || *l.Number != "12" || l.Description != "Commode Louis XV" {
		t.Errorf("lot = %+v", l)
	}
	if l.HammerPrice == nil || *l.HammerPrice != 850 {
		t.Errorf("hammer price = %v", l.HammerPrice)
	}
	if out.Pages != 1 || out.Confidence != 0.9 {
		t.Errorf("pages=%d confidence=%v", out.Pages, out.Confidence)
	}
}

func TestExtractSkipsUnreadablePage(t *testing.T) {
	f := &fakeOCR{
		pages:    []string{"p1", "p2"},
		pageErrs: map[string]error{"p1": errors.New("timeout")},
		recognize: map[string]ocr.Recognition{
			"p2": {Text: "12 Commode Louis XV 850,00", Confidence: 0.8},
		},
	}
	x := New(f, 0, nil)

	out, err := x.Extract(context.Background(), nil, "application/pdf")
	if err != nil {
		t.Fatal(err)
	}
	if out.Pages != 2 {
		t.Errorf("pages = %d, want 2", out.Pages)
	}
	// page 2 has no word geometry, so the text fallback supplies the lot
	if len(out.Result.Lots) != 1 {
		t.Fatalf("got %d lots, want 1: %+v", len(out.Result.Lots), out.Result.Lots)
	}
}

func TestExtractAllPagesUnreadable(t *testing.T) {
	f := &fakeOCR{
		pages:    []string{"p1"},
		pageErrs: map[string]error{"p1": errors.New("boom")},
	}
	x := New(f, 0, nil)

	if _, err := x.Extract(context.Background(), nil, "application/pdf"); err == nil {
		t.Fatal("want error when no page is readable")
	}
}

func TestExtractRasterFailure(t *testing.T) {
	rerr := errors.New("bad pdf")
	f := &fakeOCR{rasterErr: rerr}
	x := New(f, 0, nil)

	_, err := x.Extract(context.Background(), nil, "application/pdf")
	if !errors.Is(err, rerr) {
		t.Fatalf("err = %v, want %v", err, rerr)
	}
	if f.cleanups != 1 {
		t.Errorf("cleanup called %d times, want 1", f.cleanups)
	}
}

func TestExtractTextOnlyFallback(t *testing.T) {
	// OCR produced text but no usable word boxes: the line grammars carry
	// the whole extraction
	text := "Hôtel Drouot\n" +
		"Bordereau n° 77\n" +
		"Vente du 13/07/2024\n" +
		"Commode Louis XV XF5 850,00\n" +
		"TOTAL : 850,00"
	f := &fakeOCR{
		pages:     []string{"p1"},
		recognize: map[string]ocr.Recognition{"p1": {Text: text, Confidence: 0.4}},
	}
	x := New(f, 0, nil)

	out, err := x.Extract(context.Background(), nil, "image/png")
	if err != nil {
		t.Fatal(err)
	}
	res := out.Result
	if res.BordereauNumber == nil || *res.BordereauNumber != "77" {
		t.Errorf("bordereau number = %v", res.BordereauNumber)
	}
	if len(res.Lots) != 1 {
		t.Fatalf("got %d lots, want 1: %+v", len(res.Lots), res.Lots)
	}
	l := res.Lots[0]
	if l.Number != nil {
		t.Errorf("reference code leaked into lot number: %q", *l.Number)
	}
	if l.Description != "Commode Louis XV" {
		t.Errorf("description = %q", l.Description)
	}
	if res.Total == nil || *res.Total != 850 {
		t.Errorf("total = %v", res.Total)
	}
}
