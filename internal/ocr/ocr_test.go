package ocr

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// fakeRunner returns canned output keyed by the last argument ("tsv" vs
// plain text runs).
type fakeRunner struct {
	text string
	tsv  string
	err  error
}

func (f fakeRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	if f.err != nil {
		return nil, []byte("boom"), f.err
	}
	if len(args) > 0 && args[len(args)-1] == "tsv" {
		return []byte(f.tsv), nil, nil
	}
	return []byte(f.text), nil, nil
}

func tsvLine(level int, left, top, w, h int, conf float64, text string) string {
	return fmt.Sprintf("%d\t1\t1\t1\t1\t1\t%d\t%d\t%d\t%d\t%.0f\t%s", level, left, top, w, h, conf, text)
}

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext"

func TestParseTSV(t *testing.T) {
	tsv := strings.Join([]string{
		tsvHeader,
		tsvLine(1, 0, 0, 1000, 1400, -1, ""),  // page row, no conf
		tsvLine(5, 50, 100, 80, 20, 90, "Commode"),
		tsvLine(5, 140, 100, 40, 20, 80, "Louis"),
		tsvLine(5, 700, 100, 60, 20, 70, "850,00"),
		tsvLine(5, 0, 0, 0, 0, 55, " "),       // whitespace token dropped
	}, "\n")

	words, conf := ParseTSV(tsv)
	if len(words) != 3 {
		t.Fatalf("got %d words, want 3", len(words))
	}
	if words[0].Text != "Commode" || words[0].X0 != 50 || words[0].Y1 != 120 {
		t.Errorf("word 0 = %+v", words[0])
	}
	if want := 0.80; conf != want {
		t.Errorf("confidence = %v, want %v", conf, want)
	}
}

func TestParseTSVEmpty(t *testing.T) {
	words, conf := ParseTSV("")
	if len(words) != 0 || conf != 0 {
		t.Errorf("ParseTSV(\"\") = (%d words, %v)", len(words), conf)
	}
}

func TestPickBest(t *testing.T) {
	cands := []Candidate{
		{Variant: "sharpen", Recognition: Recognition{Text: strings.Repeat("x", 1000), Confidence: 0.50}},
		{Variant: "threshold", Recognition: Recognition{Text: strings.Repeat("y", 1200), Confidence: 0.90}},
	}
	best, ok := PickBest(cands)
	if !ok || best.Variant != "threshold" {
		t.Errorf("PickBest = (%q, %v), want threshold (more text)", best.Variant, ok)
	}

	// text volume is capped: past the cap the confident pass wins
	capped := []Candidate{
		{Variant: "noise", Recognition: Recognition{Text: strings.Repeat("#", 5000), Confidence: 0.20}},
		{Variant: "clean", Recognition: Recognition{Text: strings.Repeat("y", 3000), Confidence: 0.90}},
	}
	best, ok = PickBest(capped)
	if !ok || best.Variant != "clean" {
		t.Errorf("PickBest = (%q, %v), want clean (length capped, confidence decides)", best.Variant, ok)
	}

	// a near-garbage pass must not win on a handful of extra bytes
	noisy := []Candidate{
		{Variant: "threshold", Recognition: Recognition{Text: strings.Repeat("#", 520), Confidence: 0.10}},
		{Variant: "sharpen", Recognition: Recognition{Text: strings.Repeat("y", 500), Confidence: 0.95}},
	}
	best, ok = PickBest(noisy)
	if !ok || best.Variant != "sharpen" {
		t.Errorf("PickBest = (%q, %v), want sharpen (confidence outweighs a sliver of text)", best.Variant, ok)
	}

	if _, ok := PickBest(nil); ok {
		t.Error("PickBest(nil) must report no candidate")
	}
}

func TestRecognizeParsesWordsAndText(t *testing.T) {
	eng, err := NewEngine(Config{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = eng.Close() }()

	eng.runner = fakeRunner{
		text: "Commode Louis  850,00\r\n\r\n\r\n",
		tsv: strings.Join([]string{
			tsvHeader,
			tsvLine(5, 50, 100, 80, 20, 90, "Commode"),
		}, "\n"),
	}

	rec, err := eng.Recognize(context.Background(), "page.png")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Text != "Commode Louis 850,00" {
		t.Errorf("text = %q (normalization applied?)", rec.Text)
	}
	if len(rec.Words) != 1 || rec.Words[0].Confidence != 0.9 {
		t.Errorf("words = %+v", rec.Words)
	}
}

func TestRasterizeRejectsUnsupportedMIME(t *testing.T) {
	eng, err := NewEngine(Config{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = eng.Close() }()

	_, cleanup, err := eng.Rasterize(context.Background(), []byte("x"), "text/plain")
	cleanup()
	if err == nil {
		t.Fatal("want error for unsupported mime type")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"a\r\nb", "a\nb"},
		{"a\t\tb", "a b"},
		{"a  b", "a b"},
		{"a\n\n\n\nb", "a\n\nb"},
		{"a \nb", "a\nb"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
