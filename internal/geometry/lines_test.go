package geometry

import "testing"

func word(text string, x0, y0, x1, y1 float64) Word {
	return Word{Text: text, X0: x0, Y0: y0, X1: x1, Y1: y1}
}

func TestBuildLinesClustersRows(t *testing.T) {
	words := []Word{
		word("droite", 600, 102, 700, 120), // same row as "gauche", out of order
		word("gauche", 50, 100, 150, 120),
		word("dessous", 50, 300, 200, 320),
		word("haut", 50, 0, 100, 20),
		word("bas", 50, 980, 100, 1000),
	}

	lines := BuildLines(words)
	if len(lines) != 4 {
		t.Fatalf("BuildLines: got %d lines, want 4", len(lines))
	}
	if lines[0].Text != "haut" {
		t.Errorf("first line = %q, want %q", lines[0].Text, "haut")
	}
	if lines[1].Text != "gauche droite" {
		t.Errorf("second line = %q, want %q (left-to-right order)", lines[1].Text, "gauche droite")
	}
	if lines[3].Text != "bas" {
		t.Errorf("last line = %q, want %q", lines[3].Text, "bas")
	}
}

func TestBuildLinesNormalizes(t *testing.T) {
	// same layout at 2x resolution must produce identical normalized output
	small := []Word{
		word("a", 0, 0, 10, 10),
		word("b", 90, 0, 100, 10),
		word("c", 0, 190, 10, 200),
	}
	big := make([]Word, len(small))
	for i, w := range small {
		big[i] = word(w.Text, w.X0*2, w.Y0*2, w.X1*2, w.Y1*2)
	}

	ls, lb := BuildLines(small), BuildLines(big)
	if len(ls) != len(lb) {
		t.Fatalf("line counts differ: %d vs %d", len(ls), len(lb))
	}
	for i := range ls {
		if len(ls[i].Words) != len(lb[i].Words) {
			t.Fatalf("line %d word counts differ", i)
		}
		for j := range ls[i].Words {
			if ls[i].Words[j].X0 != lb[i].Words[j].X0 || ls[i].Words[j].Y0 != lb[i].Words[j].Y0 {
				t.Errorf("line %d word %d: normalized coords differ across resolutions", i, j)
			}
		}
	}
}

func TestBuildLinesEmpty(t *testing.T) {
	if got := BuildLines(nil); got != nil {
		t.Errorf("BuildLines(nil) = %v, want nil", got)
	}
}
