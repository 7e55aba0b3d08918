package textnorm

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"1.200,00", 1200.00, true},
		{"850", 850, true},
		{"abc", 0, false},
		{"", 0, false},
		{"60,00", 60.00, true},
		{"60.00", 60.00, true},
		{"1 250,50", 1250.50, true},
		{"2.500,00 €", 2500.00, true},
		{"12 000,00", 12000.00, true},
		{"1,200,300", 1200300, true},
		{"120 EUR", 120, true},
		{"-", 0, false},
		{"XF5", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseAmount(tc.input)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseAmount(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"a  b", "a b"},
		{"  a\tb\n c ", "a b c"},
		{"a b", "a b"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := CollapseSpaces(tc.input); got != tc.want {
			t.Errorf("CollapseSpaces(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestStripRefPrefix(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Réf. 123 tableau", "123 tableau"},
		{"N° 8", "8"},
		{"Commode Louis XV", "Commode Louis XV"},
		{"no: 14 gravure", "14 gravure"},
	}
	for _, tc := range tests {
		if got := StripRefPrefix(tc.input); got != tc.want {
			t.Errorf("StripRefPrefix(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
