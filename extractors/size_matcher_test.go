package extractors

import "testing"

// TestMatchSize verifies the raw token selected for a range of operator
// descriptions, including the no-match outcome.
func TestMatchSize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"month range", "casaco menina 4-8 meses", "4-8 meses", true},
		{"month range compact", "body 4/8m bebé", "4/8m", true},
		{"single month", "babygrow 6 meses", "6 meses", true},
		{"year range", "calças 6-8 anos", "6-8 anos", true},
		{"single year", "6 anos unissexo", "6 anos", true},
		{"single letter", "vestido M senhora", "m", true},
		{"letter range", "camisola S-M 10", "s-m", true},
		{"letter range spelled", "camisola S a M", "s a m", true},
		{"tam marker number", "blusa tam. 38", "tam. 38", true},
		{"tam marker letter", "tamanho: s", "tamanho: s", true},
		{"adult number", "calças de ganga 38 senhora", "38", true},
		{"shoe number", "sapatilhas 36", "36", true},
		{"cm single", "100 cm menino", "100 cm", true},
		{"cm range", "fato 100-110cm", "100-110cm", true},
		{"no size", "roupa variada", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchSize(tt.text)
			if ok != tt.ok {
				t.Fatalf("MatchSize(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("MatchSize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// TestMatchSizePriority documents the overlap rules: the more specific
// pattern must win even when a looser one also matches.
func TestMatchSizePriority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		// Letter range over the bare number.
		{"letter range over number", "camisola S-M 10", "s-m"},
		// The tam marker swallows the whole range.
		{"tam range over bare number", "tam S-M, idade 10", "tam s-m"},
		// Month range over the single month inside it.
		{"month range over single month", "4-8 meses", "4-8 meses"},
		// Year range over the single year inside it.
		{"year range over single year", "roupa 6-8 anos", "6-8 anos"},
		// Months before the bare shoe-band number.
		{"month over shoe number", "18 meses menino", "18 meses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchSize(tt.text)
			if !ok {
				t.Fatalf("MatchSize(%q) found no token", tt.text)
			}
			if got != tt.want {
				t.Errorf("MatchSize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
