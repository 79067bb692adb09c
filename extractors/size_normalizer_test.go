package extractors

import "testing"

// TestNormalizeSize verifies the canonical form for every raw token shape.
func TestNormalizeSize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"4-8 meses", "4-8 MESES"},
		{"4/8m", "4-8 MESES"},
		{"6m", "6 MESES"},
		{"6 meses", "6 MESES"},
		{"6 anos", "6 ANOS"},
		{"6-8 anos", "6-8 ANOS"},
		{"10y", "10 ANOS"},
		{"10 a", "10 ANOS"},
		{"tam. 38", "38"},
		{"tamanho: s", "S"},
		{"tam s-m", "S-M"},
		{"s-m", "S-M"},
		{"s a m", "S-M"},
		{"s m", "S-M"},
		{"xl", "XL"},
		{"42", "42"},
		{"100 cm", "100 CM"},
		{"100cm", "100 CM"},
		{"100-110cm", "100-110 CM"},
		{"  m  ", "M"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeSize(tt.raw); got != tt.want {
				t.Errorf("NormalizeSize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// TestNormalizeSizeIdempotent normalizing a canonical size must return it
// unchanged; ledger keys depend on it.
func TestNormalizeSizeIdempotent(t *testing.T) {
	raws := []string{
		"4-8 meses", "4/8m", "6m", "6 anos", "6-8 anos", "10y",
		"tam. 38", "tam s-m", "s-m", "s a m", "xl", "42", "100 cm",
		"100-110cm", "tamanho: s", "56", "8xl",
	}

	for _, raw := range raws {
		once := NormalizeSize(raw)
		twice := NormalizeSize(once)
		if once != twice {
			t.Errorf("NormalizeSize not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}
