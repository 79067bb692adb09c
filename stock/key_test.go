package stock

import (
	"testing"

	"github.com/SergioFerreira2020/GestorLotes/extractors"
)

func TestAttributeKeyString(t *testing.T) {
	tests := []struct {
		key  AttributeKey
		want string
	}{
		{AttributeKey{AgeType: extractors.AgeBaby, Gender: extractors.GenderGirl, Size: "4-8 MESES"}, "baby-GIRL-4-8 MESES"},
		{AttributeKey{AgeType: extractors.AgeShoes, Gender: extractors.GenderM, Size: "42"}, "shoes-M-42"},
		{AttributeKey{AgeType: extractors.AgeClothes, Gender: extractors.GenderF, Size: "M"}, "clothes-F-M"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		id   string
		want AttributeKey
	}{
		// Current generation.
		{"baby-GIRL-4-8 MESES", AttributeKey{AgeType: extractors.AgeBaby, Gender: extractors.GenderGirl, Size: "4-8 MESES"}},
		{"shoes-M-42", AttributeKey{AgeType: extractors.AgeShoes, Gender: extractors.GenderM, Size: "42"}},
		{"clothes-UNISEX-XL", AttributeKey{AgeType: extractors.AgeClothes, Gender: extractors.GenderUnisex, Size: "XL"}},
		// Legacy generation: no age category, defaults to the adult bucket.
		{"F-M", AttributeKey{AgeType: extractors.AgeClothes, Gender: extractors.GenderF, Size: "M"}},
		{"GIRL-6 ANOS", AttributeKey{AgeType: extractors.AgeClothes, Gender: extractors.GenderGirl, Size: "6 ANOS"}},
		{"BABY-4-8 MESES", AttributeKey{AgeType: extractors.AgeClothes, Gender: extractors.GenderBaby, Size: "4-8 MESES"}},
	}

	for _, tt := range tests {
		got, err := ParseKey(tt.id)
		if err != nil {
			t.Errorf("ParseKey(%q) error: %v", tt.id, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %+v, want %+v", tt.id, got, tt.want)
		}
	}
}

func TestParseKeyRejectsMalformed(t *testing.T) {
	for _, id := range []string{"", "42", "nonsense", "F-", "baby-GIRL-"} {
		if _, err := ParseKey(id); err == nil {
			t.Errorf("ParseKey(%q) succeeded, want error", id)
		}
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	keys := []AttributeKey{
		{AgeType: extractors.AgeBaby, Gender: extractors.GenderGirl, Size: "4-8 MESES"},
		{AgeType: extractors.AgeShoes, Gender: extractors.GenderM, Size: "42"},
		{AgeType: extractors.AgeChild, Gender: extractors.GenderBoy, Size: "6 ANOS"},
	}

	for _, key := range keys {
		got, err := ParseKey(key.String())
		if err != nil {
			t.Fatalf("ParseKey(%q) error: %v", key.String(), err)
		}
		if got != key {
			t.Errorf("round trip of %+v produced %+v", key, got)
		}
	}
}
