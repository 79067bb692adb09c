package stock

import (
	"fmt"
	"strings"

	"github.com/SergioFerreira2020/GestorLotes/extractors"
)

// AttributeKey identifies one aggregate stock entry. The current key
// generation serializes as "ageType-gender-size"; earlier deployments wrote
// "gender-size" keys, which ParseKey still accepts so old ledgers keep
// working without a rebuild.
type AttributeKey struct {
	AgeType extractors.AgeType
	Gender  extractors.Gender
	Size    string
}

// KeyFor derives the ledger key from an extracted attribute tuple.
func KeyFor(attrs *extractors.Attributes) AttributeKey {
	return AttributeKey{
		AgeType: attrs.AgeType,
		Gender:  attrs.Gender,
		Size:    attrs.Size,
	}
}

// String returns the canonical document id: "ageType-gender-size". The size
// goes last because normalized sizes may themselves contain dashes.
func (k AttributeKey) String() string {
	return fmt.Sprintf("%s-%s-%s", k.AgeType, k.Gender, k.Size)
}

var validAgeTypes = map[extractors.AgeType]bool{
	extractors.AgeBaby:    true,
	extractors.AgeChild:   true,
	extractors.AgeClothes: true,
	extractors.AgeShoes:   true,
}

var validGenders = map[extractors.Gender]bool{
	extractors.GenderF:      true,
	extractors.GenderM:      true,
	extractors.GenderGirl:   true,
	extractors.GenderBoy:    true,
	extractors.GenderBaby:   true,
	extractors.GenderUnisex: true,
}

// ParseKey decodes a stored document id into its attribute key. Both the
// current "ageType-gender-size" shape and the legacy "gender-size" shape are
// recognized; legacy keys carry no age category and default to the
// adult-clothes bucket.
func ParseKey(id string) (AttributeKey, error) {
	if parts := strings.SplitN(id, "-", 3); len(parts) == 3 {
		ageType := extractors.AgeType(parts[0])
		gender := extractors.Gender(parts[1])
		if validAgeTypes[ageType] && validGenders[gender] && parts[2] != "" {
			return AttributeKey{AgeType: ageType, Gender: gender, Size: parts[2]}, nil
		}
	}

	if parts := strings.SplitN(id, "-", 2); len(parts) == 2 {
		gender := extractors.Gender(parts[0])
		if validGenders[gender] && parts[1] != "" {
			return AttributeKey{AgeType: extractors.AgeClothes, Gender: gender, Size: parts[1]}, nil
		}
	}

	return AttributeKey{}, fmt.Errorf("unrecognized stock key %q", id)
}
