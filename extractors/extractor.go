package extractors

import "strings"

// Extractor composes the size matcher, the normalizer and the classifiers
// into the single attribute-extraction entry point. It is pure: no state is
// read or written, so extracting the old and the new text of an edit in any
// order always yields the same tuples.
type Extractor struct {
	shoeMin int
	shoeMax int
}

// NewExtractor creates an extractor with the given shoe-size band for the
// numeric age heuristic. Out-of-range bounds fall back to the defaults.
func NewExtractor(shoeMin, shoeMax int) *Extractor {
	if shoeMin <= 0 {
		shoeMin = DefaultShoeSizeMin
	}
	if shoeMax < shoeMin {
		shoeMax = DefaultShoeSizeMax
	}
	return &Extractor{shoeMin: shoeMin, shoeMax: shoeMax}
}

// Extract derives the canonical attribute tuple from a lot description.
// Returns nil for empty text or when no size token is recognized: the tuple
// is all-or-nothing, never partially populated. Never fails: unrecognized
// input is a valid "no attributes" outcome, not an error.
func (e *Extractor) Extract(description string) *Attributes {
	if strings.TrimSpace(description) == "" {
		return nil
	}

	raw, ok := MatchSize(description)
	if !ok {
		return nil
	}

	size := NormalizeSize(raw)
	return &Attributes{
		Size:     size,
		Gender:   DetectGender(description),
		AgeType:  DetectAgeType(description, size, e.shoeMin, e.shoeMax),
		Category: DetectCategory(description),
	}
}
