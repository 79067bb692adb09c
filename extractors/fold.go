package extractors

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes characters and strips combining marks, so that
// "bebé", "mês" and "calças" compare equal to their unaccented spellings.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lower-cases the text and removes diacritics. Operator input mixes
// accented and unaccented spellings freely, so every matcher and classifier
// works on the folded form.
func Fold(text string) string {
	lowered := strings.ToLower(text)
	folded, _, err := transform.String(foldTransformer, lowered)
	if err != nil {
		return lowered
	}
	return folded
}
