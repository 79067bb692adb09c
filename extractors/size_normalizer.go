package extractors

import (
	"regexp"
	"strings"
)

// letterAltUpper upper-case variant of the letter-size vocabulary for the
// normalizer, which works on the upper-cased token.
const letterAltUpper = `8XL|7XL|6XL|5XL|4XL|XXXL|XXL|XL|XXXS|XXS|XS|S|M|L`

var (
	tamMarkerRe = regexp.MustCompile(`^TAM(?:ANHO)?\.?[\s:ºN°]*`)

	monthRangeRe = regexp.MustCompile(`\b(\d{1,2})\s*(?:[-/]|A)\s*(\d{1,2})\s*(?:MESES|MES|M)\b`)
	monthRe      = regexp.MustCompile(`\b(\d{1,2})\s*(?:MESES|MES|M)\b`)
	yearRangeRe  = regexp.MustCompile(`\b(\d{1,2})\s*(?:[-/]|A)\s*(\d{1,2})\s*(?:ANOS|ANO|A|Y)\b`)
	yearRe       = regexp.MustCompile(`\b(\d{1,2})\s*(?:ANOS|ANO|A|Y)\b`)
	cmRangeRe    = regexp.MustCompile(`\b(\d{1,3})\s*(?:[-/]|A)\s*(\d{1,3})\s*CM\b`)
	cmRe         = regexp.MustCompile(`\b(\d{1,3})\s*CM\b`)

	letterRangeRe = regexp.MustCompile(`^(` + letterAltUpper + `)(?:\s*[-/]\s*|\s+A\s+|\s+)(` + letterAltUpper + `)$`)
)

// NormalizeSize canonicalizes a raw size token: unit spelled out, range
// syntax standardized, case standardized, whitespace trimmed. Idempotent:
// feeding a canonical size back in returns it unchanged, which is what keeps
// ledger keys stable across repeated extractions.
func NormalizeSize(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(Fold(raw)))

	// The tam/tamanho marker is presentation, not size: "tam 38" and "38"
	// must land on the same ledger key.
	s = tamMarkerRe.ReplaceAllString(s, "")

	s = monthRangeRe.ReplaceAllString(s, "$1-$2 MESES")
	s = monthRe.ReplaceAllString(s, "$1 MESES")
	s = yearRangeRe.ReplaceAllString(s, "$1-$2 ANOS")
	s = yearRe.ReplaceAllString(s, "$1 ANOS")
	s = cmRangeRe.ReplaceAllString(s, "$1-$2 CM")
	s = cmRe.ReplaceAllString(s, "$1 CM")
	s = letterRangeRe.ReplaceAllString(s, "$1-$2")

	return strings.TrimSpace(s)
}
