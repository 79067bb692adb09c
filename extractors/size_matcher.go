package extractors

import "regexp"

// letterAlt letter-size vocabulary, longest alternatives first so the
// leftmost-first alternation never truncates a multi-letter size.
const letterAlt = `8xl|7xl|6xl|5xl|4xl|xxxl|xxl|xl|xxxs|xxs|xs|s|m|l`

// sizePatterns ordered sub-patterns of the size matcher. Priority matters:
// several patterns overlap lexically, so the more specific forms must be
// tried before the looser numeric fallbacks. A bare number is the most
// ambiguous signal and comes last.
var sizePatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	// Explicit "tam"/"tamanho" marker, optionally carrying a range.
	{"tam-marker", regexp.MustCompile(`\btam(?:anho)?\.?[\s:ºn°]*(?:\d{1,2}|` + letterAlt + `)(?:\s*[-/]\s*(?:\d{1,2}|` + letterAlt + `))?\b`)},
	// Letter ranges before single letters, or "xs-m" collapses to "xs".
	{"letter-range", regexp.MustCompile(`\b(?:` + letterAlt + `)(?:\s*[-/]\s*|\s+a\s+|\s+)(?:` + letterAlt + `)\b`)},
	// Month ranges before single months: "4-8 meses", "4/8m".
	{"month-range", regexp.MustCompile(`\b\d{1,2}\s*(?:[-/]|a)\s*\d{1,2}\s*(?:meses|mes|m)\b`)},
	{"month", regexp.MustCompile(`\b\d{1,2}\s*(?:meses|mes|m)\b`)},
	// Year ranges before single years: "6-8 anos", "10y".
	{"year-range", regexp.MustCompile(`\b\d{1,2}\s*(?:[-/]|a)\s*\d{1,2}\s*(?:anos|ano|a|y)\b`)},
	{"year", regexp.MustCompile(`\b\d{1,2}\s*(?:anos|ano|a|y)\b`)},
	// Centimeter sizes, common for baby garments.
	{"cm-range", regexp.MustCompile(`\b\d{1,3}\s*(?:[-/]|a)\s*\d{1,3}\s*cm\b`)},
	{"cm", regexp.MustCompile(`\b\d{1,3}\s*cm\b`)},
	{"letter", regexp.MustCompile(`\b(?:` + letterAlt + `)\b`)},
	// Bare numeric fallbacks: adult garment sizes, then shoe sizes.
	{"adult-number", regexp.MustCompile(`\b(?:3[0-9]|4[0-9]|5[0-6])\b`)},
	{"shoe-number", regexp.MustCompile(`\b(?:1[0-9]|2[0-9]|3[0-9]|4[0-9]|5[0-9])\b`)},
}

// MatchSize scans the description for a raw size token. The text is folded
// first; sub-patterns are evaluated in priority order and the leftmost
// occurrence of the first pattern that matches anywhere wins. No match is the
// normal outcome for descriptions without a recognizable size.
func MatchSize(text string) (string, bool) {
	folded := Fold(text)
	for _, p := range sizePatterns {
		if m := p.re.FindString(folded); m != "" {
			return m, true
		}
	}
	return "", false
}
