package extractors

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kljensen/snowball"
)

// genderRules ordered first-match-wins gender detection over the folded full
// text. The order is load-bearing: "senhora" contains "senhor", so the
// feminine indicators run first. Single-letter indicators use word
// boundaries to avoid partial-word hits.
var genderRules = []struct {
	re     *regexp.Regexp
	gender Gender
}{
	{regexp.MustCompile(`senhora|mulher|feminino|\bf\b`), GenderF},
	{regexp.MustCompile(`senhor|homem|masculino|\bm\b`), GenderM},
	{regexp.MustCompile(`menina|rapariga`), GenderGirl},
	{regexp.MustCompile(`menino|rapaz`), GenderBoy},
	{regexp.MustCompile(`\bbebe\b|baby|infantil`), GenderBaby},
}

// DetectGender classifies the gender of a description. UNISEX when no
// indicator is present.
func DetectGender(text string) Gender {
	folded := Fold(text)
	for _, rule := range genderRules {
		if rule.re.MatchString(folded) {
			return rule.gender
		}
	}
	return GenderUnisex
}

// categoryRules ordered keyword table for garment categories, folded
// spellings. Shoe keywords first: they also drive the age-type precedence.
var categoryRules = []struct {
	category Category
	keywords []string
}{
	{CategoryShoes, []string{"sapato", "sapatilha", "tenis", "botas", "chinelos", "sandalia", "calcado"}},
	{CategorySweater, []string{"camisola", "sweat", "pulover"}},
	{CategoryJacket, []string{"casaco", "blusao", "kispo", "anorak"}},
	{CategoryTrousers, []string{"calcas", "jeans", "ganga"}},
	{CategoryTshirt, []string{"t-shirt", "tshirt", "camiseta"}},
	{CategoryDress, []string{"vestido"}},
	{CategorySkirt, []string{"saia"}},
	{CategoryBabygrow, []string{"babygrow", "body"}},
	{CategorySocks, []string{"meias"}},
}

// stemmedRules the category keyword table with every keyword reduced to its
// Portuguese stem, built once at init. Used as a fallback so inflected forms
// the plain substring scan misses still classify.
var stemmedRules = func() []struct {
	category Category
	stems    map[string]bool
} {
	rules := make([]struct {
		category Category
		stems    map[string]bool
	}, 0, len(categoryRules))
	for _, rule := range categoryRules {
		stems := make(map[string]bool, len(rule.keywords))
		for _, kw := range rule.keywords {
			if stem, err := snowball.Stem(kw, "portuguese", true); err == nil {
				stems[stem] = true
			}
		}
		rules = append(rules, struct {
			category Category
			stems    map[string]bool
		}{rule.category, stems})
	}
	return rules
}()

// DetectCategory classifies the garment category of a description. Direct
// substring matching runs first in table order; a stemmed-token pass catches
// inflections; the fallback is the generic clothes category.
func DetectCategory(text string) Category {
	folded := Fold(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(folded, kw) {
				return rule.category
			}
		}
	}

	tokens := strings.Fields(folded)
	stems := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		if len(tok) < 4 {
			continue
		}
		if stem, err := snowball.Stem(tok, "portuguese", true); err == nil {
			stems[stem] = true
		}
	}
	for _, rule := range stemmedRules {
		for stem := range rule.stems {
			if stems[stem] {
				return rule.category
			}
		}
	}

	return CategoryClothes
}

// shoeKeywordRe shoe indicators for the age-type precedence rule, kept in
// sync with the shoes row of categoryRules.
var shoeKeywordRe = regexp.MustCompile(`sapato|sapatilha|tenis|botas|chinelos|sandalia|calcado`)

// Default shoe-size band for the numeric age heuristic.
const (
	DefaultShoeSizeMin = 16
	DefaultShoeSizeMax = 59
)

// DetectAgeType derives the age category. Shoe keywords in the text take
// precedence over the size-driven rules; after that the decision is made on
// the normalized size alone: months mean baby, years mean child, centimeter
// sizes are baby garments, and a bare number inside the shoe band means
// shoes. Everything else is adult clothing.
func DetectAgeType(text, normalizedSize string, shoeMin, shoeMax int) AgeType {
	if shoeKeywordRe.MatchString(Fold(text)) {
		return AgeShoes
	}
	switch {
	case strings.Contains(normalizedSize, "MESES"):
		return AgeBaby
	case strings.Contains(normalizedSize, "ANOS"):
		return AgeChild
	case strings.Contains(normalizedSize, "CM"):
		return AgeBaby
	}
	if n, err := strconv.Atoi(normalizedSize); err == nil && n >= shoeMin && n <= shoeMax {
		return AgeShoes
	}
	return AgeClothes
}
