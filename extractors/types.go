package extractors

// Gender canonical gender classification of a lot description.
type Gender string

const (
	GenderF      Gender = "F"
	GenderM      Gender = "M"
	GenderGirl   Gender = "GIRL"
	GenderBoy    Gender = "BOY"
	GenderBaby   Gender = "BABY"
	GenderUnisex Gender = "UNISEX"
)

// AgeType age category derived from the normalized size (and shoe keywords).
type AgeType string

const (
	AgeBaby    AgeType = "baby"
	AgeChild   AgeType = "child"
	AgeClothes AgeType = "clothes" // adult-scale garments
	AgeShoes   AgeType = "shoes"
)

// Category garment category from the fixed vocabulary.
type Category string

const (
	CategorySweater  Category = "sweater"
	CategoryJacket   Category = "jacket"
	CategoryTrousers Category = "trousers"
	CategoryTshirt   Category = "tshirt"
	CategoryDress    Category = "dress"
	CategorySkirt    Category = "skirt"
	CategoryBabygrow Category = "babygrow"
	CategorySocks    Category = "socks"
	CategoryShoes    Category = "shoes"
	CategoryClothes  Category = "clothes" // fallback
)

// Attributes canonical attribute tuple derived from a lot description.
// Either all fields are populated or the tuple is absent (nil) as a whole.
type Attributes struct {
	Size     string   `json:"size"`
	Gender   Gender   `json:"gender"`
	AgeType  AgeType  `json:"age_type"`
	Category Category `json:"category"`
}

// GenderLabels Portuguese labels for reports and alerts.
var GenderLabels = map[Gender]string{
	GenderF:      "senhora",
	GenderM:      "senhor",
	GenderGirl:   "menina",
	GenderBoy:    "menino",
	GenderBaby:   "bebé",
	GenderUnisex: "unissexo",
}

// AgeTypeLabels Portuguese labels for age categories.
var AgeTypeLabels = map[AgeType]string{
	AgeBaby:    "bebé",
	AgeChild:   "criança",
	AgeClothes: "adulto",
	AgeShoes:   "calçado",
}

// CategoryLabels Portuguese labels for garment categories.
var CategoryLabels = map[Category]string{
	CategorySweater:  "camisola",
	CategoryJacket:   "casaco",
	CategoryTrousers: "calças",
	CategoryTshirt:   "t-shirt",
	CategoryDress:    "vestido",
	CategorySkirt:    "saia",
	CategoryBabygrow: "babygrow",
	CategorySocks:    "meias",
	CategoryShoes:    "calçado",
	CategoryClothes:  "roupa",
}

// GenderLabel returns the Portuguese label for a gender, falling back to the
// raw value for unknown input (mirrors the reporting behavior of the UI).
func GenderLabel(g Gender) string {
	if label, ok := GenderLabels[g]; ok {
		return label
	}
	return string(g)
}

// AgeTypeLabel returns the Portuguese label for an age category.
func AgeTypeLabel(a AgeType) string {
	if label, ok := AgeTypeLabels[a]; ok {
		return label
	}
	return AgeTypeLabels[AgeClothes]
}

// CategoryLabel returns the Portuguese label for a garment category.
func CategoryLabel(c Category) string {
	if label, ok := CategoryLabels[c]; ok {
		return label
	}
	return CategoryLabels[CategoryClothes]
}
