package recipe

// Closed enumerations for recipe attributes. String-backed so they survive
// JSON round-trips through the generation service and the redis cache.

// CuisineType represents different cuisine types.
type CuisineType string

const (
	CuisineAny           CuisineType = "any" // wildcard, criteria only
	CuisineItalian       CuisineType = "italian"
	CuisineFrench        CuisineType = "french"
	CuisineChinese       CuisineType = "chinese"
	CuisineJapanese      CuisineType = "japanese"
	CuisineIndian        CuisineType = "indian"
	CuisineMexican       CuisineType = "mexican"
	CuisineAmerican      CuisineType = "american"
	CuisineMediterranean CuisineType = "mediterranean"
	CuisineThai          CuisineType = "thai"
	CuisineOther         CuisineType = "other"
)

// IsWildcard reports whether the cuisine matches any recipe.
func (c CuisineType) IsWildcard() bool {
	return c == CuisineAny || c == ""
}

// DifficultyLevel represents recipe difficulty. Criteria match it exactly,
// not as a ceiling.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
	DifficultyExpert DifficultyLevel = "expert"
)

// DietaryTag is a closed set of dietary restriction markers. Some pairs are
// mutually exclusive; see the discovery package's conflict resolver.
type DietaryTag string

const (
	TagVegetarian    DietaryTag = "vegetarian"
	TagVegan         DietaryTag = "vegan"
	TagNonVegetarian DietaryTag = "non_vegetarian"
	TagGlutenFree    DietaryTag = "gluten_free"
	TagDairyFree     DietaryTag = "dairy_free"
	TagNutFree       DietaryTag = "nut_free"
	TagLowCarb       DietaryTag = "low_carb"
	TagKeto          DietaryTag = "keto"
	TagPaleo         DietaryTag = "paleo"
	TagHalal         DietaryTag = "halal"
	TagKosher        DietaryTag = "kosher"
)

// Source tags a recipe's provenance. It drives both the UI badge and the
// dedup tie-break order: Local wins over QuickGenerated wins over Generated.
type Source string

const (
	SourceLocal          Source = "local"
	SourceQuickGenerated Source = "quick_generated"
	SourceGenerated      Source = "generated"
)

// Valid reports whether the source is a known member of the enum.
func (s Source) Valid() bool {
	switch s {
	case SourceLocal, SourceQuickGenerated, SourceGenerated:
		return true
	}
	return false
}

// Priority returns the dedup rank of the source; lower wins.
func (s Source) Priority() int {
	switch s {
	case SourceLocal:
		return 0
	case SourceQuickGenerated:
		return 1
	default:
		return 2
	}
}

// MeasurementUnit represents units of measurement for ingredients.
type MeasurementUnit string

const (
	UnitTeaspoon   MeasurementUnit = "tsp"
	UnitTablespoon MeasurementUnit = "tbsp"
	UnitCup        MeasurementUnit = "cup"
	UnitOunce      MeasurementUnit = "oz"
	UnitMilliliter MeasurementUnit = "ml"
	UnitGram       MeasurementUnit = "g"
	UnitKilogram   MeasurementUnit = "kg"
	UnitPound      MeasurementUnit = "lb"
	UnitPiece      MeasurementUnit = "piece"
	UnitPinch      MeasurementUnit = "pinch"
)
