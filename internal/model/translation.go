package model

// Defaults applied to a new translation record.
const (
	DefaultLanguage = "en"
	DefaultCountry  = "MX"
	DefaultCategory = "Restaurants"
)

// Categories offered when relabelling a saved translation. "Restaurant"
// here and the persisted default "Restaurants" are distinct labels.
var Categories = []string{"Restaurant", "School", "Work", "Church", "Friends"}

// Translation is one saved entry of the translation history.
// ID zero means "not yet stored"; the store assigns the next free id.
type Translation struct {
	ID             int64
	TextSource     string
	TextTranslated string
	Language       string
	Country        string
	Category       string
}

// NewTranslation builds an unsaved record with the default language,
// country and category. An empty category keeps the default.
func NewTranslation(source, translated, category string) Translation {
	if category == "" {
		category = DefaultCategory
	}
	return Translation{
		TextSource:     source,
		TextTranslated: translated,
		Language:       DefaultLanguage,
		Country:        DefaultCountry,
		Category:       category,
	}
}
