package models

// Localized is a bilingual text pair. Every customer-facing string on a
// product is stored in both English and Arabic.
type Localized struct {
	En string `json:"en" bson:"en" validate:"required"`
	Ar string `json:"ar" bson:"ar" validate:"required"`
}

// Keywords holds the per-language keyword lists used for search and for
// the AI description generator.
type Keywords struct {
	En []string `json:"en" bson:"en"`
	Ar []string `json:"ar" bson:"ar"`
}

// Get returns the text for the given language code, falling back to
// English for anything unrecognised.
func (l Localized) Get(lang string) string {
	if lang == "ar" {
		return l.Ar
	}
	return l.En
}
