package worldfacts

// IndexParser discovers countries from an index page.
type IndexParser interface {
	// ParseIndex returns country references in the order their rows appear.
	// A page without the index table yields an empty slice, not an error.
	ParseIndex(html string) ([]EntityRef, error)
}

// DetailParser harvests one country's facts from its detail page.
type DetailParser interface {
	// ParseDetail returns the country described by the page's info table.
	// A page without an info table yields a country holding only name.
	ParseDetail(html string, name string) (*Country, error)
}

// Normalizer rewrites a country's text fields to plain ASCII-compatible form.
// Implementations return a new value and leave the input untouched.
// Normalizing an already normalized country returns an equal country.
type Normalizer interface {
	NormalizeCountry(c *Country) *Country
}
