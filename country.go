package worldfacts

import (
	"context"
	"strings"
)

// Country is the typed record harvested for one country.
// Name is always set. Every other field is optional: a nil pointer or an
// empty set means the source page did not provide a usable value.
type Country struct {
	Name       string   `json:"name"`
	Capital    *string  `json:"capital,omitempty"`
	Population *int64   `json:"population,omitempty"`
	Density    *float64 `json:"density,omitempty"`
	Area       *float64 `json:"area,omitempty"`
	Neighbours []string `json:"neighbours,omitempty"`
	Languages  []string `json:"languages,omitempty"`
	TimeZone   *string  `json:"timeZone,omitempty"`
	Government *string  `json:"government,omitempty"`

	// Provenance, set by the crawler.
	SourceURL  string `json:"sourceUrl,omitempty"`
	SourceHash string `json:"sourceHash,omitempty"`
	CrawlID    string `json:"crawlId,omitempty"`
}

// Validate returns an error if the country contains invalid fields.
func (c *Country) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return Errorf(EINVALID, "country name required")
	}
	if c.Population != nil && *c.Population < 0 {
		return Errorf(EINVALID, "country %q population must not be negative", c.Name)
	}
	if c.Density != nil && *c.Density < 0 {
		return Errorf(EINVALID, "country %q density must not be negative", c.Name)
	}
	if c.Area != nil && *c.Area <= 0 {
		return Errorf(EINVALID, "country %q area must be positive", c.Name)
	}
	return nil
}

// Clone returns a deep copy of the country.
func (c *Country) Clone() *Country {
	other := *c
	other.Capital = clonePtr(c.Capital)
	other.Population = clonePtr(c.Population)
	other.Density = clonePtr(c.Density)
	other.Area = clonePtr(c.Area)
	other.TimeZone = clonePtr(c.TimeZone)
	other.Government = clonePtr(c.Government)
	if c.Neighbours != nil {
		other.Neighbours = append([]string(nil), c.Neighbours...)
	}
	if c.Languages != nil {
		other.Languages = append([]string(nil), c.Languages...)
	}
	return &other
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v. It is convenient for optional Country fields.
func Ptr[T any](v T) *T {
	return &v
}

// EntityRef identifies a country found on the index page and the location
// of its detail page. Figures holds any numbers the index row carried.
type EntityRef struct {
	Name    string
	URL     string
	Figures Figures
}

// Figures holds optional numeric facts read from an index row.
type Figures struct {
	Population *int64
	Density    *float64
	Area       *float64
}

// CountryWriter writes harvested countries to storage.
// InsertCountries persists the whole batch or nothing.
type CountryWriter interface {
	InsertCountries(ctx context.Context, countries []*Country) error
}

// CountryService represents a service for managing stored countries.
type CountryService interface {
	CountryWriter

	// FindCountries retrieves countries matching the filter.
	// Returns EINVALID if the filter sorts by an unknown field.
	FindCountries(ctx context.Context, filter CountryFilter) ([]*Country, error)
}

// Sortable country fields for CountryFilter.SortBy.
const (
	SortByName       = "name"
	SortByPopulation = "population"
	SortByDensity    = "density"
	SortByArea       = "area"
)

// CountryFilter represents a filter for FindCountries.
type CountryFilter struct {
	Name    *string `json:"name"`
	CrawlID *string `json:"crawlId"`

	// SortBy is one of the SortBy constants. Empty sorts by insertion order.
	SortBy string `json:"sortBy"`
	Desc   bool   `json:"desc"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
