package mock

import "github.com/fwojciec/worldfacts"

var _ worldfacts.IndexParser = (*IndexParser)(nil)

// IndexParser is a mock implementation of worldfacts.IndexParser.
type IndexParser struct {
	ParseIndexFn func(html string) ([]worldfacts.EntityRef, error)
}

func (p *IndexParser) ParseIndex(html string) ([]worldfacts.EntityRef, error) {
	return p.ParseIndexFn(html)
}

var _ worldfacts.DetailParser = (*DetailParser)(nil)

// DetailParser is a mock implementation of worldfacts.DetailParser.
type DetailParser struct {
	ParseDetailFn func(html string, name string) (*worldfacts.Country, error)
}

func (p *DetailParser) ParseDetail(html string, name string) (*worldfacts.Country, error) {
	return p.ParseDetailFn(html, name)
}

var _ worldfacts.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of worldfacts.Normalizer.
type Normalizer struct {
	NormalizeCountryFn func(c *worldfacts.Country) *worldfacts.Country
}

func (n *Normalizer) NormalizeCountry(c *worldfacts.Country) *worldfacts.Country {
	return n.NormalizeCountryFn(c)
}
