package goquery

import (
	"github.com/fwojciec/worldfacts"
)

var _ worldfacts.DetailParser = (*DetailParser)(nil)

// DetailParser harvests country fields from the info table of a detail page.
// It is safe for concurrent use.
type DetailParser struct {
	profile *worldfacts.Profile
	fields  []field
}

// NewDetailParser creates a new DetailParser for the profile.
func NewDetailParser(profile *worldfacts.Profile) *DetailParser {
	return &DetailParser{profile: profile, fields: fields(profile)}
}

// ParseDetail returns a country named name with every field the info table
// yields. A page without an info table yields the name alone.
//
// Rows are visited in document order. For each field the first matching
// row that produces a value wins; later matches are ignored.
func (p *DetailParser) ParseDetail(html string, name string) (*worldfacts.Country, error) {
	doc, err := parseHTML(html)
	if err != nil {
		return nil, err
	}

	c := &worldfacts.Country{Name: name}

	table := doc.Find(p.profile.InfoTable).First()
	if table.Length() == 0 {
		return c, nil
	}

	done := make([]bool, len(p.fields))
	for _, row := range labeledRows(table) {
		if row.label == "" {
			continue
		}
		for i, f := range p.fields {
			if done[i] || !f.rule.Matches(row.label) {
				continue
			}
			done[i] = f.extract(row, c)
		}
	}
	return c, nil
}
