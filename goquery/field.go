package goquery

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/worldfacts"
)

// extractor sets one field of c from row. It reports whether a value was
// found; absent values leave c untouched.
type extractor func(row *labeledRow, c *worldfacts.Country) bool

// field pairs a label rule with the extractor it triggers.
type field struct {
	name    string
	rule    worldfacts.LabelRule
	extract extractor
}

// fields builds the extractor table for a profile.
func fields(p *worldfacts.Profile) []field {
	return []field{
		{"capital", p.Labels.Capital, extractCapital},
		{"population", p.Labels.Population, extractPopulation},
		{"density", p.Labels.Density, densityExtractor(p.DecimalMark)},
		{"area", p.Labels.Area, areaExtractor(p.DecimalMark)},
		{"neighbours", p.Labels.Neighbours, extractNeighbours},
		{"language", p.Labels.Language, languageExtractor(p.LanguageStopwords)},
		{"time_zone", p.Labels.TimeZone, extractTimeZone},
		{"government", p.Labels.Government, extractGovernment},
	}
}

// extractCapital prefers the distinct link texts of the cell, joined as
// co-capitals. Without usable links it falls back to the longest run of
// plain text in the cell.
func extractCapital(row *labeledRow, c *worldfacts.Country) bool {
	var names []string
	for _, text := range row.links {
		if worldfacts.IsWordLike(text) {
			names = append(names, text)
		}
	}

	capital := worldfacts.JoinSet(worldfacts.NewSet(names))
	if capital == "" {
		capital = worldfacts.LongestTextRun(worldfacts.StripParentheticals(worldfacts.StripCitations(row.text)))
	}
	if capital == "" {
		return false
	}
	c.Capital = &capital
	return true
}

// extractPopulation reads the figure from the row below the label.
func extractPopulation(row *labeledRow, c *worldfacts.Country) bool {
	if row.next == nil {
		return false
	}
	n, ok := worldfacts.ParseInt(row.next.text)
	if !ok || n < 0 {
		return false
	}
	c.Population = &n
	return true
}

// areaExtractor reads the figure from the row below the label.
func areaExtractor(decimalMark string) extractor {
	return func(row *labeledRow, c *worldfacts.Country) bool {
		if row.next == nil {
			return false
		}
		v, ok := worldfacts.ParseFloat(row.next.text, decimalMark)
		if !ok || v <= 0 {
			return false
		}
		c.Area = &v
		return true
	}
}

// densityExtractor reads the row's own cell. Some sources render density
// with a stray minus sign, so the absolute value is kept.
func densityExtractor(decimalMark string) extractor {
	return func(row *labeledRow, c *worldfacts.Country) bool {
		v, ok := worldfacts.ParseFloat(row.text, decimalMark)
		if !ok {
			return false
		}
		v = math.Abs(v)
		c.Density = &v
		return true
	}
}

func extractNeighbours(row *labeledRow, c *worldfacts.Country) bool {
	set := worldfacts.NewSet(nameTokens(row.links, nil))
	if len(set) == 0 {
		return false
	}
	c.Neighbours = set
	return true
}

// languageExtractor collects lower-cased language names from the cell's
// links. When no link survives filtering, the whole cell is one value.
func languageExtractor(stopwords []string) extractor {
	return func(row *labeledRow, c *worldfacts.Country) bool {
		names := nameTokens(row.links, stopwords)
		if len(names) == 0 {
			if text := worldfacts.CollapseSpace(worldfacts.StripCitations(row.text)); text != "" {
				names = []string{text}
			}
		}
		for i := range names {
			names[i] = strings.ToLower(names[i])
		}

		set := worldfacts.NewSet(names)
		if len(set) == 0 {
			return false
		}
		c.Languages = set
		return true
	}
}

// nameTokens keeps word-like texts longer than two characters that are
// not stopwords. Shorter tokens are footnote letters or stray punctuation.
func nameTokens(texts []string, stopwords []string) []string {
	var out []string
	for _, text := range texts {
		if utf8.RuneCountInString(text) <= 2 || !worldfacts.IsWordLike(text) {
			continue
		}
		if slices.ContainsFunc(stopwords, func(s string) bool { return strings.EqualFold(s, text) }) {
			continue
		}
		out = append(out, text)
	}
	return out
}

func extractTimeZone(row *labeledRow, c *worldfacts.Country) bool {
	zone, ok := worldfacts.CanonicalTimeZone(row.text)
	if !ok {
		return false
	}
	c.TimeZone = &zone
	return true
}

// extractGovernment keeps the first line of the cell without citations
// or parenthetical asides.
func extractGovernment(row *labeledRow, c *worldfacts.Country) bool {
	gov := worldfacts.FirstLine(row.text)
	gov = worldfacts.StripParentheticals(worldfacts.StripCitations(gov))
	if gov == "" {
		return false
	}
	c.Government = &gov
	return true
}
