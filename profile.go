package worldfacts

import (
	"net/url"
	"slices"
	"strings"
)

// LabelRule decides whether an info-table row label belongs to a field.
// Labels are compared after NormalizeLabel.
type LabelRule struct {
	// Match lists the label variants for the field.
	Match []string `yaml:"match"`

	// Exclude lists substrings that disqualify an otherwise matching label.
	Exclude []string `yaml:"exclude,omitempty"`

	// Exact requires the label to equal a Match entry instead of containing it.
	Exact bool `yaml:"exact,omitempty"`
}

// Matches reports whether the normalized label satisfies the rule.
func (r LabelRule) Matches(label string) bool {
	for _, ex := range r.Exclude {
		if strings.Contains(label, ex) {
			return false
		}
	}
	for _, m := range r.Match {
		if r.Exact {
			if label == m {
				return true
			}
			continue
		}
		if strings.Contains(label, m) {
			return true
		}
	}
	return false
}

// Labels holds one LabelRule per harvested field.
type Labels struct {
	Capital    LabelRule `yaml:"capital"`
	Population LabelRule `yaml:"population"`
	Density    LabelRule `yaml:"density"`
	Area       LabelRule `yaml:"area"`
	Neighbours LabelRule `yaml:"neighbours"`
	Language   LabelRule `yaml:"language"`
	TimeZone   LabelRule `yaml:"time_zone"`
	Government LabelRule `yaml:"government"`
}

// IndexColumns locates cells in an index table row by zero-based position.
// Nil figure columns mean the index carries no such figure.
type IndexColumns struct {
	Name       int  `yaml:"name"`
	Area       *int `yaml:"area,omitempty"`
	Population *int `yaml:"population,omitempty"`
	Density    *int `yaml:"density,omitempty"`
}

// Decimal marks understood by ParseFloat.
const (
	DecimalPoint = "."
	DecimalComma = ","
)

// Profile describes how one encyclopedia edition lays out its pages.
// Profiles are built once and shared read-only by concurrent harvesters.
type Profile struct {
	Name      string `yaml:"name"`
	BaseURL   string `yaml:"base_url"`
	IndexPath string `yaml:"index_path"`

	// IndexTable is a CSS selector; the first match is the index table.
	IndexTable   string       `yaml:"index_table"`
	IndexColumns IndexColumns `yaml:"index_columns"`

	// LinkPrefix restricts which anchors qualify as detail links.
	// Empty accepts any non-fragment href.
	LinkPrefix string `yaml:"link_prefix,omitempty"`

	// Sentinels are aggregate row names that end index parsing.
	Sentinels []string `yaml:"sentinels,omitempty"`

	// SectionMarkers end index parsing when found in a row's text.
	SectionMarkers []string `yaml:"section_markers,omitempty"`

	// InfoTable is a CSS selector for the detail page's info table.
	InfoTable string `yaml:"info_table"`

	DecimalMark string `yaml:"decimal_mark"`

	// LanguageStopwords are link texts never taken as language names.
	LanguageStopwords []string `yaml:"language_stopwords,omitempty"`

	Labels Labels `yaml:"labels"`
}

// Validate returns an error if the profile cannot drive a crawl.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "profile name required")
	}
	if p.BaseURL == "" {
		return Errorf(EINVALID, "profile %q: base URL required", p.Name)
	}
	if _, err := url.Parse(p.BaseURL); err != nil {
		return Errorf(EINVALID, "profile %q: invalid base URL: %v", p.Name, err)
	}
	if p.IndexTable == "" {
		return Errorf(EINVALID, "profile %q: index table selector required", p.Name)
	}
	if p.InfoTable == "" {
		return Errorf(EINVALID, "profile %q: info table selector required", p.Name)
	}
	if p.IndexColumns.Name < 0 {
		return Errorf(EINVALID, "profile %q: name column must not be negative", p.Name)
	}
	if p.DecimalMark != DecimalPoint && p.DecimalMark != DecimalComma {
		return Errorf(EINVALID, "profile %q: decimal mark must be %q or %q", p.Name, DecimalPoint, DecimalComma)
	}
	return nil
}

// IndexURL returns the absolute URL of the index page.
func (p *Profile) IndexURL() (string, error) {
	base, err := url.Parse(p.BaseURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid base URL: %v", err)
	}
	ref, err := url.Parse(p.IndexPath)
	if err != nil {
		return "", Errorf(EINVALID, "invalid index path: %v", err)
	}
	return base.ResolveReference(ref).String(), nil
}

// IsSentinel reports whether name is an aggregate row that ends the index.
func (p *Profile) IsSentinel(name string) bool {
	name = strings.ToLower(CollapseSpace(name))
	return slices.ContainsFunc(p.Sentinels, func(s string) bool {
		return strings.ToLower(s) == name
	})
}

// IsSectionBreak reports whether row text opens an out-of-scope section.
func (p *Profile) IsSectionBreak(rowText string) bool {
	rowText = strings.ToLower(CollapseSpace(rowText))
	return slices.ContainsFunc(p.SectionMarkers, func(m string) bool {
		return strings.Contains(rowText, strings.ToLower(m))
	})
}

// Built-in profile names.
const (
	ProfileEnglish  = "en"
	ProfileRomanian = "ro"
)

// Profiles returns the built-in profiles keyed by name.
func Profiles() map[string]*Profile {
	return map[string]*Profile{
		ProfileEnglish:  EnglishProfile(),
		ProfileRomanian: RomanianProfile(),
	}
}

// EnglishProfile targets the English encyclopedia's population density list.
func EnglishProfile() *Profile {
	return &Profile{
		Name:       ProfileEnglish,
		BaseURL:    "https://en.wikipedia.org",
		IndexPath:  "/wiki/List_of_countries_and_dependencies_by_population_density",
		IndexTable: "table.wikitable",
		IndexColumns: IndexColumns{
			Name: 0,
		},
		LinkPrefix:        "/wiki/",
		Sentinels:         []string{"World", "World total"},
		SectionMarkers:    []string{"other states", "non-sovereign"},
		InfoTable:         "table.infobox",
		DecimalMark:       DecimalPoint,
		LanguageStopwords: []string{"de jure", "de facto"},
		Labels: Labels{
			Capital:    LabelRule{Match: []string{"capital"}},
			Population: LabelRule{Match: []string{"population"}, Exclude: []string{"density"}},
			Density:    LabelRule{Match: []string{"density"}},
			Area:       LabelRule{Match: []string{"area"}},
			Neighbours: LabelRule{Match: []string{"neighbours", "neighbors", "borders"}},
			Language: LabelRule{
				Match:   []string{"official language", "national language"},
				Exclude: []string{"recognised", "recognized", "minority", "regional"},
			},
			TimeZone:   LabelRule{Match: []string{"time zone"}},
			Government: LabelRule{Match: []string{"government"}, Exact: true},
		},
	}
}

// RomanianProfile targets the Romanian encyclopedia's population density list,
// where the index table also carries area, population and density.
func RomanianProfile() *Profile {
	return &Profile{
		Name:       ProfileRomanian,
		BaseURL:    "https://ro.wikipedia.org",
		IndexPath:  "/wiki/Lista_țărilor_după_densitatea_populației",
		IndexTable: "table",
		IndexColumns: IndexColumns{
			Name:       1,
			Area:       Ptr(2),
			Population: Ptr(3),
			Density:    Ptr(4),
		},
		LinkPrefix:        "/wiki/",
		Sentinels:         []string{"Globul"},
		SectionMarkers:    []string{"alte state"},
		InfoTable:         "table.infocaseta",
		DecimalMark:       DecimalComma,
		LanguageStopwords: []string{"de jure", "de facto"},
		Labels: Labels{
			Capital:    LabelRule{Match: []string{"capitala"}},
			Population: LabelRule{Match: []string{"populație"}, Exclude: []string{"densitate"}},
			Density:    LabelRule{Match: []string{"densitate"}},
			Area:       LabelRule{Match: []string{"suprafață"}},
			Neighbours: LabelRule{Match: []string{"vecini"}},
			Language: LabelRule{
				Match:   []string{"limbi oficiale", "limba oficială", "limbă națională"},
				Exclude: []string{"recunoscute", "minoritare"},
			},
			TimeZone:   LabelRule{Match: []string{"fus orar"}},
			Government: LabelRule{Match: []string{"sistem politic"}, Exact: true},
		},
	}
}
