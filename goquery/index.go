package goquery

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/worldfacts"
)

var _ worldfacts.IndexParser = (*IndexParser)(nil)

// IndexParser discovers countries from the index table described by a profile.
// It is safe for concurrent use.
type IndexParser struct {
	profile *worldfacts.Profile
}

// NewIndexParser creates a new IndexParser for the profile.
func NewIndexParser(profile *worldfacts.Profile) *IndexParser {
	return &IndexParser{profile: profile}
}

// ParseIndex returns one reference per country row, in row order.
//
// Parsing stops at the first sentinel row (an aggregate such as "World total")
// or at the first row opening an out-of-scope section. Rows without a name
// cell or a qualifying link are skipped. Repeated names keep the first row.
func (p *IndexParser) ParseIndex(html string) ([]worldfacts.EntityRef, error) {
	doc, err := parseHTML(html)
	if err != nil {
		return nil, err
	}

	refs := []worldfacts.EntityRef{}

	table := doc.Find(p.profile.IndexTable).First()
	if table.Length() == 0 {
		return refs, nil
	}

	seen := make(map[string]bool)
	table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if p.profile.IsSectionBreak(row.Text()) {
			return false
		}

		cells := row.ChildrenFiltered("td")
		col := p.profile.IndexColumns.Name
		if col >= cells.Length() {
			return true
		}
		cell := cells.Eq(col)

		link := p.detailLink(cell)
		name := worldfacts.CollapseSpace(worldfacts.StripCitations(link.Text()))
		if link.Length() == 0 {
			name = worldfacts.CollapseSpace(worldfacts.StripCitations(cell.Text()))
		}
		if p.profile.IsSentinel(name) {
			return false
		}

		if link.Length() == 0 || name == "" || seen[name] {
			return true
		}
		href, _ := link.Attr("href")

		seen[name] = true
		refs = append(refs, worldfacts.EntityRef{
			Name:    name,
			URL:     href,
			Figures: p.figures(cells),
		})
		return true
	})

	return refs, nil
}

// detailLink returns the first anchor in cell that points at a detail page.
// Fragment links, links outside the profile's link prefix and anchors
// without text (flag images) do not qualify.
func (p *IndexParser) detailLink(cell *goquery.Selection) *goquery.Selection {
	return cell.Find("a[href]").FilterFunction(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			return false
		}
		if prefix := p.profile.LinkPrefix; prefix != "" && !strings.Contains(href, prefix) {
			return false
		}
		return strings.TrimSpace(a.Text()) != ""
	}).First()
}

// figures reads the optional numeric columns of an index row.
func (p *IndexParser) figures(cells *goquery.Selection) worldfacts.Figures {
	var f worldfacts.Figures
	cols := p.profile.IndexColumns

	if text, ok := columnText(cells, cols.Population); ok {
		if n, ok := worldfacts.ParseInt(text); ok && n >= 0 {
			f.Population = &n
		}
	}
	if text, ok := columnText(cells, cols.Area); ok {
		if v, ok := worldfacts.ParseFloat(text, p.profile.DecimalMark); ok && v > 0 {
			f.Area = &v
		}
	}
	if text, ok := columnText(cells, cols.Density); ok {
		if v, ok := worldfacts.ParseFloat(text, p.profile.DecimalMark); ok {
			v = math.Abs(v)
			f.Density = &v
		}
	}
	return f
}

func columnText(cells *goquery.Selection, col *int) (string, bool) {
	if col == nil || *col < 0 || *col >= cells.Length() {
		return "", false
	}
	return strings.TrimSpace(cells.Eq(*col).Text()), true
}
