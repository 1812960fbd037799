package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/worldfacts"
)

// labeledRow is one info-table row: its normalized label, the text and
// link texts of its value cell, and the row that follows it. Tables that
// put a figure one row below its label are read through next.
type labeledRow struct {
	label string
	text  string
	links []string
	next  *labeledRow
}

// labeledRows turns every row of table into a labeledRow, keeping order.
// Rows without a header cell get an empty label but still serve as the
// next row of their predecessor.
func labeledRows(table *goquery.Selection) []*labeledRow {
	trs := table.Find("tr")
	rows := make([]*labeledRow, trs.Length())

	trs.Each(func(i int, tr *goquery.Selection) {
		row := &labeledRow{}
		if th := tr.ChildrenFiltered("th").First(); th.Length() > 0 {
			row.label = worldfacts.NormalizeLabel(th.Text())
		}
		if td := tr.ChildrenFiltered("td").First(); td.Length() > 0 {
			row.text = cellText(td)
			row.links = linkTexts(td)
		}
		rows[i] = row
	})

	for i := 0; i+1 < len(rows); i++ {
		rows[i].next = rows[i+1]
	}
	return rows
}
