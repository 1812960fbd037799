// Package goquery implements index discovery and info-table harvesting
// over HTML documents using goquery selections.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/worldfacts"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseHTML parses a page into a goquery document.
func parseHTML(s string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil, worldfacts.Errorf(worldfacts.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// cellText returns the text of a selection with line breaks where the
// markup has <br> tags or block elements, so callers can take the first line.
func cellText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeText(&b, n)
	}
	return b.String()
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Br:
			b.WriteByte('\n')
			return
		case atom.Style, atom.Script:
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}

	if n.Type == html.ElementNode && isBlock(n.DataAtom) {
		b.WriteByte('\n')
	}
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Ul, atom.Ol, atom.Dl, atom.Dt, atom.Dd, atom.Tr, atom.Table:
		return true
	}
	return false
}

// linkTexts returns the citation-stripped text of every anchor in sel,
// skipping anchors that are left empty.
func linkTexts(sel *goquery.Selection) []string {
	var texts []string
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		text := worldfacts.CollapseSpace(worldfacts.StripCitations(a.Text()))
		if text != "" {
			texts = append(texts, text)
		}
	})
	return texts
}
