package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fwojciec/worldfacts"
	"github.com/nao1215/markdown"
)

var listHeader = []string{"NAME", "CAPITAL", "POPULATION", "DENSITY", "AREA", "LANGUAGES", "TIME ZONE"}

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := worldfacts.CountryFilter{
		SortBy: c.Sort,
		Desc:   c.Desc,
		Offset: c.Offset,
		Limit:  c.Limit,
	}
	if c.Name != "" {
		filter.Name = &c.Name
	}

	switch {
	case c.Crawl != "":
		filter.CrawlID = &c.Crawl
	case !c.All:
		crawls, err := deps.Crawls.FindCrawls(deps.Ctx, worldfacts.CrawlFilter{Limit: 1})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", worldfacts.ErrorMessage(err))
			return err
		}
		if len(crawls) == 0 {
			fmt.Fprintln(deps.Stdout, "No countries found. Use 'worldfacts crawl' to harvest some.")
			return nil
		}
		filter.CrawlID = &crawls[0].ID
	}

	countries, err := deps.Countries.FindCountries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", worldfacts.ErrorMessage(err))
		return err
	}

	if len(countries) == 0 {
		fmt.Fprintln(deps.Stdout, "No countries found. Use 'worldfacts crawl' to harvest some.")
		return nil
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		for _, country := range countries {
			if err := enc.Encode(country); err != nil {
				return err
			}
		}
		return nil
	}

	rows := make([][]string, 0, len(countries))
	for _, country := range countries {
		rows = append(rows, []string{
			country.Name,
			stringOrDash(country.Capital),
			intOrDash(country.Population),
			floatOrDash(country.Density),
			floatOrDash(country.Area),
			setOrDash(country.Languages),
			stringOrDash(country.TimeZone),
		})
	}

	if c.Markdown {
		return markdown.NewMarkdown(deps.Stdout).
			Table(markdown.TableSet{Header: listHeader, Rows: rows}).
			Build()
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(listHeader, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

func stringOrDash(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}

func intOrDash(p *int64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatInt(*p, 10)
}

func floatOrDash(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func setOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
