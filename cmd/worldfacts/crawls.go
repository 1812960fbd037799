package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/worldfacts"
)

// Run executes the crawls command.
func (c *CrawlsCmd) Run(deps *Dependencies) error {
	crawls, err := deps.Crawls.FindCrawls(deps.Ctx, worldfacts.CrawlFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", worldfacts.ErrorMessage(err))
		return err
	}

	if len(crawls) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawls found. Use 'worldfacts crawl' to run one.")
		return nil
	}

	for _, cr := range crawls {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d/%d harvested  %d failed  %s\n",
			cr.ID,
			cr.StartedAt.Format(time.RFC3339),
			cr.Harvested,
			cr.Discovered,
			cr.Failed,
			cr.SourceURL,
		)
	}

	return nil
}
