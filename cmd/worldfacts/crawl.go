package main

import (
	"fmt"

	"github.com/fwojciec/worldfacts"
	"github.com/fwojciec/worldfacts/slog"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	indexURL, err := deps.Profile.IndexURL()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", worldfacts.ErrorMessage(err))
		return err
	}

	result, err := deps.Crawler.Crawl(deps.Ctx, indexURL, slog.NewProgressFunc(deps.Logger))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", worldfacts.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawl %s: %d discovered, %d harvested, %d failed\n",
		result.CrawlID, result.Discovered, result.Harvested, result.Failed)

	return nil
}
