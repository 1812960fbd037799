package worldfacts

import (
	"context"
	"time"
)

// Crawl records one completed pass over an index page.
type Crawl struct {
	ID         string    `json:"id"`
	SourceURL  string    `json:"sourceUrl"`
	Discovered int       `json:"discovered"`
	Harvested  int       `json:"harvested"`
	Failed     int       `json:"failed"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Validate returns an error if the crawl contains invalid fields.
func (c *Crawl) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "crawl source URL required")
	}
	if c.StartedAt.IsZero() {
		return Errorf(EINVALID, "crawl start time required")
	}
	return nil
}

// CrawlService represents a service for recording crawl runs.
type CrawlService interface {
	// CreateCrawl stores a crawl run. The ID is generated if empty.
	CreateCrawl(ctx context.Context, crawl *Crawl) error

	// FindCrawls returns crawl runs, most recent first.
	FindCrawls(ctx context.Context, filter CrawlFilter) ([]*Crawl, error)
}

// CrawlFilter represents a filter for FindCrawls.
type CrawlFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
