// Package crawl provides country harvesting orchestration.
// It coordinates index discovery, detail fetching, field extraction,
// normalization and storage of country records.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/worldfacts"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of detail pages fetched in parallel when
// Crawler.Concurrency is not set.
const DefaultConcurrency = 10

// Crawler orchestrates one harvesting pass over an index page.
type Crawler struct {
	Fetcher    worldfacts.Fetcher
	Index      worldfacts.IndexParser
	Details    worldfacts.DetailParser
	Normalizer worldfacts.Normalizer
	Countries  worldfacts.CountryWriter

	// Crawls records the run when set.
	Crawls worldfacts.CrawlService

	// RateLimiter throttles requests per host when set.
	RateLimiter worldfacts.DomainLimiter

	Concurrency int
	RetryDelays []time.Duration

	// FetchTimeout bounds each fetch attempt. Zero means no bound beyond ctx.
	FetchTimeout time.Duration
}

// Result holds the outcome of a crawl pass.
type Result struct {
	CrawlID    string
	Discovered int
	Harvested  int
	Failed     int
}

// ProgressEvent reports progress during a crawl pass.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
// It is always called from the goroutine running Crawl.
type ProgressFunc func(event ProgressEvent)

// harvestResult holds the outcome of harvesting a single entity.
type harvestResult struct {
	position int
	ref      worldfacts.EntityRef
	country  *worldfacts.Country
	err      error
}

// Crawl discovers countries from the index page at indexURL, harvests each
// detail page, and hands the finished records to Countries in index order
// with a single InsertCountries call.
//
// A failure to fetch or parse the index page aborts the pass. A failure on
// a single detail page skips that country and is reported through progress,
// as is a country whose normalized name repeats an earlier one.
// Nothing is stored when ctx is canceled before all workers finish.
func (c *Crawler) Crawl(ctx context.Context, indexURL string, progress ProgressFunc) (*Result, error) {
	startedAt := time.Now().UTC()
	crawlID := uuid.NewString()

	base, err := url.Parse(indexURL)
	if err != nil {
		return nil, worldfacts.Errorf(worldfacts.EINVALID, "invalid index URL %q: %v", indexURL, err)
	}

	html, err := c.fetch(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}

	refs, err := c.Index.ParseIndex(html)
	if err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}

	total := len(refs)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
			URL:   indexURL,
		})
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan harvestResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, ref := range refs {
			g.Go(func() error {
				resultCh <- c.harvest(gctx, base, crawlID, i, ref)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in index order.
	results := make([]harvestResult, total)
	var completed, failed int
	for result := range resultCh {
		completed++
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Name:      result.ref.Name,
			URL:       result.ref.URL,
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Names are unique per crawl after normalization. Two index names that
	// fold to the same text keep the first in index order.
	countries := make([]*worldfacts.Country, 0, total)
	seen := make(map[string]bool, total)
	for _, result := range results {
		if result.err != nil {
			failed++
			continue
		}
		if seen[result.country.Name] {
			failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: total,
					Total:     total,
					Name:      result.ref.Name,
					URL:       result.ref.URL,
					Error:     worldfacts.Errorf(worldfacts.ECONFLICT, "country %q already harvested in this crawl", result.country.Name),
				})
			}
			continue
		}
		seen[result.country.Name] = true
		countries = append(countries, result.country)
	}

	if len(countries) > 0 {
		if err := c.Countries.InsertCountries(ctx, countries); err != nil {
			return nil, fmt.Errorf("insert countries: %w", err)
		}
	}

	if c.Crawls != nil {
		crawl := &worldfacts.Crawl{
			ID:         crawlID,
			SourceURL:  indexURL,
			Discovered: total,
			Harvested:  len(countries),
			Failed:     failed,
			StartedAt:  startedAt,
			FinishedAt: time.Now().UTC(),
		}
		if err := c.Crawls.CreateCrawl(ctx, crawl); err != nil {
			return nil, fmt.Errorf("record crawl: %w", err)
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
			URL:       indexURL,
		})
	}

	return &Result{
		CrawlID:    crawlID,
		Discovered: total,
		Harvested:  len(countries),
		Failed:     failed,
	}, nil
}

// harvest fetches and parses the detail page of one entity.
func (c *Crawler) harvest(ctx context.Context, base *url.URL, crawlID string, position int, ref worldfacts.EntityRef) harvestResult {
	result := harvestResult{position: position, ref: ref}

	detailURL, err := resolve(base, ref.URL)
	if err != nil {
		result.err = err
		return result
	}
	result.ref.URL = detailURL

	html, err := c.fetch(ctx, detailURL)
	if err != nil {
		result.err = err
		return result
	}

	country, err := c.Details.ParseDetail(html, ref.Name)
	if err != nil {
		result.err = err
		return result
	}
	applyFigures(country, ref.Figures)

	if c.Normalizer != nil {
		country = c.Normalizer.NormalizeCountry(country)
	}
	country.SourceURL = detailURL
	country.SourceHash = ComputeHash(html)
	country.CrawlID = crawlID

	if err := country.Validate(); err != nil {
		result.err = err
		return result
	}

	result.country = country
	return result
}

// fetch retrieves url, waiting on the rate limiter and retrying failures.
func (c *Crawler) fetch(ctx context.Context, rawURL string) (string, error) {
	if c.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", worldfacts.Errorf(worldfacts.EINVALID, "invalid URL %q: %v", rawURL, err)
		}
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		if c.FetchTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.FetchTimeout)
			defer cancel()
		}
		return c.Fetcher.Fetch(ctx, url)
	}
	return FetchWithRetry(ctx, rawURL, fetchFn, delays)
}

// applyFigures fills fields the detail page left absent from the index row.
func applyFigures(c *worldfacts.Country, f worldfacts.Figures) {
	if c.Population == nil && f.Population != nil {
		c.Population = worldfacts.Ptr(*f.Population)
	}
	if c.Density == nil && f.Density != nil {
		c.Density = worldfacts.Ptr(*f.Density)
	}
	if c.Area == nil && f.Area != nil {
		c.Area = worldfacts.Ptr(*f.Area)
	}
}

// resolve makes a detail link absolute against the index page URL.
func resolve(base *url.URL, ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", worldfacts.Errorf(worldfacts.EINVALID, "invalid detail link %q: %v", ref, err)
	}
	return base.ResolveReference(u).String(), nil
}

// ComputeHash computes a hash of the content using xxhash.
// It matches the SourceHash stored on harvested countries.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
