package mock

import (
	"context"

	"github.com/fwojciec/worldfacts"
)

var _ worldfacts.CrawlService = (*CrawlService)(nil)

// CrawlService is a mock implementation of worldfacts.CrawlService.
type CrawlService struct {
	CreateCrawlFn func(ctx context.Context, crawl *worldfacts.Crawl) error
	FindCrawlsFn  func(ctx context.Context, filter worldfacts.CrawlFilter) ([]*worldfacts.Crawl, error)
}

func (s *CrawlService) CreateCrawl(ctx context.Context, crawl *worldfacts.Crawl) error {
	return s.CreateCrawlFn(ctx, crawl)
}

func (s *CrawlService) FindCrawls(ctx context.Context, filter worldfacts.CrawlFilter) ([]*worldfacts.Crawl, error) {
	return s.FindCrawlsFn(ctx, filter)
}
