package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/worldfacts"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ worldfacts.CrawlService = (*CrawlService)(nil)

// CrawlService implements worldfacts.CrawlService using SQLite.
type CrawlService struct {
	db *DB
}

// NewCrawlService creates a new CrawlService.
func NewCrawlService(db *DB) *CrawlService {
	return &CrawlService{db: db}
}

// CreateCrawl stores a crawl run, generating its ID when empty and its
// finish time when zero.
func (s *CrawlService) CreateCrawl(ctx context.Context, crawl *worldfacts.Crawl) error {
	if err := crawl.Validate(); err != nil {
		return err
	}

	if crawl.ID == "" {
		crawl.ID = uuid.New().String()
	}
	if crawl.FinishedAt.IsZero() {
		crawl.FinishedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO crawls (id, source_url, discovered, harvested, failed, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, crawl.ID, crawl.SourceURL, crawl.Discovered, crawl.Harvested, crawl.Failed,
		formatTime(crawl.StartedAt), formatTime(crawl.FinishedAt))

	if err != nil {
		return constraintError(err, "crawl %q already exists", crawl.ID)
	}
	return nil
}

// FindCrawls retrieves crawl runs matching the filter, most recent first.
func (s *CrawlService) FindCrawls(ctx context.Context, filter worldfacts.CrawlFilter) ([]*worldfacts.Crawl, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, discovered, harvested, failed, started_at, finished_at FROM crawls WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY started_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crawls := []*worldfacts.Crawl{}
	for rows.Next() {
		var crawl worldfacts.Crawl
		var startedAt, finishedAt string

		if err := rows.Scan(&crawl.ID, &crawl.SourceURL, &crawl.Discovered, &crawl.Harvested,
			&crawl.Failed, &startedAt, &finishedAt); err != nil {
			return nil, err
		}

		if crawl.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if crawl.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		crawls = append(crawls, &crawl)
	}

	return crawls, rows.Err()
}
