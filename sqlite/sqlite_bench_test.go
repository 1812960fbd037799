package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/worldfacts"
	"github.com/fwojciec/worldfacts/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkInsertCountries measures storing one full crawl pass as a single
// batch, the way the crawler hands its results to the sink.
func BenchmarkInsertCountries(b *testing.B) {
	const countriesPerCrawl = 250

	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	svc := sqlite.NewCountryService(db)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		crawlID := fmt.Sprintf("crawl-%d", i)
		batch := make([]*worldfacts.Country, countriesPerCrawl)
		for j := range batch {
			batch[j] = &worldfacts.Country{
				Name:       fmt.Sprintf("Country %d", j),
				Capital:    worldfacts.Ptr(fmt.Sprintf("Capital %d", j)),
				Population: worldfacts.Ptr(int64(1000 * j)),
				Density:    worldfacts.Ptr(float64(j) + 0.5),
				Area:       worldfacts.Ptr(float64(j) + 1),
				Languages:  []string{"alphan", "betan"},
				TimeZone:   worldfacts.Ptr("UTC+1"),
				CrawlID:    crawlID,
			}
		}
		if err := svc.InsertCountries(ctx, batch); err != nil {
			b.Fatal(err)
		}
	}
}
