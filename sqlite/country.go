package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/worldfacts"
)

// Compile-time interface verification.
var _ worldfacts.CountryService = (*CountryService)(nil)

// countryColumns lists the columns read by FindCountries, in scan order.
const countryColumns = "name, capital, population, density, area, neighbours, languages, time_zone, government, source_url, source_hash, crawl_id"

// sortColumns maps CountryFilter.SortBy values to columns.
var sortColumns = map[string]string{
	"":                          "id",
	worldfacts.SortByName:       "name",
	worldfacts.SortByPopulation: "population",
	worldfacts.SortByDensity:    "density",
	worldfacts.SortByArea:       "area",
}

// CountryService implements worldfacts.CountryService using SQLite.
type CountryService struct {
	db *DB
}

// NewCountryService creates a new CountryService.
func NewCountryService(db *DB) *CountryService {
	return &CountryService{db: db}
}

// InsertCountries stores the batch in one transaction. Either every country
// is stored or none is. Sets are stored comma-joined.
func (s *CountryService) InsertCountries(ctx context.Context, countries []*worldfacts.Country) error {
	for _, c := range countries {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO countries (crawl_id, name, capital, population, density, area, neighbours, languages, time_zone, government, source_url, source_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	createdAt := formatTime(time.Now())
	for _, c := range countries {
		_, err := stmt.ExecContext(ctx,
			c.CrawlID, c.Name, nullString(c.Capital), nullInt64(c.Population),
			nullFloat64(c.Density), nullFloat64(c.Area),
			worldfacts.JoinSet(c.Neighbours), worldfacts.JoinSet(c.Languages),
			nullString(c.TimeZone), nullString(c.Government),
			c.SourceURL, c.SourceHash, createdAt,
		)
		if err != nil {
			return constraintError(err, "country %q already stored for this crawl", c.Name)
		}
	}

	return tx.Commit()
}

// FindCountries retrieves countries matching the filter. Countries without
// a value for the sort column come last in either direction.
func (s *CountryService) FindCountries(ctx context.Context, filter worldfacts.CountryFilter) ([]*worldfacts.Country, error) {
	column, ok := sortColumns[filter.SortBy]
	if !ok {
		return nil, worldfacts.Errorf(worldfacts.EINVALID, "unknown sort field %q", filter.SortBy)
	}

	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + countryColumns + " FROM countries WHERE 1=1")

	if filter.Name != nil {
		query.WriteString(" AND name = ? COLLATE NOCASE")
		args = append(args, *filter.Name)
	}
	if filter.CrawlID != nil {
		query.WriteString(" AND crawl_id = ?")
		args = append(args, *filter.CrawlID)
	}

	direction := "ASC"
	if filter.Desc {
		direction = "DESC"
	}
	fmt.Fprintf(&query, " ORDER BY %s IS NULL, %s %s, id ASC", column, column, direction)

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := []*worldfacts.Country{}
	for rows.Next() {
		var c worldfacts.Country
		var capital, timeZone, government sql.NullString
		var population sql.NullInt64
		var density, area sql.NullFloat64
		var neighbours, languages string

		if err := rows.Scan(&c.Name, &capital, &population, &density, &area,
			&neighbours, &languages, &timeZone, &government,
			&c.SourceURL, &c.SourceHash, &c.CrawlID); err != nil {
			return nil, err
		}

		c.Capital = stringPtr(capital)
		c.Population = int64Ptr(population)
		c.Density = float64Ptr(density)
		c.Area = float64Ptr(area)
		c.Neighbours = worldfacts.SplitSet(neighbours)
		c.Languages = worldfacts.SplitSet(languages)
		c.TimeZone = stringPtr(timeZone)
		c.Government = stringPtr(government)

		countries = append(countries, &c)
	}

	return countries, rows.Err()
}
