package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/worldfacts"
)

// Ensure LoggingCountryWriter implements worldfacts.CountryWriter.
var _ worldfacts.CountryWriter = (*LoggingCountryWriter)(nil)

// LoggingCountryWriter wraps a CountryWriter with logging of each batch.
type LoggingCountryWriter struct {
	next   worldfacts.CountryWriter
	logger *slog.Logger
}

// NewLoggingCountryWriter creates a new LoggingCountryWriter.
func NewLoggingCountryWriter(next worldfacts.CountryWriter, logger *slog.Logger) *LoggingCountryWriter {
	return &LoggingCountryWriter{next: next, logger: logger}
}

// InsertCountries delegates to the wrapped writer and logs the batch size.
func (w *LoggingCountryWriter) InsertCountries(ctx context.Context, countries []*worldfacts.Country) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("insert countries",
			"count", len(countries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.InsertCountries(ctx, countries)
}
