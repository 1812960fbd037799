package mock

import (
	"context"

	"github.com/fwojciec/worldfacts"
)

var _ worldfacts.CountryWriter = (*CountryWriter)(nil)

// CountryWriter is a mock implementation of worldfacts.CountryWriter.
type CountryWriter struct {
	InsertCountriesFn func(ctx context.Context, countries []*worldfacts.Country) error
}

func (w *CountryWriter) InsertCountries(ctx context.Context, countries []*worldfacts.Country) error {
	return w.InsertCountriesFn(ctx, countries)
}

var _ worldfacts.CountryService = (*CountryService)(nil)

// CountryService is a mock implementation of worldfacts.CountryService.
type CountryService struct {
	InsertCountriesFn func(ctx context.Context, countries []*worldfacts.Country) error
	FindCountriesFn   func(ctx context.Context, filter worldfacts.CountryFilter) ([]*worldfacts.Country, error)
}

func (s *CountryService) InsertCountries(ctx context.Context, countries []*worldfacts.Country) error {
	return s.InsertCountriesFn(ctx, countries)
}

func (s *CountryService) FindCountries(ctx context.Context, filter worldfacts.CountryFilter) ([]*worldfacts.Country, error) {
	return s.FindCountriesFn(ctx, filter)
}
