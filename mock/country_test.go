package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/worldfacts"
	"github.com/fwojciec/worldfacts/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryWriter_InsertCountries(t *testing.T) {
	t.Parallel()

	t.Run("delegates to InsertCountriesFn", func(t *testing.T) {
		t.Parallel()

		var calledWith []*worldfacts.Country
		w := &mock.CountryWriter{
			InsertCountriesFn: func(_ context.Context, countries []*worldfacts.Country) error {
				calledWith = countries
				return nil
			},
		}

		countries := []*worldfacts.Country{{Name: "Alpha"}, {Name: "Beta"}}

		err := w.InsertCountries(context.Background(), countries)

		require.NoError(t, err)
		assert.Equal(t, countries, calledWith)
	})
}
