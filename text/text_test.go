package text_test

import (
	"testing"

	"github.com/fwojciec/worldfacts"
	"github.com/fwojciec/worldfacts/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransliterator_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"București", "Bucuresti"},
		{"Côte d’Ivoire", "Cote d'Ivoire"},
		{"São Tomé și Príncipe", "Sao Tome si Principe"},
		{"Reykjavík", "Reykjavik"},
		{"Łódź", "Lodz"},
		{"Færøerne", "Faeroerne"},
		{"Straße", "Strasse"},
		{"Plain ASCII", "Plain ASCII"},
		{"", ""},
	}

	tr := text.NewTransliterator()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.String(tt.in))
		})
	}
}

func TestTransliterator_NormalizeCountry(t *testing.T) {
	t.Parallel()

	t.Run("transliterates text fields and keeps numbers", func(t *testing.T) {
		t.Parallel()

		in := &worldfacts.Country{
			Name:       "România",
			Capital:    worldfacts.Ptr("București"),
			Population: worldfacts.Ptr(int64(19051562)),
			Density:    worldfacts.Ptr(79.9),
			Area:       worldfacts.Ptr(238397.0),
			Neighbours: []string{"Moldova", "Ucraina", "Ungaria"},
			Languages:  []string{"română"},
			TimeZone:   worldfacts.Ptr("UTC+2"),
			Government: worldfacts.Ptr("Republică semiprezidențială"),
			SourceURL:  "https://ro.wikipedia.org/wiki/Rom%C3%A2nia",
		}

		got := text.NewTransliterator().NormalizeCountry(in)

		assert.Equal(t, "Romania", got.Name)
		require.NotNil(t, got.Capital)
		assert.Equal(t, "Bucuresti", *got.Capital)
		assert.Equal(t, []string{"romana"}, got.Languages)
		require.NotNil(t, got.Government)
		assert.Equal(t, "Republica semiprezidentiala", *got.Government)
		assert.Equal(t, in.Population, got.Population)
		assert.Equal(t, in.SourceURL, got.SourceURL)
	})

	t.Run("leaves the input untouched", func(t *testing.T) {
		t.Parallel()

		in := &worldfacts.Country{Name: "Österreich", Capital: worldfacts.Ptr("Wien")}

		_ = text.NewTransliterator().NormalizeCountry(in)

		assert.Equal(t, "Österreich", in.Name)
	})

	t.Run("ASCII country is returned field for field identical", func(t *testing.T) {
		t.Parallel()

		in := &worldfacts.Country{
			Name:       "Alpha",
			Capital:    worldfacts.Ptr("Alphaville"),
			Population: worldfacts.Ptr(int64(1234567)),
			Neighbours: []string{"Beta", "Gamma"},
			Languages:  []string{"alphan"},
			TimeZone:   worldfacts.Ptr("UTC"),
		}

		got := text.NewTransliterator().NormalizeCountry(in)

		assert.Equal(t, in, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		tr := text.NewTransliterator()
		in := &worldfacts.Country{
			Name:      "Türkiye",
			Languages: []string{"türkçe"},
		}

		once := tr.NormalizeCountry(in)
		twice := tr.NormalizeCountry(once)

		assert.Equal(t, once, twice)
	})

	t.Run("merges names that fold together", func(t *testing.T) {
		t.Parallel()

		in := &worldfacts.Country{Name: "Alpha", Languages: []string{"espanol", "español"}}

		got := text.NewTransliterator().NormalizeCountry(in)

		assert.Equal(t, []string{"espanol"}, got.Languages)
	})
}
