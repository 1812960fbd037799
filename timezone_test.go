package worldfacts_test

import (
	"testing"

	"github.com/fwojciec/worldfacts"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalTimeZone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"GMT spelling", "GMT+2", "UTC+2", true},
		{"spaced offset", "UTC + 2", "UTC+2", true},
		{"bare offset", "+2", "UTC+2", true},
		{"bare offset with spaces", " + 2 ", "UTC+2", true},
		{"negative offset with unicode minus", "UTC−3", "UTC-3", true},
		{"half hour offset", "UTC+5:30 (IST)", "UTC+5:30", true},
		{"plain UTC", "UTC (GMT)", "UTC", true},
		{"citation stripped", "UTC+2[4]", "UTC+2", true},
		{"zone name first", "EET (UTC+2)", "UTC+2", true},
		{"lowercase gmt", "gmt - 1", "UTC-1", true},
		{"no zone", "Eastern European Time", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := worldfacts.CanonicalTimeZone(tt.input)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("equivalent spellings share one canonical value", func(t *testing.T) {
		t.Parallel()

		a, _ := worldfacts.CanonicalTimeZone("GMT+2")
		b, _ := worldfacts.CanonicalTimeZone("UTC + 2")
		c, _ := worldfacts.CanonicalTimeZone("+2")

		assert.Equal(t, a, b)
		assert.Equal(t, b, c)
	})
}
