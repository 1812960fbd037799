package goquery_test

import (
	"testing"

	"github.com/fwojciec/worldfacts"
	"github.com/fwojciec/worldfacts/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexParser_ParseIndex(t *testing.T) {
	t.Parallel()

	t.Run("returns entities in row order up to the sentinel", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<table class="wikitable">
<tr><th>Country</th><th>Density</th></tr>
<tr><td><a href="/wiki/Alpha">Alpha</a></td><td>100</td></tr>
<tr><td><a href="/wiki/Beta">Beta</a></td><td>50</td></tr>
<tr><td>World total</td><td>60</td></tr>
<tr><td><a href="/wiki/Gamma">Gamma</a></td><td>10</td></tr>
</table>
</body></html>`

		p := goquery.NewIndexParser(worldfacts.EnglishProfile())
		refs, err := p.ParseIndex(html)

		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "Alpha", refs[0].Name)
		assert.Equal(t, "/wiki/Alpha", refs[0].URL)
		assert.Equal(t, "Beta", refs[1].Name)
		assert.Equal(t, "/wiki/Beta", refs[1].URL)
	})

	t.Run("stops at an out-of-scope section", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<table class="wikitable">
<tr><td><a href="/wiki/Alpha">Alpha</a></td></tr>
<tr><td colspan="2">Other states and territories</td></tr>
<tr><td><a href="/wiki/Beta">Beta</a></td></tr>
</table>
</body></html>`

		p := goquery.NewIndexParser(worldfacts.EnglishProfile())
		refs, err := p.ParseIndex(html)

		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, "Alpha", refs[0].Name)
	})

	t.Run("returns empty list when the table is missing", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewIndexParser(worldfacts.EnglishProfile())
		refs, err := p.ParseIndex(`<html><body><p>Nothing here</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, refs)
	})

	t.Run("skips rows without a qualifying link", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<table class="wikitable">
<tr><td>Unlinked</td></tr>
<tr><td><a href="#note">Footnote</a></td></tr>
<tr><td><a href="https://example.com/x">External</a></td></tr>
<tr><td><a href="/wiki/File:Flag.svg"><img src="flag.png"></a> <a href="/wiki/Alpha">Alpha</a></td></tr>
</table>
</body></html>`

		p := goquery.NewIndexParser(worldfacts.EnglishProfile())
		refs, err := p.ParseIndex(html)

		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, "Alpha", refs[0].Name)
		assert.Equal(t, "/wiki/Alpha", refs[0].URL)
	})

	t.Run("keeps the first row for a repeated name", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<table class="wikitable">
<tr><td><a href="/wiki/Alpha">Alpha</a></td></tr>
<tr><td><a href="/wiki/Alpha_(region)">Alpha</a></td></tr>
</table>
</body></html>`

		p := goquery.NewIndexParser(worldfacts.EnglishProfile())
		refs, err := p.ParseIndex(html)

		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, "/wiki/Alpha", refs[0].URL)
	})

	t.Run("strips citation marks from names", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<table class="wikitable">
<tr><td><a href="/wiki/Alpha">Alpha[a]</a></td></tr>
</table>
</body></html>`

		p := goquery.NewIndexParser(worldfacts.EnglishProfile())
		refs, err := p.ParseIndex(html)

		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, "Alpha", refs[0].Name)
	})

	t.Run("reads figure columns with a decimal comma", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<table>
<tr><th>#</th><th>Țară</th><th>Suprafață</th><th>Populație</th><th>Densitate</th></tr>
<tr><td>1</td><td><a href="/wiki/Monaco">Monaco</a></td><td>2,02</td><td>38.300</td><td>18.960,2</td></tr>
<tr><td>2</td><td><a href="/wiki/Singapore">Singapore</a></td><td>n/a</td><td>5.637.000</td><td>-7.804</td></tr>
<tr><td></td><td>Globul</td><td></td><td></td><td></td></tr>
</table>
</body></html>`

		p := goquery.NewIndexParser(worldfacts.RomanianProfile())
		refs, err := p.ParseIndex(html)

		require.NoError(t, err)
		require.Len(t, refs, 2)

		monaco := refs[0].Figures
		require.NotNil(t, monaco.Area)
		require.NotNil(t, monaco.Population)
		require.NotNil(t, monaco.Density)
		assert.InDelta(t, 2.02, *monaco.Area, 1e-9)
		assert.Equal(t, int64(38300), *monaco.Population)
		assert.InDelta(t, 18960.2, *monaco.Density, 1e-9)

		singapore := refs[1].Figures
		assert.Nil(t, singapore.Area)
		require.NotNil(t, singapore.Population)
		assert.Equal(t, int64(5637000), *singapore.Population)
		require.NotNil(t, singapore.Density)
		assert.InDelta(t, 7804.0, *singapore.Density, 1e-9)
	})

	t.Run("reads figure columns grouped with plain spaces", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<table>
<tr><td>1</td><td><a href="/wiki/Alpha">Alpha</a></td><td>2 345</td><td>1 234 567</td><td>526,4</td></tr>
</table>
</body></html>`

		p := goquery.NewIndexParser(worldfacts.RomanianProfile())
		refs, err := p.ParseIndex(html)

		require.NoError(t, err)
		require.Len(t, refs, 1)

		figures := refs[0].Figures
		require.NotNil(t, figures.Area)
		require.NotNil(t, figures.Population)
		require.NotNil(t, figures.Density)
		assert.InDelta(t, 2345.0, *figures.Area, 1e-9)
		assert.Equal(t, int64(1234567), *figures.Population)
		assert.InDelta(t, 526.4, *figures.Density, 1e-9)
	})

	t.Run("leaves figures empty when the profile has no figure columns", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<table class="wikitable">
<tr><td><a href="/wiki/Alpha">Alpha</a></td><td>1,000</td></tr>
</table>
</body></html>`

		p := goquery.NewIndexParser(worldfacts.EnglishProfile())
		refs, err := p.ParseIndex(html)

		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, worldfacts.Figures{}, refs[0].Figures)
	})
}
