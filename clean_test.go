package worldfacts_test

import (
	"testing"

	"github.com/fwojciec/worldfacts"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "official languages", worldfacts.NormalizeLabel("Official languages[1]"))
	assert.Equal(t, "2023 estimate", worldfacts.NormalizeLabel(" • 2023 estimate"))
	assert.Equal(t, "government", worldfacts.NormalizeLabel("Government\n"))
}

func TestStripCitations(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bucharest", worldfacts.StripCitations("Bucharest[12]"))
	assert.Equal(t, "Romanian", worldfacts.StripCitations("Romanian[a][b]"))
	assert.Equal(t, "", worldfacts.StripCitations("[note 1]"))
}

func TestStripParentheticals(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Provisional government", worldfacts.StripParentheticals("Provisional government (interim)"))
	assert.Equal(t, "Republic", worldfacts.StripParentheticals("Republic (de facto (disputed))"))
}

func TestIsWordLike(t *testing.T) {
	t.Parallel()

	assert.True(t, worldfacts.IsWordLike("Bucharest"))
	assert.True(t, worldfacts.IsWordLike("São Tomé"))
	assert.True(t, worldfacts.IsWordLike("Congo (Brazzaville)"))
	assert.True(t, worldfacts.IsWordLike("Guinea-Bissau"))
	assert.False(t, worldfacts.IsWordLike("44°26′N 26°06′E"))
	assert.False(t, worldfacts.IsWordLike("*"))
	assert.False(t, worldfacts.IsWordLike("123"))
	assert.False(t, worldfacts.IsWordLike(""))
}

func TestLongestTextRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bucharest", worldfacts.LongestTextRun("Bucharest 44°26′N 26°06′E"))
	assert.Equal(t, "Amsterdam", worldfacts.LongestTextRun("Amsterdam[1] 52°22′N"))
	assert.Empty(t, worldfacts.LongestTextRun("[1] (2)"))
}

func TestFirstLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unitary republic", worldfacts.FirstLine("\n  Unitary republic\n• President\n"))
	assert.Empty(t, worldfacts.FirstLine(" \n "))
}

func TestNewSet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Hungary", "Ukraine"}, worldfacts.NewSet([]string{"Ukraine", "", "Hungary", "Ukraine"}))
	assert.Empty(t, worldfacts.NewSet(nil))
}

func TestJoinSet_SplitSet(t *testing.T) {
	t.Parallel()

	joined := worldfacts.JoinSet([]string{"Hungary", "Ukraine"})

	assert.Equal(t, "Hungary,Ukraine", joined)
	assert.Equal(t, []string{"Hungary", "Ukraine"}, worldfacts.SplitSet(" Ukraine ,Hungary"))
	assert.Nil(t, worldfacts.SplitSet(""))
}
