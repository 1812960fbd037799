// Package text implements transliteration of harvested country fields to
// plain characters using golang.org/x/text.
package text

import (
	"strings"
	"unicode"

	"github.com/fwojciec/worldfacts"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var _ worldfacts.Normalizer = (*Transliterator)(nil)

// letterReplacer maps letters that do not decompose into a base letter plus
// combining marks, and typographic punctuation, to ASCII.
var letterReplacer = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ħ", "h", "Ħ", "H",
	"ı", "i",
	"þ", "th", "Þ", "Th",
	"ð", "d", "Ð", "D",
	"‘", "'", "’", "'", "ʻ", "'", "ʼ", "'",
	"“", `"`, "”", `"`,
	"–", "-", "—", "-", "−", "-",
	"\u00a0", " ",
)

// Transliterator maps accented and special characters in a country's text
// fields to their closest unaccented form. It is safe for concurrent use.
type Transliterator struct{}

// NewTransliterator creates a new Transliterator.
func NewTransliterator() *Transliterator {
	return &Transliterator{}
}

// NormalizeCountry returns a copy of c with every text field transliterated.
// Numeric fields are copied unchanged. Sets are transliterated element-wise
// and re-collected, since two accented names may fold to the same value.
func (t *Transliterator) NormalizeCountry(c *worldfacts.Country) *worldfacts.Country {
	out := c.Clone()

	out.Name = t.String(out.Name)
	out.Capital = t.stringPtr(out.Capital)
	out.TimeZone = t.stringPtr(out.TimeZone)
	out.Government = t.stringPtr(out.Government)
	out.Neighbours = t.set(out.Neighbours)
	out.Languages = t.set(out.Languages)

	return out
}

// String transliterates s. Plain ASCII input is returned unchanged.
func (t *Transliterator) String(s string) string {
	if isASCII(s) {
		return s
	}

	// Transformers keep state, so each call builds its own chain.
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(chain, letterReplacer.Replace(s))
	if err != nil {
		return s
	}
	return folded
}

func (t *Transliterator) stringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := t.String(*p)
	return &s
}

func (t *Transliterator) set(values []string) []string {
	if values == nil {
		return nil
	}
	changed := false
	folded := make([]string, len(values))
	for i, v := range values {
		folded[i] = t.String(v)
		changed = changed || folded[i] != v
	}
	if !changed {
		return folded
	}
	return worldfacts.NewSet(folded)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
