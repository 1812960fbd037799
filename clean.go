package worldfacts

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

var (
	citationRe     = regexp.MustCompile(`\[[^\]]*\]`)
	parentheticRe  = regexp.MustCompile(`\([^()]*\)`)
	wordLikeRe     = regexp.MustCompile(`^[\p{L}\p{M}\p{N}()'’.\-\s]+$`)
	nonWordRunRe   = regexp.MustCompile(`[^0-9()\[\]]+`)
	labelBulletsRe = regexp.MustCompile(`^[•·\-–—\s]+`)
)

// CollapseSpace trims s and collapses every run of Unicode whitespace,
// including non-breaking spaces, into a single ASCII space.
func CollapseSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\u200b'
}

// NormalizeLabel lower-cases an info-table label, collapses whitespace,
// drops leading bullets and citation markers.
func NormalizeLabel(label string) string {
	label = StripCitations(label)
	label = CollapseSpace(label)
	label = labelBulletsRe.ReplaceAllString(label, "")
	return strings.ToLower(label)
}

// StripCitations removes bracketed citation markers such as "[12]" or "[a]".
func StripCitations(s string) string {
	return strings.TrimSpace(citationRe.ReplaceAllString(s, ""))
}

// StripParentheticals removes parenthetical asides such as "(interim)".
// Nested parentheses are removed from the inside out.
func StripParentheticals(s string) string {
	for {
		out := parentheticRe.ReplaceAllString(s, "")
		if out == s {
			break
		}
		s = out
	}
	return CollapseSpace(s)
}

// IsWordLike reports whether s looks like a name: letters, digits,
// parentheses and name punctuation only, with at least one letter.
func IsWordLike(s string) bool {
	if !wordLikeRe.MatchString(s) {
		return false
	}
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

// LongestTextRun returns the longest run of characters in s that contains no
// digits, parentheses or brackets, trimmed of surrounding punctuation.
// Returns "" when s holds no such run.
func LongestTextRun(s string) string {
	var best string
	for _, run := range nonWordRunRe.FindAllString(s, -1) {
		run = strings.Trim(CollapseSpace(run), " ,;:/")
		if len([]rune(run)) > len([]rune(best)) {
			best = run
		}
	}
	return best
}

// FirstLine returns the first non-blank line of s.
func FirstLine(s string) string {
	for line := range strings.SplitSeq(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// NewSet returns the distinct non-empty values, sorted.
func NewSet(values []string) []string {
	set := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		set = append(set, v)
	}
	slices.Sort(set)
	return slices.Compact(set)
}

// JoinSet joins a set into the comma separated form used for storage.
func JoinSet(set []string) string {
	return strings.Join(set, ",")
}

// SplitSet parses the comma separated storage form back into a set.
func SplitSet(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return NewSet(parts)
}
