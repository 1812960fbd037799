package worldfacts

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	plusRe     = regexp.MustCompile(`\s*\+\s*`)
	minusRe    = regexp.MustCompile(`\s*-\s*`)
	zoneNameRe = regexp.MustCompile(`(?i)\b(?:gmt|utc)`)
	offsetRe   = regexp.MustCompile(`UTC(?:[+-]\d{1,2}(?::\d{2})?)?`)

	dashReplacer = strings.NewReplacer("−", "-", "–", "-", "—", "-", "±", "+")
)

// CanonicalTimeZone converts time-zone cell text to "UTC" or "UTC±N[:NN]".
// Bare offsets such as "+2" get a UTC prefix, spacing around signs is
// removed and GMT is read as UTC. The first zone in the text wins.
func CanonicalTimeZone(text string) (string, bool) {
	text = CollapseSpace(StripCitations(dashReplacer.Replace(text)))
	if text == "" {
		return "", false
	}
	if r, _ := utf8.DecodeRuneInString(text); !unicode.IsLetter(r) {
		text = "UTC" + text
	}
	text = plusRe.ReplaceAllString(text, "+")
	text = minusRe.ReplaceAllString(text, "-")
	text = zoneNameRe.ReplaceAllString(text, "UTC")

	zone := offsetRe.FindString(text)
	return zone, zone != ""
}
