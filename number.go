package worldfacts

import (
	"regexp"
	"strconv"
	"strings"
)

// numberRe finds the first signed numeric token. Grouping may use dots,
// commas, plain spaces and non-breaking or thin spaces. Plain-space groups
// are checked afterwards by trimSpaceGroups.
var numberRe = regexp.MustCompile(`[-\x{2212}]?\d[\d.,\x{00a0}\x{202f}\x{2009} ]*`)

var spaceGroupReplacer = strings.NewReplacer("\u00a0", "", "\u202f", "", "\u2009", "")

// findNumber returns the first numeric token of s with spacing removed,
// trailing separators trimmed and the minus sign normalized to ASCII.
func findNumber(s string) (string, bool) {
	tok := numberRe.FindString(s)
	if tok == "" {
		return "", false
	}
	tok = trimSpaceGroups(tok)
	tok = spaceGroupReplacer.Replace(tok)
	tok = strings.Replace(tok, "\u2212", "-", 1)
	tok = strings.TrimRight(tok, ".,")
	return tok, tok != "" && tok != "-"
}

// trimSpaceGroups joins groups separated by a single plain space and cuts
// the token where that grouping breaks. A space joins two parts only when
// the digits before it are at most three and the part after it opens with
// exactly three digits, so "1,234 2023" stops before the year while
// "19 051 562" is read whole.
func trimSpaceGroups(tok string) string {
	parts := strings.Split(tok, " ")
	out := parts[0]
	for _, p := range parts[1:] {
		if trailingDigits(out) > 3 || leadingDigits(p) != 3 {
			break
		}
		out += p
	}
	return out
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func trailingDigits(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] >= '0' && s[i] <= '9'; i-- {
		n++
	}
	return n
}

// ParseInt extracts the first integer found in s. Every dot, comma and
// spacing character inside the number is treated as a grouping mark.
func ParseInt(s string) (int64, bool) {
	tok, ok := findNumber(s)
	if !ok {
		return 0, false
	}
	tok = strings.NewReplacer(".", "", ",", "").Replace(tok)
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseFloat extracts the first real number found in s. decimalMark is
// DecimalPoint or DecimalComma; the other mark is treated as grouping.
// With DecimalPoint, a lone comma followed by one or two digits is still a
// decimal mark, since it cannot be a thousands group.
func ParseFloat(s string, decimalMark string) (float64, bool) {
	tok, ok := findNumber(s)
	if !ok {
		return 0, false
	}
	if decimalMark == DecimalComma {
		tok = strings.ReplaceAll(tok, ".", "")
		tok = strings.Replace(tok, ",", ".", 1)
		// A second comma cannot be a decimal mark.
		if strings.Contains(tok, ",") {
			return 0, false
		}
	} else if isDecimalComma(tok) {
		tok = strings.Replace(tok, ",", ".", 1)
	} else {
		tok = strings.ReplaceAll(tok, ",", "")
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// isDecimalComma reports whether tok holds one comma, no dot, and one or
// two digits after the comma.
func isDecimalComma(tok string) bool {
	if strings.Contains(tok, ".") || strings.Count(tok, ",") != 1 {
		return false
	}
	frac := tok[strings.Index(tok, ",")+1:]
	return len(frac) >= 1 && len(frac) <= 2 && leadingDigits(frac) == len(frac)
}
