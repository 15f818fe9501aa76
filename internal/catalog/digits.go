package catalog

import (
	"strconv"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// westernize maps the Arabic-indic digit block (U+0660–U+0669) onto the
// Western digits 0–9 and leaves every other rune alone.
var westernize = runes.Map(func(r rune) rune {
	if r >= '٠' && r <= '٩' {
		return '0' + (r - '٠')
	}
	return r
})

// NormalizeDigits rewrites any Arabic-indic digits in s as their Western
// equivalents. Ids and dates in the source data mix both scripts
// (e.g. "١٠٥٤هـ"), so all numeric comparisons go through this first.
func NormalizeDigits(s string) string {
	out, _, err := transform.String(westernize, s)
	if err != nil {
		// The mapper is total; transform only fails on invalid UTF-8,
		// which passes through untouched.
		return s
	}
	return out
}

// firstDigitRun returns the first maximal run of Western digits in s, or
// "" when s contains none.
func firstDigitRun(s string) string {
	start := -1
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return s[start:i]
		}
	}
	if start >= 0 {
		return s[start:]
	}
	return ""
}

// ExtractInteger normalizes digits in s and returns the integer value of
// the first digit run. The bool is false when s contains no digits (or the
// run overflows an int); absence is distinct from zero.
func ExtractInteger(s string) (int, bool) {
	run := firstDigitRun(NormalizeDigits(s))
	if run == "" {
		return 0, false
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0, false
	}
	return n, true
}
