package textnorm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	leadingPhrase    = regexp.MustCompile(`(?i)^(?:i need to|i have to|i should|i must|remember to|don't forget to)\b`)
	leadingConnector = regexp.MustCompile(`(?i)^(?:and then|then|also|plus)\b`)
)

// CleanTaskText strips a leading intent phrase and connector from text,
// capitalizes it and makes sure it ends in terminal punctuation.
//
// Stripping repeats until the text stops changing so that cleaning an
// already cleaned string is a no-op.
func CleanTaskText(text string) string {
	out := strings.TrimSpace(text)
	for {
		next := strings.TrimSpace(leadingPhrase.ReplaceAllString(out, ""))
		next = strings.TrimSpace(leadingConnector.ReplaceAllString(next, ""))
		// A bare prefix ("Also.") is kept as the task text itself.
		if next == out || !hasWord(next) {
			break
		}
		out = next
	}
	return Finish(out)
}

func hasWord(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}

// Finish trims text, upper-cases its first letter and appends a period
// unless it already ends in '.', '!' or '?'. Used directly for text typed
// by a caregiver, which has no speech prefixes to strip.
func Finish(text string) string {
	out := strings.TrimSpace(text)
	if out == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(out)
	out = string(unicode.ToUpper(r)) + out[size:]
	switch out[len(out)-1] {
	case '.', '!', '?':
		return out
	}
	return out + "."
}
