package textnorm

import "regexp"

// timePatterns are tried in order; the first pattern with any match wins.
var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`at \d{1,2}(?::\d{2})?\s*(?:am|pm|AM|PM)`),
	regexp.MustCompile(`\d{1,2}(?::\d{2})?\s*(?:am|pm|AM|PM)`),
	regexp.MustCompile(`(?i)this morning|this afternoon|tonight|today|tomorrow|this week|next week`),
	regexp.MustCompile(`(?i)monday|tuesday|wednesday|thursday|friday|saturday|sunday`),
}

// ExtractTimeContext returns the first time phrase found in text, verbatim.
// Clock times take precedence over relative day words, which take
// precedence over weekday names, regardless of where they appear.
func ExtractTimeContext(text string) (string, bool) {
	for _, re := range timePatterns {
		if m := re.FindString(text); m != "" {
			return m, true
		}
	}
	return "", false
}
