package textnorm

import (
	"regexp"
	"strings"
)

var (
	sentenceBreak = regexp.MustCompile(`[.!?]+`)
	clauseBreak   = regexp.MustCompile(`(?i)\s*,?\s+and then\s+|\s*,\s*then\s+|\s*,?\s+and\s+|\s*;\s*`)
)

// SplitSentences splits text on runs of '.', '!' and '?' and drops blank
// fragments. Fragments are trimmed and keep their original order.
func SplitSentences(text string) []string {
	parts := sentenceBreak.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SplitClauses splits a sentence on coordinating connectors ("and",
// "and then", ", then", ";"). Blank clauses are dropped.
func SplitClauses(sentence string) []string {
	parts := clauseBreak.Split(sentence, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FirstWords returns the first n whitespace-separated words of text joined
// by single spaces. Results longer than maxLen bytes are cut to maxLen-3
// and suffixed with "...".
func FirstWords(text string, n, maxLen int) string {
	words := strings.Fields(text)
	if len(words) > n {
		words = words[:n]
	}
	out := strings.Join(words, " ")
	if maxLen > 3 && len(out) > maxLen {
		out = truncate(out, maxLen-3) + "..."
	}
	return out
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func utf8RuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
