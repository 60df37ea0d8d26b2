// Package fuzzy matches misspelled and phonetically mangled words, which is
// most of what speech transcription produces. It combines edit distance
// with a simplified Soundex code.
package fuzzy

import "strings"

// Distance returns the Levenshtein edit distance between two strings,
// case-insensitive.
func Distance(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Similarity returns how alike two strings are as a percentage, 100 being
// identical.
func Similarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 100
	}
	return (1 - float64(Distance(a, b))/float64(maxLen)) * 100
}

// Match reports whether two strings are at least threshold percent similar.
func Match(a, b string, threshold float64) bool {
	return Similarity(a, b) >= threshold
}

// BestMatch returns the option most similar to input, or "" when nothing
// clears the threshold.
func BestMatch(input string, options []string, threshold float64) string {
	best := ""
	bestSim := 0.0
	for _, opt := range options {
		sim := Similarity(input, opt)
		if sim >= threshold && sim > bestSim {
			bestSim = sim
			best = opt
		}
	}
	return best
}

// soundexCodes maps A-Z to their Soundex digit, '0' meaning drop.
const soundexCodes = "01230120022455012623010202"

// Soundex returns the four character phonetic code of s. Empty input
// yields an empty code.
func Soundex(s string) string {
	s = strings.ToUpper(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.WriteByte(s[0])
	prev := byte('0')
	for i := 1; i < len(s) && b.Len() < 4; i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			continue
		}
		code := soundexCodes[c-'A']
		if code != '0' && code != prev {
			b.WriteByte(code)
			prev = code
		}
	}
	for b.Len() < 4 {
		b.WriteByte('0')
	}
	return b.String()
}

// SoundsLike reports whether two words share a Soundex code.
func SoundsLike(a, b string) bool {
	return Soundex(a) == Soundex(b)
}

// SmartMatch layers the strategies: exact, substring, fuzzy at 70%, then
// phonetic.
func SmartMatch(input, target string) bool {
	input = strings.ToLower(strings.TrimSpace(input))
	target = strings.ToLower(strings.TrimSpace(target))

	if input == target {
		return true
	}
	if strings.Contains(input, target) || strings.Contains(target, input) {
		return true
	}
	if Match(input, target, 70) {
		return true
	}
	return SoundsLike(input, target)
}

// FindSmartMatch returns the first option that smart-matches input,
// preferring exact and substring hits over fuzzy and phonetic ones.
func FindSmartMatch(input string, options []string) string {
	lower := strings.ToLower(input)
	for _, opt := range options {
		optLower := strings.ToLower(opt)
		if lower == optLower || strings.Contains(lower, optLower) || strings.Contains(optLower, lower) {
			return opt
		}
	}

	if m := BestMatch(input, options, 70); m != "" {
		return m
	}

	for _, opt := range options {
		if SoundsLike(input, opt) {
			return opt
		}
	}
	return ""
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
