// Package chunk scans article text for word tokens.
package chunk

import (
	"strings"
	"unicode/utf8"
)

// Tokens slices s into maximal runs of 가-힣, A-Z, a-z and 0-9.
// The tokens are substrings of s; nothing is copied.
func Tokens(s string) []string {
	// Capacity hint: statutory Korean averages ~4 runes (12 B) per 어절.
	res := make([]string, 0, len(s)/12+1)

	start := -1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isTokenRune(r) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			res = append(res, s[start:i])
			start = -1
		}
		i += size
	}
	if start >= 0 {
		res = append(res, s[start:])
	}
	return res
}

// Containing returns the tokens of s that contain word, in order.
func Containing(s, word string) []string {
	if word == "" {
		return nil
	}
	var out []string
	for _, t := range Tokens(s) {
		if strings.Contains(t, word) {
			out = append(out, t)
		}
	}
	return out
}

func isTokenRune(r rune) bool {
	switch {
	case r >= '가' && r <= '힣':
		return true
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	}
	return false
}
