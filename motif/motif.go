// Package motif finds possibly overlapping occurrences of a motif in
// a sequence.
//
// Positions count characters (runes), not bytes, so for ASCII
// sequences they are plain string indices.
package motif

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FindOverlapping returns start positions of all matches of the
// regular expression pattern in text, including overlapping ones.
// Positions are character positions offset by base, i.e. base=1 gives
// 1-based positions. After a match starting at character i the search
// is restarted at character i+1.
//
// The search is restarted on the remaining part of text, so anchors
// and word boundaries are evaluated against that suffix: "^A" finds
// every A in "AAA" ([0 1 2]), not only the first one.
func FindOverlapping(text, pattern string, base int) ([]int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return FindOverlappingRegexp(text, re, base), nil
}

// FindOverlappingRegexp is FindOverlapping for a compiled regular
// expression.
func FindOverlappingRegexp(text string, re *regexp.Regexp, base int) []int {
	pos := []int{}
	// i is a byte offset, n is the number of characters in text[:i]
	for i, n := 0, 0; i <= len(text); {
		loc := re.FindStringIndex(text[i:])
		if loc == nil {
			break
		}
		start := i + loc[0]
		n += utf8.RuneCountInString(text[i:start])
		pos = append(pos, n+base)
		i = start + runeWidth(text[start:])
		n++
	}
	return pos
}

// FindOverlappingLiteral returns character positions of all
// occurrences of the literal pattern in text, overlapping ones
// included, offset by base. Empty pattern never matches.
func FindOverlappingLiteral(text, pattern string, base int) []int {
	pos := []int{}
	if pattern == "" || len(pattern) > len(text) {
		return pos
	}
	for i, n := 0, 0; i+len(pattern) <= len(text); {
		j := strings.Index(text[i:], pattern)
		if j < 0 {
			break
		}
		start := i + j
		n += utf8.RuneCountInString(text[i:start])
		pos = append(pos, n+base)
		i = start + runeWidth(text[start:])
		n++
	}
	return pos
}

// runeWidth returns the byte length of the first character of s, at
// least 1.
func runeWidth(s string) int {
	_, w := utf8.DecodeRuneInString(s)
	if w < 1 {
		return 1
	}
	return w
}
