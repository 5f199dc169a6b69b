// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package items

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Normalize trims text and capitalizes each whitespace-separated word:
// first letter upper, the rest lower. Runs of whitespace collapse to one space.
func Normalize(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// DisplayName renders a list name for replies, e.g. "semi-limited" -> "Semi-limited".
func DisplayName(name string) string {
	return Normalize(name)
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return strings.ToLower(word)
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(word[size:])
}

// Fold returns the case-folded form used for comparisons and sort keys.
// A Caser is stateful, so each call builds its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold reports whether any item equals candidate under case folding.
func ContainsFold(list []string, candidate string) bool {
	_, ok := IndexFold(list, candidate)
	return ok
}

// IndexFold returns the index of the first item equal to candidate under
// case folding.
func IndexFold(list []string, candidate string) (int, bool) {
	want := Fold(candidate)
	for i, item := range list {
		if Fold(item) == want {
			return i, true
		}
	}
	return -1, false
}

// ResolveTarget maps a user token to an existing item. An all-digit token
// is a 1-based position; anything else must match an item's full text,
// ignoring case. The returned index is 0-based.
func ResolveTarget(list []string, token string) (int, string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return -1, "", false
	}

	if isDigits(token) {
		pos, err := strconv.Atoi(token)
		if err != nil || pos < 1 || pos > len(list) {
			return -1, "", false
		}
		return pos - 1, list[pos-1], true
	}

	idx, ok := IndexFold(list, token)
	if !ok {
		return -1, "", false
	}
	return idx, list[idx], true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// SortNatural orders list in place by CompareNatural. The sort is stable.
func SortNatural(list []string) {
	slices.SortStableFunc(list, CompareNatural)
}
