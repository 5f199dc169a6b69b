// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package items

import "strings"

// Segment is one piece of a natural sort key. Keys alternate text and
// number segments and always start with a (possibly empty) text segment.
type Segment struct {
	Text    string
	Digits  string // digit run with leading zeros stripped
	Numeric bool
}

// Key splits the folded string on runs of ASCII digits, so "Item10" becomes
// ["item", 10, ""].
func Key(s string) []Segment {
	s = Fold(s)
	key := []Segment{}
	start := 0
	for start <= len(s) {
		i := start
		for i < len(s) && !isDigit(s[i]) {
			i++
		}
		key = append(key, Segment{Text: s[start:i]})
		if i == len(s) {
			break
		}
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		key = append(key, Segment{Digits: trimZeros(s[i:j]), Numeric: true})
		start = j
	}
	return key
}

// CompareNatural orders a and b by their natural sort keys.
func CompareNatural(a, b string) int {
	ka, kb := Key(a), Key(b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if c := compareSegment(ka[i], kb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(ka) < len(kb):
		return -1
	case len(ka) > len(kb):
		return 1
	}
	return 0
}

// Keys alternate kinds at the same positions, so both segments always
// share a kind here.
func compareSegment(a, b Segment) int {
	if !a.Numeric {
		return strings.Compare(a.Text, b.Text)
	}
	if len(a.Digits) != len(b.Digits) {
		if len(a.Digits) < len(b.Digits) {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Digits, b.Digits)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func trimZeros(d string) string {
	t := strings.TrimLeft(d, "0")
	if t == "" {
		return "0"
	}
	return t
}
