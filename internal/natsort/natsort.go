// Package natsort compares path-like keys the way a human reads them:
// decimal digit runs compare by numeric value instead of character code, so
// "page2.png" sorts before "page10.png".
package natsort

import "strings"

// Compare returns -1, 0 or 1 ordering a relative to b. Keys are sequences of
// slash-separated segments compared in order; the first differing segment
// decides. If one key is an exact prefix of the other, the shorter sorts
// first. Equal keys are a tie, so sorts using Compare must be stable to keep
// the original enumeration order.
func Compare(a, b string) int {
	as := strings.Split(a, "/")
	bs := strings.Split(b, "/")

	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareSegment(as[i], bs[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}

// Less reports whether a orders before b under Compare.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// compareSegment walks both segments left to right. Where both sides sit on
// a digit, the maximal digit runs compare as unsigned integers with leading
// zeros ignored; everywhere else bytes compare directly, which for UTF-8
// matches code point order.
func compareSegment(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			if c := compareRuns(a[si:i], b[sj:j]); c != 0 {
				return c
			}
			continue
		}

		switch {
		case a[i] < b[j]:
			return -1
		case a[i] > b[j]:
			return 1
		}
		i++
		j++
	}

	switch {
	case i == len(a) && j == len(b):
		return 0
	case i == len(a):
		return -1
	default:
		return 1
	}
}

// compareRuns compares two runs of decimal digits as unsigned integers of
// arbitrary length.
func compareRuns(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
