// Package stringkit holds small string utilities.
package stringkit

import "strings"

// DefaultSeparator is the separator used by Split.
const DefaultSeparator = "/"

// Split cuts line around the first DefaultSeparator.
func Split(line string) (head, tail string) {
	return SplitBy(line, DefaultSeparator)
}

// SplitBy cuts line around the first occurrence of sep.
// When sep is not present in line, both head and tail are empty.
//
//	"324/44" -> "324", "44"
//	"345/"   -> "345", ""
//	"/434"   -> "", "434"
//	"4343"   -> "", ""
func SplitBy(line, sep string) (head, tail string) {
	head, tail, ok := strings.Cut(line, sep)
	if !ok {
		return "", ""
	}
	return head, tail
}
