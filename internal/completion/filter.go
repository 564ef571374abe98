package completion

import (
	"strings"
	"unicode/utf8"
)

// Filter keeps the items whose Text or DisplayText starts with filterText,
// ignoring case. Matching uses Unicode simple case folding, not a locale.
// An empty filterText returns items unchanged; no match returns an empty,
// non-nil slice. Relative order is preserved.
func Filter(items []Item, filterText string) []Item {
	if filterText == "" {
		return items
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if hasPrefixFold(item.Text, filterText) || hasPrefixFold(item.DisplayText, filterText) {
			out = append(out, item)
		}
	}
	return out
}

// hasPrefixFold is strings.HasPrefix with strings.EqualFold semantics.
func hasPrefixFold(s, prefix string) bool {
	n := utf8.RuneCountInString(prefix)
	if utf8.RuneCountInString(s) < n {
		return false
	}
	end := 0
	for i := 0; i < n; i++ {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return strings.EqualFold(s[:end], prefix)
}
