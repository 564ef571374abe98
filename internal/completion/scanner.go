package completion

// ScanOpenBrace returns the rune offset of the '{' enclosing caret, or -1
// when the caret is not inside an open interpolation. A '}' met before any
// '{' while scanning back means the caret sits after a closed
// interpolation.
func ScanOpenBrace(text string, caret int) int {
	return scanOpenBrace([]rune(text), caret)
}

func scanOpenBrace(runes []rune, caret int) int {
	if caret <= 0 || caret > len(runes) {
		return -1
	}
	open := -1
	for i := caret - 1; i >= 0; i-- {
		if runes[i] == '}' {
			return -1
		}
		if runes[i] == '{' {
			open = i
			break
		}
	}
	if open < 0 {
		return -1
	}
	if indexRune(runes, '}', open+1, caret) >= 0 {
		return -1
	}
	return open
}

// indexRune returns the first offset of r in runes[from:to], or -1.
func indexRune(runes []rune, r rune, from, to int) int {
	if from < 0 {
		from = 0
	}
	if to > len(runes) {
		to = len(runes)
	}
	for i := from; i < to; i++ {
		if runes[i] == r {
			return i
		}
	}
	return -1
}

// clampAtCloser returns caret, or the offset of the first '}' in
// runes[from:caret] when there is one, so a replacement never reaches past
// a closing brace.
func clampAtCloser(runes []rune, from, caret int) int {
	if i := indexRune(runes, '}', from, caret); i >= 0 {
		return i
	}
	return caret
}
