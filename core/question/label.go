package question

import "strconv"

// Option labels run A-Z for the first 26 options, a-z for the next 26,
// then plain numbers (1, 2, 3, ...) from index 52 on.

// Label maps a zero-based option index to its display label.
func Label(index int) string {
	switch {
	case index < 0:
		return ""
	case index < 26:
		return string(rune('A' + index))
	case index < 52:
		return string(rune('a' + index - 26))
	default:
		return strconv.Itoa(index - 51)
	}
}

// LabelIndex is the reverse lookup of Label against the current option list.
// It returns -1 when the label does not address any of the first n options.
func LabelIndex(label string, n int) int {
	for i := 0; i < n; i++ {
		if Label(i) == label {
			return i
		}
	}
	return -1
}
