package question

import "testing"

func TestLabel(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{index: -1, want: ""},
		{index: 0, want: "A"},
		{index: 1, want: "B"},
		{index: 25, want: "Z"},
		{index: 26, want: "a"},
		{index: 27, want: "b"},
		{index: 51, want: "z"},
		{index: 52, want: "1"},
		{index: 53, want: "2"},
		{index: 151, want: "100"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Label(tt.index); got != tt.want {
				t.Errorf("Label(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestLabel_fullAlphabetRanges(t *testing.T) {
	for i := 0; i < 26; i++ {
		if got, want := Label(i), string(rune('A'+i)); got != want {
			t.Errorf("Label(%d) = %q, want %q", i, got, want)
		}
	}
	for i := 26; i < 52; i++ {
		if got, want := Label(i), string(rune('a'+i-26)); got != want {
			t.Errorf("Label(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestLabelIndex(t *testing.T) {
	tests := []struct {
		name  string
		label string
		n     int
		want  int
	}{
		{name: "first", label: "A", n: 4, want: 0},
		{name: "last", label: "D", n: 4, want: 3},
		{name: "out of range", label: "E", n: 4, want: -1},
		{name: "lowercase range", label: "a", n: 30, want: 26},
		{name: "numeric range", label: "1", n: 53, want: 52},
		{name: "unknown", label: "?", n: 10, want: -1},
		{name: "empty list", label: "A", n: 0, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelIndex(tt.label, tt.n); got != tt.want {
				t.Errorf("LabelIndex(%q, %d) = %d, want %d", tt.label, tt.n, got, tt.want)
			}
		})
	}
}
