package segment

import "testing"

func TestIsTitleCandidate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"short mixed case", "Getting Started", true},
		{"all upper, short", "INTRODUCTION", true},
		{"all upper, long", "A VERY LONG HEADING WITH MORE THAN TEN WORDS IN IT TOTAL", true},
		{"ten mixed-case words", "one Two three four five six seven eight nine Ten", false},
		{"nine mixed-case words", "one Two three four five six seven eight nine", true},
		{"upper with digits", "SECTION 42", true},
		{"long lowercase body", "this is a normal body sentence that clearly has more than ten words in it", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTitleCandidate(tt.text, defaultTitleWordLimit); got != tt.want {
				t.Errorf("IsTitleCandidate(%q) = %t, want %t", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsAllUpper(t *testing.T) {
	if !isAllUpper("ABC DEF") {
		t.Error("expected true for ABC DEF")
	}
	if isAllUpper("ABC def") {
		t.Error("expected false for mixed case")
	}
	if isAllUpper("123 !!") {
		t.Error("expected false with no cased characters")
	}
}
