package tokenize

import (
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		input       string
		expected    []string
		description string
	}{
		{"", []string{}, "Empty input"},
		{" \t\n\r.,;", []string{}, "Only separators"},
		{"hello", []string{"hello"}, "Single word without trailing separator"},
		{"hello world", []string{"hello", "world"}, "Two words"},
		{"Hello WORLD", []string{"hello", "world"}, "Case folding"},
		{"a--b", []string{"a", "b"}, "Separator run"},
		{"don't", []string{"don", "t"}, "Apostrophe is a separator"},
		{"under_score", []string{"under_score"}, "Underscore is not a separator"},
		{"x+y/z", []string{"x+y/z"}, "Plus and slash are not separators"},
		{"line one\r\nline two", []string{"line", "one", "line", "two"}, "CRLF"},
		{"{a}[b](c)<d>|e|\"f\"", []string{"a", "b", "c", "d", "e", "f"}, "Brackets and quotes"},
		{"!~@#$%^&*()-=;:<>?.,[]{}|\"'end", []string{"end"}, "Word after every separator"},
		{"naïve Café", []string{"naïve", "café"}, "Non-ASCII letters"},
		{"ÉCOLE Straße", []string{"école", "straße"}, "Non-ASCII upper case"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			result := Tokenize(tc.input)
			if !slices.Equal(result, tc.expected) {
				t.Errorf("Input %q: expected %q, got %q", tc.input, tc.expected, result)
			}
		})
	}
}

// scenario text from the cloud docs
func TestTokenizeScenario(t *testing.T) {
	result := Tokenize("the Cat sat on the mat. The cat ran.")
	expected := []string{"the", "cat", "sat", "on", "the", "mat", "the", "cat", "ran"}
	if !slices.Equal(result, expected) {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestWordsStopsEarly(t *testing.T) {
	var seen []string
	for w := range Words("one two three four") {
		seen = append(seen, w)
		if len(seen) == 2 {
			break
		}
	}
	if !slices.Equal(seen, []string{"one", "two"}) {
		t.Errorf("expected early stop after two words, got %q", seen)
	}
}

func TestWordsRescans(t *testing.T) {
	seq := Words("a b c")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("ranging twice gave %q then %q", first, second)
	}
}

func TestScannerExhausted(t *testing.T) {
	s := NewScanner("last")
	if !s.Next() || s.Token() != "last" {
		t.Fatalf("expected token 'last', got %q", s.Token())
	}
	if s.Next() {
		t.Errorf("scanner should be exhausted, got %q", s.Token())
	}
	if s.Next() {
		t.Errorf("scanner must not restart")
	}
}

func TestIsSeparator(t *testing.T) {
	for _, r := range Separators {
		if !IsSeparator(r) {
			t.Errorf("expected %q to be a separator", r)
		}
	}
	for _, r := range "az09_+/é" {
		if IsSeparator(r) {
			t.Errorf("expected %q not to be a separator", r)
		}
	}
	if !ContainsSeparator("ab.c") || ContainsSeparator("abc") {
		t.Errorf("ContainsSeparator gave wrong answer")
	}
}

func BenchmarkTokenize(b *testing.B) {
	text := "The quick brown fox jumps over the lazy dog. Pack my box with five dozen liquor jugs!\n"
	for i := 0; i < b.N; i++ {
		Tokenize(text)
	}
}
