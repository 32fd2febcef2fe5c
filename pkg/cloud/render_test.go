package cloud

import (
	"slices"
	"testing"
)

func TestRenderAlphabeticalScenario(t *testing.T) {
	sel, err := SelectTopN(scenario, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := RenderAlphabetical(sel)
	expected := []RenderedWord{
		{Word: "cat", Count: 2, FontSize: 12},
		{Word: "mat", Count: 1, FontSize: 11},
		{Word: "the", Count: 3, FontSize: 13},
	}
	if !slices.Equal(result, expected) {
		t.Errorf("expected %v, got %v", expected, result)
	}

	// selection keeps its frequency order
	if sel.Entries[0].Word != "the" {
		t.Errorf("render must not reorder the selection, got %v", sel.Entries)
	}
}

// a single entry hits ratio 1 and the minimum font
func TestRenderSingleWord(t *testing.T) {
	for _, count := range []int{1, 2, 1000} {
		sel, err := SelectTopN(map[string]int{"only": count}, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		result := RenderAlphabetical(sel)
		if len(result) != 1 || result[0].FontSize != DefaultMinFont {
			t.Errorf("count %d: expected font %d, got %v", count, DefaultMinFont, result)
		}
	}
}

func TestRenderFontBounds(t *testing.T) {
	freqs := make(map[string]int)
	words := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	counts := []int{1, 2, 37, 38, 74, 500, 1000, 100000}
	for i, w := range words {
		freqs[w] = counts[i]
	}

	for n := 1; n <= len(freqs); n++ {
		sel, err := SelectTopN(freqs, n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		result := RenderAlphabetical(sel)
		if !slices.IsSortedFunc(result, func(a, b RenderedWord) int {
			return ByWord(Entry{a.Word, a.Count}, Entry{b.Word, b.Count})
		}) {
			t.Errorf("n=%d: output not alphabetical: %v", n, result)
		}
		for _, w := range result {
			if w.FontSize < DefaultMinFont || w.FontSize > DefaultMaxFont {
				t.Errorf("n=%d: font %d out of range for %v", n, w.FontSize, w)
			}
		}
	}
}

func TestRenderLinearScale(t *testing.T) {
	sel := Selection{
		Entries:      []Entry{{"top", 75}, {"mid", 38}, {"low", 1}},
		MaxFrequency: 75,
		MinFrequency: 1,
	}
	// ratio = (74 + 37) / 37 = 3
	expected := []RenderedWord{
		{Word: "low", Count: 1, FontSize: 11},
		{Word: "mid", Count: 38, FontSize: 23},
		{Word: "top", Count: 75, FontSize: 35},
	}
	if result := RenderAlphabetical(sel); !slices.Equal(result, expected) {
		t.Errorf("expected %v, got %v", expected, result)
	}
}

func TestRenderCustomFonts(t *testing.T) {
	sel := Selection{
		Entries:      []Entry{{"big", 11}, {"small", 1}},
		MaxFrequency: 11,
		MinFrequency: 1,
	}
	result := RenderAlphabeticalWithFonts(sel, FontRange{Min: 10, Max: 20})
	// ratio = (10 + 10) / 10 = 2
	if result[0].FontSize != 15 || result[1].FontSize != 10 {
		t.Errorf("unexpected sizes: %v", result)
	}

	fallback := RenderAlphabeticalWithFonts(sel, FontRange{Min: 20, Max: 20})
	if fallback[1].FontSize != DefaultMinFont {
		t.Errorf("invalid range should fall back to defaults, got %v", fallback)
	}
}
