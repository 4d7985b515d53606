package similarity

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		want     float64
	}{
		{"identical", "hello", "hello", 1},
		{"both empty", "", "", 1},
		{"whitespace only", "   ", "", 1},
		{"one substitution", "cat", "bat", 0.667},
		{"case and whitespace", "Hello world", "  hello WORLD ", 1},
		{"empty actual", "cat", "", 0},
		{"empty expected", "", "dog", 0},
		{"insertion", "cat", "cats", 0.75},
		{"completely different", "abc", "xyz", 0},
		{"multibyte runes", "café", "cafe", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.expected, tt.actual)
			if !approxEqual(got, tt.want) {
				t.Errorf("Score(%q, %q) = %.4f, want %.4f", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	first := Score("the quick brown fox", "the quick brown box")
	for i := 0; i < 10; i++ {
		if got := Score("the quick brown fox", "the quick brown box"); got != first {
			t.Fatalf("call %d returned %v, want %v", i, got, first)
		}
	}
}

func TestScore_SelfIsOne(t *testing.T) {
	for _, s := range []string{"a", "bonjour", "Wie geht's?", "こんにちは"} {
		if got := Score(s, s); got != 1 {
			t.Errorf("Score(%q, %q) = %v, want 1", s, s, got)
		}
	}
}

func TestScore_Range(t *testing.T) {
	pairs := [][2]string{{"a", "bbbb"}, {"short", "a much longer sentence"}, {"x", ""}}
	for _, p := range pairs {
		got := Score(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Score(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}
