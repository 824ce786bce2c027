package markov

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateLine(t *testing.T) {
	g, _ := setupTestGenerator(t, 0)
	line, err := g.GenerateLine(alphabetModel(7))
	if err != nil {
		t.Fatalf("GenerateLine failed: %v", err)
	}
	if line != "A b c d e f g" {
		t.Errorf("got %q, want %q", line, "A b c d e f g")
	}
}

func TestGenerateLineStopsAtMaxWords(t *testing.T) {
	g, _ := setupTestGenerator(t, 0)
	line, err := g.GenerateLine(alphabetModel(20))
	if err != nil {
		t.Fatalf("GenerateLine failed: %v", err)
	}
	if n := len(strings.Fields(line)); n != DefaultMaxWords {
		t.Errorf("expected %d words, got %d (%q)", DefaultMaxWords, n, line)
	}
}

func TestGenerateLineRetriesShortWalks(t *testing.T) {
	// First start is "e f" (index 4), which dead-ends after "g": three words.
	// The second draw picks the only continuation, the third restarts at "a b".
	g, seq := setupTestGenerator(t, 4, 0, 0)
	line, err := g.GenerateLine(alphabetModel(7))
	if err != nil {
		t.Fatalf("GenerateLine failed: %v", err)
	}
	if line != "A b c d e f g" {
		t.Errorf("got %q, want %q", line, "A b c d e f g")
	}
	if seq.Draws() < 3 {
		t.Errorf("expected a retry, only %d draws were made", seq.Draws())
	}
}

func TestGenerateLineErrors(t *testing.T) {
	testCases := []struct {
		name  string
		model *Model
		want  error
	}{
		{name: "Nil model", model: nil, want: ErrEmptyModel},
		{name: "Empty model", model: Build([]string{"a"}, 2), want: ErrEmptyModel},
		{name: "Every walk too short", model: alphabetModel(4), want: ErrNoSuitableLine},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGenerator(WithMaxTries(5))
			_, err := g.GenerateLine(tc.model)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGenerateLineWithStartWord(t *testing.T) {
	m := Build(Tokenize("the moon is bright tonight and the stars are falling down on me"), 2)
	g := NewGenerator(WithLineLength(2, 6))
	for i := 0; i < 20; i++ {
		line, err := g.GenerateLine(m, WithStartWord("Stars"))
		if err != nil {
			t.Fatalf("GenerateLine failed: %v", err)
		}
		if !strings.Contains(strings.ToLower(line), "stars") {
			t.Fatalf("line %q does not start from a context containing the start word", line)
		}
	}

	// An unknown start word falls back to any context.
	if _, err := g.GenerateLine(m, WithStartWord("comet")); err != nil {
		t.Errorf("GenerateLine with unknown start word failed: %v", err)
	}
}

func TestGenerateLineWordBounds(t *testing.T) {
	m := Build(Tokenize(strings.Repeat("river stone wind fire ash cloud rain ", 4)), 2)
	g := NewGenerator()
	for i := 0; i < 50; i++ {
		line, err := g.GenerateLine(m)
		if err != nil {
			t.Fatalf("GenerateLine failed: %v", err)
		}
		if n := len(strings.Fields(line)); n < DefaultMinWords || n > DefaultMaxWords {
			t.Fatalf("line %q has %d words", line, n)
		}
	}
}

func BenchmarkGenerateLine(b *testing.B) {
	m := Build(Tokenize(createBenchmarkCorpus()), 2)
	g := NewGenerator()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := g.GenerateLine(m)
		b.SetBytes(int64(len(s)))
		if err != nil && !errors.Is(err, ErrNoSuitableLine) {
			b.Fatalf("GenerateLine() failed: %v", err)
		}
	}
}

func BenchmarkBuild(b *testing.B) {
	tokens := Tokenize(createBenchmarkCorpus())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Build(tokens, 2)
	}
}
