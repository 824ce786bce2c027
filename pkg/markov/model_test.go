package markov

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuild(t *testing.T) {
	tokens := Tokenize("one fish two fish red fish blue fish one fish two")
	m := Build(tokens, 2)

	if m.Order() != 2 {
		t.Fatalf("expected order 2, got %d", m.Order())
	}

	wantKeys := []string{"one fish", "fish two", "two fish", "fish red", "red fish", "fish blue", "blue fish", "fish one"}
	if diff := cmp.Diff(wantKeys, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}

	// "one fish" is followed by "two" twice; duplicates carry the weight.
	if diff := cmp.Diff([]string{"two", "two"}, m.Candidates("one fish")); diff != "" {
		t.Errorf("Candidates(\"one fish\") mismatch (-want +got):\n%s", diff)
	}

	// The trailing context "fish two" has a successor only from the first occurrence.
	if diff := cmp.Diff([]string{"fish"}, m.Candidates("fish two")); diff != "" {
		t.Errorf("Candidates(\"fish two\") mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildInsufficientTokens(t *testing.T) {
	testCases := []struct {
		name   string
		tokens []string
		order  int
	}{
		{name: "No tokens", tokens: nil, order: 2},
		{name: "Equal to order", tokens: []string{"a", "b"}, order: 2},
		{name: "Order one single token", tokens: []string{"a"}, order: 1},
		{name: "Invalid order", tokens: []string{"a", "b", "c"}, order: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Build(tc.tokens, tc.order)
			if !m.Empty() || m.Len() != 0 {
				t.Errorf("expected an empty model, got %d contexts", m.Len())
			}
		})
	}
}

func TestBuildContextLengthMatchesOrder(t *testing.T) {
	tokens := Tokenize("a b c d e f g h i j")
	for order := 1; order <= 4; order++ {
		m := Build(tokens, order)
		if m.Len() != len(tokens)-order {
			t.Errorf("order %d: expected %d contexts, got %d", order, len(tokens)-order, m.Len())
		}
		for _, key := range m.Keys() {
			if n := len(Tokenize(key)); n != order {
				t.Errorf("order %d: key %q has %d tokens", order, key, n)
			}
		}
	}
}

func TestModelAdd(t *testing.T) {
	m := NewModel(2)
	if err := m.Add([]string{"a", "b"}, "c"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := m.Add([]string{"a"}, "c"); err == nil {
		t.Error("expected an error for a context shorter than the order")
	}
	if err := m.Add([]string{"a", "b"}, ""); err == nil {
		t.Error("expected an error for an empty continuation")
	}
	if diff := cmp.Diff([]string{"c"}, m.Candidates("a b")); diff != "" {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidatesReturnsCopy(t *testing.T) {
	m := Build([]string{"a", "b", "c"}, 2)
	c := m.Candidates("a b")
	c[0] = "mutated"
	if got := m.Candidates("a b")[0]; got != "c" {
		t.Errorf("model was mutated through Candidates: got %q", got)
	}
}
