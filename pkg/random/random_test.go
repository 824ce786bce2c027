package random

import (
	"sync"
	"testing"
)

func TestSequenceCycles(t *testing.T) {
	s := NewSequence(0, 3, 7)
	got := []int{s.IntN(10), s.IntN(10), s.IntN(5), s.IntN(10)}
	want := []int{0, 3, 2, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("draw %d: got %d, want %d", i, got[i], want[i])
		}
	}
	if s.Draws() != 4 {
		t.Errorf("expected 4 draws, got %d", s.Draws())
	}
}

func TestEmptySequenceReturnsZero(t *testing.T) {
	s := NewSequence()
	for i := 0; i < 3; i++ {
		if v := s.IntN(4); v != 0 {
			t.Fatalf("expected 0, got %d", v)
		}
	}
}

func TestSeededIsReproducible(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 20; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}

func TestSeededConcurrentUse(t *testing.T) {
	src := NewSeeded(7)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if v := src.IntN(3); v < 0 || v >= 3 {
					t.Errorf("out of range: %d", v)
				}
			}
		}()
	}
	wg.Wait()
}

func TestPickAndBetween(t *testing.T) {
	s := NewSequence(1, 4)
	if got := Pick(s, []string{"a", "b", "c"}); got != "b" {
		t.Errorf("Pick got %q, want %q", got, "b")
	}
	if got := Between(s, 5, 10); got != 9 {
		t.Errorf("Between got %d, want 9", got)
	}
	if got := Pick[string](s, nil); got != "" {
		t.Errorf("Pick on empty slice got %q", got)
	}
	if got := Between(s, 3, 3); got != 3 {
		t.Errorf("Between with equal bounds got %d", got)
	}
}
