package markov

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultOrder is the context length used when callers do not choose one.
const DefaultOrder = 2

// Model maps an order-k context to the ordered list of tokens observed after
// it. Contexts without a continuation are never stored. Keys are remembered in
// first-seen order so that enumeration is stable.
type Model struct {
	order int
	keys  []string
	next  map[string][]string
}

// NewModel returns an empty model of the given order.
func NewModel(order int) *Model {
	return &Model{
		order: order,
		next:  make(map[string][]string),
	}
}

// Build slides a window of size order across tokens and records the token
// following each window. When there are not more tokens than the order, the
// returned model is empty.
func Build(tokens []string, order int) *Model {
	m := NewModel(order)
	if order < 1 || len(tokens) <= order {
		return m
	}
	for i := 0; i+order < len(tokens); i++ {
		m.add(ContextKey(tokens[i:i+order]), tokens[i+order])
	}
	return m
}

// Add records next as a continuation of context. The context must hold
// exactly Order tokens.
func (m *Model) Add(context []string, next string) error {
	if len(context) != m.order {
		return fmt.Errorf("context has %d tokens, model order is %d", len(context), m.order)
	}
	if next == "" {
		return fmt.Errorf("empty continuation for context %q", ContextKey(context))
	}
	m.add(ContextKey(context), next)
	return nil
}

func (m *Model) add(key, next string) {
	if _, ok := m.next[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.next[key] = append(m.next[key], next)
}

// Order returns the context length of the model.
func (m *Model) Order() int { return m.order }

// Len returns the number of stored contexts.
func (m *Model) Len() int { return len(m.keys) }

// Empty reports whether the model holds no contexts.
func (m *Model) Empty() bool { return len(m.keys) == 0 }

// Keys returns the stored contexts in first-seen order.
func (m *Model) Keys() []string {
	return slices.Clone(m.keys)
}

// Candidates returns the continuations recorded for key, duplicates included.
// The result is nil for unknown contexts.
func (m *Model) Candidates(key string) []string {
	return slices.Clone(m.next[key])
}

// candidates is the allocation-free lookup used by the generator.
func (m *Model) candidates(key string) []string {
	return m.next[key]
}

// keysContaining returns the contexts that include token as one of their words.
func (m *Model) keysContaining(token string) []string {
	var matches []string
	for _, key := range m.keys {
		if slices.Contains(strings.Fields(key), token) {
			matches = append(matches, key)
		}
	}
	return matches
}
