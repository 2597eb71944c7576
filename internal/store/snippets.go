package store

import (
	"sync"

	"snippet-blog/internal/domain"
)

// SnippetStore holds the shared ordered snippet collection. All mutation goes
// through the store's lock; List hands out a copy so callers never iterate
// shared state.
type SnippetStore struct {
	mu       sync.RWMutex
	snippets []domain.Snippet
}

func NewSnippetStore() *SnippetStore {
	return &SnippetStore{}
}

// List returns a point-in-time snapshot of the collection in insertion order.
func (s *SnippetStore) List() []domain.Snippet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Snippet, len(s.snippets))
	copy(out, s.snippets)
	return out
}

// Append adds one snippet at the end of the collection. The author must be an
// authenticated principal; it is never taken from a client-supplied field.
func (s *SnippetStore) Append(author, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snippets = append(s.snippets, domain.Snippet{Author: author, Text: text})
}

// Clear removes all snippets. Idempotent.
func (s *SnippetStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snippets = nil
}
