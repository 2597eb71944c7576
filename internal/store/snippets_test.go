package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"snippet-blog/internal/domain"
)

func TestAppendPreservesOrder(t *testing.T) {
	t.Parallel()

	s := NewSnippetStore()
	s.Append("test", "hello")
	s.Append("test", "world")

	require.Equal(t, []domain.Snippet{
		{Author: "test", Text: "hello"},
		{Author: "test", Text: "world"},
	}, s.List())
}

func TestListReturnsSnapshot(t *testing.T) {
	t.Parallel()

	s := NewSnippetStore()
	s.Append("test", "hello")

	snapshot := s.List()
	s.Append("test", "world")
	s.Clear()

	require.Equal(t, []domain.Snippet{{Author: "test", Text: "hello"}}, snapshot)
}

func TestClearIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewSnippetStore()
	s.Append("test", "hello")

	s.Clear()
	require.Empty(t, s.List())
	s.Clear()
	require.Empty(t, s.List())
}

func TestConcurrentAppendsAllSurvive(t *testing.T) {
	t.Parallel()

	s := NewSnippetStore()

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append("test", fmt.Sprintf("snippet-%d", i))
		}(i)
	}
	wg.Wait()

	snippets := s.List()
	require.Len(t, snippets, n)

	seen := make(map[string]bool, n)
	for _, snip := range snippets {
		require.Equal(t, "test", snip.Author)
		seen[snip.Text] = true
	}
	require.Len(t, seen, n)
}
