package domain

// Snippet is one entry in the shared collection: a short text attributed to the
// authenticated user that posted it. Snippets are immutable once created.
type Snippet struct {
	Author string
	Text   string
}
