// Package history keeps the in-memory record of successful calculations for
// one interactive session. Nothing is written to disk.
package history

// History is an append-only list of formatted results.
type History struct {
	entries []string
}

// New returns an empty history.
func New() *History {
	return &History{}
}

// Append records entry at the end of the history.
func (h *History) Append(entry string) {
	h.entries = append(h.entries, entry)
}

// Entries returns a copy of the recorded entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports the number of recorded entries.
func (h *History) Len() int { return len(h.entries) }
