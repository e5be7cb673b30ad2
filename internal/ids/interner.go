// Package ids maps opaque patient/sequence identifiers to compact, stable
// integer indices. An Interner is append-only: once an ID is seen it keeps
// the same index for the lifetime of the Interner.
package ids

import (
	"fmt"
	"strings"
)

// InvalidIDError is returned when an identifier is empty after trimming.
type InvalidIDError struct {
	Raw string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid id %q: empty after trimming", e.Raw)
}

// Interner assigns dense, zero-based indices to opaque string identifiers in
// first-appearance order. It owns its own ID table; callers never hold index
// assignments that can change underneath them.
type Interner struct {
	byID  map[string]int
	order []string
}

// New returns an empty Interner.
func New() *Interner {
	return &Interner{byID: make(map[string]int)}
}

// Intern returns the index for id, trimmed of surrounding whitespace,
// assigning a new index on first sight. It fails with InvalidIDError when
// the trimmed id is empty.
func (in *Interner) Intern(id string) (int, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return 0, &InvalidIDError{Raw: id}
	}
	if idx, ok := in.byID[trimmed]; ok {
		return idx, nil
	}
	idx := len(in.order)
	in.byID[trimmed] = idx
	in.order = append(in.order, trimmed)
	return idx, nil
}

// IDAt returns the identifier assigned to index i without copying the whole
// table, for callers that only need to catch up on newly interned entries.
func (in *Interner) IDAt(i int) string {
	return in.order[i]
}

// Lookup returns the index already assigned to id, if any.
func (in *Interner) Lookup(id string) (int, bool) {
	idx, ok := in.byID[strings.TrimSpace(id)]
	return idx, ok
}

// Len returns the number of distinct identifiers interned so far.
func (in *Interner) Len() int {
	return len(in.order)
}

// IDs returns the interned identifiers in index order (index i is IDs()[i]).
// The returned slice is owned by the caller.
func (in *Interner) IDs() []string {
	out := make([]string, len(in.order))
	copy(out, in.order)
	return out
}
