package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrMalformedSubject is returned when a subject is not "namespace:id".
var ErrMalformedSubject = errors.New("domain: malformed subject")

// Identity is the caller a validated token speaks for.
type Identity struct {
	Namespace string   `json:"namespace"`
	ID        string   `json:"id"`
	Scopes    []string `json:"scopes"` // sorted, no duplicates
}

// NewIdentity splits subject on its first colon. Everything after that colon
// belongs to the id, so "svc:a:b" is namespace "svc" and id "a:b".
func NewIdentity(subject string, scopes []string) (Identity, error) {
	ns, id, ok := strings.Cut(subject, ":")
	if !ok || ns == "" || id == "" {
		return Identity{}, fmt.Errorf("%w: want namespace:id", ErrMalformedSubject)
	}

	return Identity{Namespace: ns, ID: id}.WithScopes(scopes...), nil
}

// Complete reports whether both halves of the subject are set.
func (i Identity) Complete() bool {
	return i.Namespace != "" && i.ID != ""
}

// Principal renders the identity back into its subject form.
func (i Identity) Principal() string {
	if !i.Complete() {
		return ""
	}
	return i.Namespace + ":" + i.ID
}

// WithScopes returns a copy with scopes merged in. Merging the same scopes
// twice yields the same identity. Empty strings are dropped.
func (i Identity) WithScopes(scopes ...string) Identity {
	merged := make([]string, 0, len(i.Scopes)+len(scopes))
	merged = append(merged, i.Scopes...)
	for _, s := range scopes {
		if s != "" {
			merged = append(merged, s)
		}
	}

	slices.Sort(merged)
	i.Scopes = slices.Compact(merged)
	return i
}

// HasScope reports whether scope was granted.
func (i Identity) HasScope(scope string) bool {
	_, found := slices.BinarySearch(i.Scopes, scope)
	return found
}
