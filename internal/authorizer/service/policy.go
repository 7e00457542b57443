package service

import (
	"fmt"
	"slices"

	"github.com/aussiebroadwan/authorizer/internal/authorizer/domain"
)

// ScopePolicy gets a final say over an identity that passed validation.
// Returning an error turns the decision into a Deny.
type ScopePolicy interface {
	Check(identity domain.Identity) error
}

// AllowAll is the default policy: it rejects nothing.
type AllowAll struct{}

func (AllowAll) Check(domain.Identity) error { return nil }

// DenyScopes rejects any identity holding one of the listed scopes.
type DenyScopes []string

// NewDenyScopes returns AllowAll when scopes is empty so the hook costs
// nothing when it is switched off.
func NewDenyScopes(scopes []string) ScopePolicy {
	if len(scopes) == 0 {
		return AllowAll{}
	}
	d := slices.Clone(scopes)
	slices.Sort(d)
	return DenyScopes(slices.Compact(d))
}

func (d DenyScopes) Check(identity domain.Identity) error {
	for _, s := range d {
		if identity.HasScope(s) {
			return fmt.Errorf("%w: %s", domain.ErrScopeDenied, s)
		}
	}
	return nil
}
