package domain

import (
	"encoding/json"
	"errors"
)

var (
	// ErrMissingResource means the request named nothing to authorize. It
	// is fatal to the request and never becomes a Deny.
	ErrMissingResource = errors.New("domain: missing resource")

	// ErrScopeDenied is returned by scope policies that reject a grant.
	ErrScopeDenied = errors.New("domain: scope denied")
)

type Effect string

const (
	Allow Effect = "Allow"
	Deny  Effect = "Deny"
)

// Decision is the outcome of one authorization request.
type Decision struct {
	Effect    Effect
	Resource  string
	Principal string
	Context   *Identity // nil unless Effect is Allow
}

// BuildDecision turns a validation outcome into a Decision. Any error, or an
// identity missing either half, yields a Deny with no principal and no
// context. The error itself is not inspected.
func BuildDecision(resource string, identity Identity, err error) Decision {
	if err != nil || !identity.Complete() {
		return Decision{Effect: Deny, Resource: resource}
	}

	ctx := identity.WithScopes()
	return Decision{
		Effect:    Allow,
		Resource:  resource,
		Principal: identity.Principal(),
		Context:   &ctx,
	}
}

func (d Decision) Allowed() bool { return d.Effect == Allow }

type decisionJSON struct {
	Effect    Effect `json:"effect"`
	Resource  string `json:"resource"`
	Principal string `json:"principal"`
	Context   any    `json:"context"`
}

// MarshalJSON writes an absent context as {}.
func (d Decision) MarshalJSON() ([]byte, error) {
	out := decisionJSON{
		Effect:    d.Effect,
		Resource:  d.Resource,
		Principal: d.Principal,
		Context:   struct{}{},
	}
	if d.Context != nil {
		out.Context = d.Context
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts what MarshalJSON writes; {} becomes a nil context.
func (d *Decision) UnmarshalJSON(data []byte) error {
	var in struct {
		Effect    Effect    `json:"effect"`
		Resource  string    `json:"resource"`
		Principal string    `json:"principal"`
		Context   *Identity `json:"context"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*d = Decision{Effect: in.Effect, Resource: in.Resource, Principal: in.Principal}
	if in.Context != nil && in.Context.Complete() {
		d.Context = in.Context
	}
	return nil
}
