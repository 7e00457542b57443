package service

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/authorizer/internal/authorizer/domain"
	"github.com/aussiebroadwan/authorizer/pkg/cryptox"
	"github.com/aussiebroadwan/authorizer/pkg/jwtx"
	"github.com/aussiebroadwan/authorizer/pkg/slogx"
)

// AuthorizeService runs the decision pipeline:
// token -> claims -> identity -> scope policy -> decision.
//
// All fields are set once at startup and only read afterwards, so a single
// instance serves concurrent requests.
type AuthorizeService struct {
	Verifier jwtx.Verifier
	Policy   ScopePolicy // nil means AllowAll
	Metrics  *Metrics    // optional
}

// Authorize decides whether token may invoke resource.
//
// Every validation failure comes back as a Deny decision with a nil error;
// the cause is logged and counted, never returned. The only error is
// domain.ErrMissingResource, for which no decision exists.
func (s *AuthorizeService) Authorize(ctx context.Context, token, resource string) (domain.Decision, error) {
	start := time.Now()
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(resource) == "" {
		l.Warn("authorize rejected", "reason", ReasonMissingResource)
		return domain.Decision{}, domain.ErrMissingResource
	}

	identity, err := s.resolve(token)
	decision := domain.BuildDecision(resource, identity, err)
	reason := Reason(err)

	s.Metrics.observe(string(decision.Effect), reason, time.Since(start))

	if decision.Allowed() {
		l.Debug("authorize allowed",
			"principal", decision.Principal,
			"resource", resource,
		)
		return decision, nil
	}

	l.Warn("authorize denied",
		"reason", reason,
		"token_fp", cryptox.FingerprintToken(token),
		"resource", resource,
		"err", err,
	)
	return decision, nil
}

func (s *AuthorizeService) resolve(token string) (domain.Identity, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return domain.Identity{}, err
	}

	identity, err := domain.NewIdentity(claims.Subject, claims.Scopes)
	if err != nil {
		return domain.Identity{}, err
	}

	if err := s.policy().Check(identity); err != nil {
		return domain.Identity{}, err
	}

	return identity, nil
}

func (s *AuthorizeService) policy() ScopePolicy {
	if s.Policy == nil {
		return AllowAll{}
	}
	return s.Policy
}
