package service

import (
	"errors"

	"github.com/aussiebroadwan/authorizer/internal/authorizer/domain"
	"github.com/aussiebroadwan/authorizer/pkg/jwtx"
)

// Reasons are the stable labels used in logs and metrics.
const (
	ReasonNone             = "none"
	ReasonMalformedToken   = "malformed_token"
	ReasonInvalidSignature = "invalid_signature"
	ReasonExpired          = "expired"
	ReasonNotYetValid      = "not_yet_valid"
	ReasonAudience         = "audience_mismatch"
	ReasonIssuer           = "issuer_mismatch"
	ReasonMalformedSubject = "malformed_subject"
	ReasonScopeDenied      = "scope_denied"
	ReasonMissingResource  = "missing_resource"
	ReasonUnknown          = "unknown"
)

var reasons = []struct {
	err    error
	reason string
}{
	{jwtx.ErrMalformed, ReasonMalformedToken},
	{jwtx.ErrInvalidSig, ReasonInvalidSignature},
	{jwtx.ErrExpired, ReasonExpired},
	{jwtx.ErrNotYetValid, ReasonNotYetValid},
	{jwtx.ErrAudience, ReasonAudience},
	{jwtx.ErrIssuer, ReasonIssuer},
	{domain.ErrMalformedSubject, ReasonMalformedSubject},
	{domain.ErrScopeDenied, ReasonScopeDenied},
	{domain.ErrMissingResource, ReasonMissingResource},
}

// Reason maps err to its label. A nil error is ReasonNone.
func Reason(err error) string {
	if err == nil {
		return ReasonNone
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ReasonUnknown
}
