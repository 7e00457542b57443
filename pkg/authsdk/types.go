package authsdk

import (
	"encoding/json"
	"slices"

	"github.com/aussiebroadwan/authorizer/pkg/httpx"
)

// ============================================================================
// Error Types (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse is the error body every endpoint returns on failure.
type ErrorResponse struct {
	// Error is the error code (e.g., "invalid_request", "missing_resource")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned when request validation fails.
type ValidationErrorResponse struct {
	// Code is the error code (e.g., "validation_error")
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific validation errors (field name: error message)
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Authorizer Event Types
// ============================================================================

const (
	EventTypeToken   = "TOKEN"
	EventTypeRequest = "REQUEST"
)

// AuthorizeRequest is modelled on an API Gateway custom-authorizer event.
// TOKEN events carry the bearer in AuthorizationToken; REQUEST events carry
// it in the Authorization entry of Headers.
type AuthorizeRequest struct {
	// Type is "TOKEN" or "REQUEST". Empty is treated as TOKEN.
	Type string `json:"type,omitempty" validate:"omitempty,oneof=TOKEN REQUEST"`

	// AuthorizationToken is the raw Authorization value, "Bearer " prefix optional
	AuthorizationToken string `json:"authorizationToken,omitempty"`

	// MethodArn identifies the resource being invoked
	MethodArn string `json:"methodArn" validate:"required"`

	// Headers of the original request (REQUEST events)
	Headers map[string]string `json:"headers,omitempty"`
}

// Token returns the bearer token wherever the event carries it.
func (r AuthorizeRequest) Token() string {
	if r.AuthorizationToken != "" {
		return r.AuthorizationToken
	}
	return httpx.HeaderValue(r.Headers, "Authorization")
}

// ============================================================================
// Authorizer Response Types
// ============================================================================

// EffectAllow is the statement effect that grants invocation. The policy
// vocabulary itself is owned by the server; clients only need to recognise
// an Allow.
const EffectAllow = "Allow"

// Statement is a single IAM policy statement.
type Statement struct {
	Action   string   `json:"Action"`
	Effect   string   `json:"Effect"`
	Resource []string `json:"Resource"`
}

// PolicyDocument is the IAM-style policy the gateway enforces.
type PolicyDocument struct {
	Version   string      `json:"Version"`
	Statement []Statement `json:"Statement"`
}

// IdentityContext is the caller identity attached to an Allow. A Deny
// carries an empty object.
type IdentityContext struct {
	Namespace string   `json:"namespace"`
	ID        string   `json:"id"`
	Scopes    []string `json:"scopes"`
}

// complete reports whether both halves of the principal are present.
func (c *IdentityContext) complete() bool {
	return c != nil && c.Namespace != "" && c.ID != ""
}

// identityOrNil drops the empty object a Deny carries, and anything else
// that is not a whole identity.
func identityOrNil(c *IdentityContext) *IdentityContext {
	if !c.complete() {
		return nil
	}
	return c
}

// AuthorizerResponse is returned from POST /v1/authorize for both Allow and
// Deny outcomes.
type AuthorizerResponse struct {
	PrincipalID    string           `json:"principalId"`
	PolicyDocument PolicyDocument   `json:"policyDocument"`
	Context        *IdentityContext `json:"context"`
}

// MarshalJSON renders a nil Context as {} rather than null.
func (r AuthorizerResponse) MarshalJSON() ([]byte, error) {
	type alias AuthorizerResponse
	var ctx any = r.Context
	if r.Context == nil {
		ctx = struct{}{}
	}
	return json.Marshal(struct {
		alias
		Context any `json:"context"`
	}{alias: alias(r), Context: ctx})
}

// UnmarshalJSON decodes an incomplete context, including {}, as nil.
func (r *AuthorizerResponse) UnmarshalJSON(data []byte) error {
	type alias AuthorizerResponse
	var in alias
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*r = AuthorizerResponse(in)
	r.Context = identityOrNil(r.Context)
	return nil
}

// Allowed reports whether every statement allows invocation.
func (r AuthorizerResponse) Allowed() bool {
	if len(r.PolicyDocument.Statement) == 0 {
		return false
	}
	return !slices.ContainsFunc(r.PolicyDocument.Statement, func(s Statement) bool {
		return s.Effect != EffectAllow
	})
}

// DecisionResponse is the bare decision returned from POST /v1/decisions.
type DecisionResponse struct {
	Effect    string           `json:"effect"`
	Resource  string           `json:"resource"`
	Principal string           `json:"principal"`
	Context   *IdentityContext `json:"context"`
}

// UnmarshalJSON decodes an incomplete context, including {}, as nil.
func (r *DecisionResponse) UnmarshalJSON(data []byte) error {
	type alias DecisionResponse
	var in alias
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*r = DecisionResponse(in)
	r.Context = identityOrNil(r.Context)
	return nil
}

// WhoAmIResponse describes the caller of GET /v1/whoami.
type WhoAmIResponse struct {
	Principal string   `json:"principal"`
	Scopes    []string `json:"scopes"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains the status of individual components (readyz only)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of the components readiness depends on.
type HealthChecks struct {
	// Verifier indicates whether a verification key is loaded
	Verifier string `json:"verifier"`

	// Algorithm is the only signing algorithm accepted
	Algorithm string `json:"algorithm,omitempty"`
}
