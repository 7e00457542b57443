package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/authorizer/internal/authorizer/domain"
	"github.com/aussiebroadwan/authorizer/internal/authorizer/service"
	"github.com/aussiebroadwan/authorizer/pkg/authsdk"
	"github.com/aussiebroadwan/authorizer/pkg/httpx"
	"github.com/aussiebroadwan/authorizer/pkg/slogx"
)

const maxEventBytes = 64 << 10

type AuthorizeHandler struct {
	AuthorizeService *service.AuthorizeService
}

// HandleAuthorize answers an API Gateway style authorizer event.
//
//	@Summary		Authorize a request
//	@Description	Verifies the bearer token carried by the event and returns an IAM policy allowing or denying execute-api:Invoke on methodArn.
//	@Description	Both outcomes are returned with 200. On Allow the context holds namespace, id and scopes; on Deny it is empty.
//	@Tags			Authorizer
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.AuthorizeRequest			true	"Authorizer event"
//	@Success		200		{object}	authsdk.AuthorizerResponse			"Policy document and identity context"
//	@Failure		400		{object}	authsdk.ErrorResponse				"Invalid JSON, missing methodArn or unknown event type"
//	@Router			/v1/authorize [post].
func (h *AuthorizeHandler) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	decision, ok := h.decide(w, r)
	if !ok {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAuthorizerResponse(decision))
}

// HandleDecision is HandleAuthorize without the IAM wrapping.
//
//	@Summary		Decide on a request
//	@Description	Same input as /v1/authorize, returns the bare decision.
//	@Tags			Authorizer
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.AuthorizeRequest		true	"Authorizer event"
//	@Success		200		{object}	authsdk.DecisionResponse		"effect, resource, principal, context"
//	@Failure		400		{object}	authsdk.ErrorResponse			"Invalid JSON or missing methodArn"
//	@Router			/v1/decisions [post].
func (h *AuthorizeHandler) HandleDecision(w http.ResponseWriter, r *http.Request) {
	decision, ok := h.decide(w, r)
	if !ok {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, decision)
}

// decide parses the event and runs the pipeline. It writes the error
// response itself and reports false when there is no decision to send.
func (h *AuthorizeHandler) decide(w http.ResponseWriter, r *http.Request) (domain.Decision, bool) {
	l := slogx.FromContext(r.Context())

	// 1. Parse request body
	var req authsdk.AuthorizeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBytes)).Decode(&req); err != nil {
		l.Debug("authorize: bad body", "err", err)
		authsdk.ErrInvalidRequest.WriteError(w)
		return domain.Decision{}, false
	}

	// 2. Validate the event shape; a missing resource gets its own code
	if errs := req.Validate(); errs != nil {
		if _, missing := errs["methodArn"]; missing {
			authsdk.ErrMissingResource.WriteError(w)
		} else {
			authsdk.NewValidationError(errs).WriteError(w)
		}
		return domain.Decision{}, false
	}

	// 3. Decide
	decision, err := h.AuthorizeService.Authorize(r.Context(), req.Token(), req.MethodArn)
	if err != nil {
		if errors.Is(err, domain.ErrMissingResource) {
			authsdk.ErrMissingResource.WriteError(w)
		} else {
			l.Error("authorize failed", "err", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return domain.Decision{}, false
	}

	return decision, true
}

func toAuthorizerResponse(d domain.Decision) authsdk.AuthorizerResponse {
	policy := d.Policy()

	statements := make([]authsdk.Statement, len(policy.Statement))
	for i, s := range policy.Statement {
		statements[i] = authsdk.Statement{
			Action:   s.Action,
			Effect:   string(s.Effect),
			Resource: s.Resource,
		}
	}

	resp := authsdk.AuthorizerResponse{
		PrincipalID: d.Principal,
		PolicyDocument: authsdk.PolicyDocument{
			Version:   policy.Version,
			Statement: statements,
		},
	}
	if d.Context != nil {
		resp.Context = &authsdk.IdentityContext{
			Namespace: d.Context.Namespace,
			ID:        d.Context.ID,
			Scopes:    d.Context.Scopes,
		}
	}
	return resp
}
