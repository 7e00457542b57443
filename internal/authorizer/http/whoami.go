package http

import (
	"net/http"

	"github.com/aussiebroadwan/authorizer/pkg/authsdk"
	"github.com/aussiebroadwan/authorizer/pkg/httpx"
)

// WhoAmIHandler godoc
//
//	@Summary		Describe the caller
//	@Description	Returns the principal and scopes of the bearer token, after the full decision pipeline allowed it.
//	@Tags			Identity
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	authsdk.WhoAmIResponse	"principal, scopes"
//	@Failure		401	{object}	authsdk.ErrorResponse	"Token denied"
//	@Router			/v1/whoami [get].
func WhoAmIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpx.PrincipalFromContext(r.Context())
		if !ok {
			httpx.WriteBearerError(w, "access denied")
			return
		}

		scopes := httpx.ScopesFromContext(r.Context())
		if scopes == nil {
			scopes = []string{}
		}

		httpx.WriteJSON(w, http.StatusOK, authsdk.WhoAmIResponse{
			Principal: principal,
			Scopes:    scopes,
		})
	}
}
