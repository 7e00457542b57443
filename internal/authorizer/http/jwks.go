package http

import (
	"net/http"

	"github.com/aussiebroadwan/authorizer/pkg/authsdk"
	"github.com/aussiebroadwan/authorizer/pkg/httpx"
	"github.com/aussiebroadwan/authorizer/pkg/jwtx"
	"github.com/lestrrat-go/jwx/v3/jwk"
)

// JWKSHandler publishes the verification key so operators can confirm which
// key a running instance trusts. The kid is the key's RFC 7638 thumbprint.
//
//	@Summary		Get JWKS
//	@Description	Returns the configured verification key as a JSON Web Key Set.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	map[string]any			"The JSON Web Key Set"
//	@Failure		503	{object}	authsdk.ErrorResponse	"No usable key loaded"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys KeySource) http.HandlerFunc {
	var (
		set jwk.Set
		err error
	)
	if keys != nil && keys.PublicKey() != nil {
		set, err = jwtx.PublicJWKS(keys.PublicKey(), keys.Alg())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if set == nil || err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, authsdk.ErrorResponse{
				Error:            "unavailable",
				ErrorDescription: "no usable verification key",
			})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, set)
	}
}
