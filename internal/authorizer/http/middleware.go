package http

import (
	"net/http"

	"github.com/aussiebroadwan/authorizer/internal/authorizer/service"
	"github.com/aussiebroadwan/authorizer/pkg/authsdk"
	"github.com/aussiebroadwan/authorizer/pkg/httpx"
)

// RequireAllow runs the decision pipeline on the request's own bearer token,
// using "METHOD /path" as the resource. Only an Allow reaches next.
func RequireAllow(svc *service.AuthorizeService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			decision, err := svc.Authorize(ctx, httpx.BearerToken(r), r.Method+" "+r.URL.Path)
			if err != nil {
				authsdk.ErrServerError.WriteError(w)
				return
			}
			if !decision.Allowed() {
				httpx.WriteBearerError(w, "access denied")
				return
			}

			// Inject into context for downstream handlers.
			ctx = httpx.WithPrincipal(ctx, decision.Principal, decision.Context.Scopes)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
