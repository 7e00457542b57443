package http

import (
	"crypto"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/authorizer/internal/authorizer/service"
	"github.com/aussiebroadwan/authorizer/pkg/httpx"
	"github.com/aussiebroadwan/authorizer/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/authorizer/api/authorizer" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// KeySource is the part of the verifier the operational endpoints report on.
type KeySource interface {
	Alg() string
	PublicKey() crypto.PublicKey
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         KeySource
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	AuthorizeService *service.AuthorizeService
	Metrics          *service.Metrics // Optional: /metrics is only served when set
}

func NewRouter(keys KeySource, buildVersion string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(func(req *http.Request, v any) {
			slogx.FromContext(req.Context()).Error("handler panic", "panic", v)
		}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuthorizer()
	r.registerIdentity()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Authorizer API
//	@version		0.1.0
//	@description	Bearer-token authorizer. Verifies a JWT against a fixed public key and returns an allow or deny decision for the requested resource.
//	@description
//	@description				A Deny is a normal 200 response. Only a request without a resource is rejected outright.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/authorizer
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuthorizer() {
	h := &AuthorizeHandler{AuthorizeService: r.AuthorizeService}

	r.Mux.Handle("POST /v1/authorize", http.HandlerFunc(h.HandleAuthorize))
	r.Mux.Handle("POST /v1/decisions", http.HandlerFunc(h.HandleDecision))
}

func (r *Router) registerIdentity() {
	// The authorizer guards its own endpoint with the same pipeline it
	// offers to others.
	secured := httpx.Chain(WhoAmIHandler(),
		RequireAllow(r.AuthorizeService),
	)

	r.Mux.Handle("GET /v1/whoami", secured)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.keys))
	r.Mux.Handle("GET /.well-known/jwks.json", JWKSHandler(r.keys))

	if r.Metrics != nil {
		r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.Metrics.Registry, promhttp.HandlerOpts{}))
	}
}
