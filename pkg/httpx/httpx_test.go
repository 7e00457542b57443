package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/authorizer/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("outer"), mark("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestRecover(t *testing.T) {
	var got any
	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}), httpx.Recover(func(r *http.Request, v any) { got = v }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "boom", got)
}

func TestHeaderValue(t *testing.T) {
	headers := map[string]string{"authorization": "Bearer abc", "X-Other": "1"}

	require.Equal(t, "Bearer abc", httpx.HeaderValue(headers, "Authorization"))
	require.Equal(t, "1", httpx.HeaderValue(headers, "x-other"))
	require.Empty(t, httpx.HeaderValue(headers, "missing"))
	require.Empty(t, httpx.HeaderValue(nil, "Authorization"))
}

func TestPrincipalContext(t *testing.T) {
	_, ok := httpx.PrincipalFromContext(context.Background())
	require.False(t, ok)

	ctx := httpx.WithPrincipal(context.Background(), "user:1", []string{"read"})
	p, ok := httpx.PrincipalFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "user:1", p)
	require.Equal(t, []string{"read"}, httpx.ScopesFromContext(ctx))
}

func TestWriteBearerError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteBearerError(rec, "denied")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), `error="invalid_token"`)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"error":"invalid_token","error_description":"denied"}`, rec.Body.String())
}
