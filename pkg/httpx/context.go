package httpx

import "context"

type ctxKey string

const (
	CtxKeyPrincipal ctxKey = "principal"
	CtxKeyScopes    ctxKey = "scopes"
)

// WithPrincipal records the authorized caller on the request context.
func WithPrincipal(ctx context.Context, principal string, scopes []string) context.Context {
	ctx = context.WithValue(ctx, CtxKeyPrincipal, principal)
	ctx = context.WithValue(ctx, CtxKeyScopes, scopes)
	return ctx
}

func PrincipalFromContext(ctx context.Context) (string, bool) {
	p, ok := ctx.Value(CtxKeyPrincipal).(string)
	return p, ok && p != ""
}

func ScopesFromContext(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyScopes).([]string); ok {
		return v
	}
	return nil
}
