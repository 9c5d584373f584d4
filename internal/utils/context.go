package utils

import (
	"context"

	"github.com/RadRun/RR-Backend/internal/principal"
)

type contextKey string

const contextPrincipalKey contextKey = "principal"

// WithPrincipal returns ctx carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p *principal.Principal) context.Context {
	return context.WithValue(ctx, contextPrincipalKey, p)
}

// PrincipalFromContext returns the principal attached by the session
// middleware, if any.
func PrincipalFromContext(ctx context.Context) (*principal.Principal, bool) {
	p, ok := ctx.Value(contextPrincipalKey).(*principal.Principal)
	return p, ok
}
