package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/RadRun/RR-Backend/internal/principal"
	"github.com/RadRun/RR-Backend/internal/utils"
)

// SessionResolver turns a session token into the principal that owns it.
// *auth.Service implements it; tests substitute a fake.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*principal.Principal, error)
}

// SessionMiddleware gates a route group behind the session_id cookie. A
// route is public iff it is registered outside a group using this
// middleware, so the allow-list is the route registration itself. On
// success the resolved principal rides the request context; handlers fetch
// it with utils.PrincipalFromContext.
func SessionMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("session_id")
			if err != nil {
				http.Error(w, "Couldn't find cookie", http.StatusUnauthorized)
				return
			}

			token, err := uuid.Parse(cookie.Value)
			if err != nil {
				http.Error(w, "Invalid session token", http.StatusUnauthorized)
				return
			}

			p, err := resolver.ResolveSession(r.Context(), token.String())
			if err != nil {
				http.Error(w, "Couldn't find session", http.StatusUnauthorized)
				return
			}

			ctx := utils.WithPrincipal(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CORSMiddleware echoes the origin back only if it's on the allow-list.
func CORSMiddleware(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // important for caches
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods",
					"GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Authorization")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
