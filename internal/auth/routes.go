package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RadRun/RR-Backend/internal/config"
	"github.com/RadRun/RR-Backend/internal/middleware"
)

// SetupRoutes wires /auth. Login and sign-up are the only routes reachable
// without a session; everything else lives inside the middleware group, so
// the allow-list is the route registration itself and can't drift from the
// route table.
func SetupRoutes(svc *Service, cfg config.Config) http.Handler {
	h := &Handler{Auth: svc, CookieSecure: cfg.CookieSecure}
	r := chi.NewRouter()

	r.Post("/login", h.LoginHandler)
	r.Post("/sign-up", h.SignUpHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(svc))
		r.Post("/logout", h.LogoutHandler)
		r.Get("/me", h.MeHandler)
	})

	return r
}
