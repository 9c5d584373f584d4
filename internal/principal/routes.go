package principal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes builds the CRUD route tree. The same tree is mounted at both
// /api/user and /api/account; every route here sits behind the session
// middleware applied at the mount point in main.
func SetupRoutes(store Store) http.Handler {
	h := &Handler{Store: store}
	r := chi.NewRouter()

	r.Post("/", h.CreateHandler)
	r.Get("/", h.ListHandler)
	r.Get("/{id}", h.GetHandler)
	r.Put("/{id}", h.UpdateHandler)
	r.Delete("/{id}", h.DeleteHandler)

	return r
}
