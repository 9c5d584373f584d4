package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/RadRun/RR-Backend/internal/auth"
	"github.com/RadRun/RR-Backend/internal/config"
	"github.com/RadRun/RR-Backend/internal/db"
	"github.com/RadRun/RR-Backend/internal/middleware"
	"github.com/RadRun/RR-Backend/internal/principal"
	"github.com/RadRun/RR-Backend/internal/session"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")
	cfg := config.LoadFromEnv()
	db.Connect()

	principal.Init()
	session.Init()

	principals := principal.NewStore(db.DB)
	sessions := session.NewStore(db.DB, cfg.SessionTTL)
	svc := auth.NewService(db.DB, principals, sessions)

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Get("/", RootHandler)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", auth.SetupRoutes(svc, cfg))

		// /user and /account are the same entity behind two names.
		crud := principal.SetupRoutes(principals)
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionMiddleware(svc))
			r.Mount("/user", crud)
			r.Mount("/account", crud)
		})
	})

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, r))
}
