package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/RadRun/RR-Backend/internal/db"
	"github.com/RadRun/RR-Backend/internal/principal"
	"github.com/RadRun/RR-Backend/internal/seeds"
	"github.com/RadRun/RR-Backend/internal/session"
)

func main() {
	path := flag.String("file", "seeds/principals.yaml", "path to the seed fixture")
	flag.Parse()

	_ = godotenv.Load(".env.local")
	db.Connect()
	principal.Init()
	session.Init()

	if err := seeds.SeedAll(*path); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
