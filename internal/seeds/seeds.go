package seeds

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/RadRun/RR-Backend/internal/apperr"
	"github.com/RadRun/RR-Backend/internal/db"
	"github.com/RadRun/RR-Backend/internal/passhash"
	"github.com/RadRun/RR-Backend/internal/principal"
)

type seedPrincipal struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
}

type seedFile struct {
	Principals []seedPrincipal `yaml:"principals"`
}

// SeedAll loads demo principals from the YAML fixture at path. Entries
// whose email already exists are skipped, so reseeding is safe.
func SeedAll(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parsing seed file: %w", err)
	}

	ctx := context.Background()
	store := principal.NewStore(db.DB)

	for _, sp := range file.Principals {
		hash, err := passhash.Hash(sp.Password)
		if err != nil {
			return err
		}

		_, err = store.Create(ctx, principal.CreateParams{
			FirstName:    sp.FirstName,
			LastName:     sp.LastName,
			Email:        sp.Email,
			PasswordHash: hash,
		})
		if errors.Is(err, apperr.ErrConflict) {
			log.Printf("seed: %s already exists, skipping", sp.Email)
			continue
		}
		if err != nil {
			return err
		}
		log.Printf("seed: created %s", sp.Email)
	}

	return nil
}
