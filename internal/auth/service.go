package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/RadRun/RR-Backend/internal/apperr"
	"github.com/RadRun/RR-Backend/internal/passhash"
	"github.com/RadRun/RR-Backend/internal/principal"
	"github.com/RadRun/RR-Backend/internal/session"
)

// SignUpParams carries a new registration. Password is plaintext; it is
// hashed here and discarded.
type SignUpParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Service orchestrates the hasher and the two stores. It holds no state of
// its own beyond the database handle used to group sign-up's two writes
// into one transaction.
type Service struct {
	db         *gorm.DB
	principals *principal.GormStore
	sessions   *session.Store
}

func NewService(db *gorm.DB, principals *principal.GormStore, sessions *session.Store) *Service {
	return &Service{db: db, principals: principals, sessions: sessions}
}

// SignUp hashes the password, then creates the principal and its first
// session inside a single transaction: a duplicate email aborts before any
// session row exists, and a session insert failure rolls the principal
// back.
func (s *Service) SignUp(ctx context.Context, params SignUpParams) (*principal.Principal, *session.Session, error) {
	hash, err := passhash.Hash(params.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hashing password: %w", err)
	}

	var (
		p    *principal.Principal
		sess *session.Session
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		p, err = s.principals.WithTx(tx).Create(ctx, principal.CreateParams{
			FirstName:    params.FirstName,
			LastName:     params.LastName,
			Email:        params.Email,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
		sess, err = s.sessions.WithTx(tx).Create(ctx, p.ID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return p, sess, nil
}

// Login verifies credentials and issues a fresh session. Unknown email and
// wrong password produce the same ErrUnauthorized on purpose, so the
// response never reveals which check failed.
func (s *Service) Login(ctx context.Context, email, password string) (*session.Session, error) {
	p, err := s.principals.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrUnauthorized
		}
		return nil, err
	}

	ok, err := passhash.Verify(password, p.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, apperr.ErrUnauthorized
	}

	return s.sessions.Create(ctx, p.ID)
}

// Logout deletes the session for token and returns the deleted row.
func (s *Service) Logout(ctx context.Context, token string) (*session.Session, error) {
	return s.sessions.Delete(ctx, token)
}

// ResolveSession returns the principal owning token; the session
// middleware calls this on every protected request.
func (s *Service) ResolveSession(ctx context.Context, token string) (*principal.Principal, error) {
	return s.sessions.Resolve(ctx, token)
}

// SessionTTL exposes the configured session lifetime; the handlers derive
// the cookie max-age and expires_at response fields from it.
func (s *Service) SessionTTL() time.Duration { return s.sessions.TTL() }
