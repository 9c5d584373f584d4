package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RadRun/RR-Backend/internal/apperr"
	"github.com/RadRun/RR-Backend/internal/principal"
)

// Store persists sessions and resolves tokens back to their owners.
type Store struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewStore(db *gorm.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

// WithTx returns a store bound to tx so callers can group writes with
// other statements in one transaction.
func (s *Store) WithTx(tx *gorm.DB) *Store { return &Store{db: tx, ttl: s.ttl} }

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration { return s.ttl }

// Create issues a fresh session for ownerID with a random uuid token.
func (s *Store) Create(ctx context.Context, ownerID int64) (*Session, error) {
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}
	if err := s.db.WithContext(ctx).Create(&sess).Error; err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return &sess, nil
}

// Delete removes the session for token and returns the deleted row. The
// owning principal is untouched.
func (s *Store) Delete(ctx context.Context, token string) (*Session, error) {
	var sess Session
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sess, "id = ?", token).Error; err != nil {
			return err
		}
		return tx.Delete(&sess).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("deleting session: %w", err)
	}
	return &sess, nil
}

// Resolve returns the principal owning token. Expired sessions resolve the
// same as missing ones; callers can't tell the two apart.
func (s *Store) Resolve(ctx context.Context, token string) (*principal.Principal, error) {
	var sess Session
	if err := s.db.WithContext(ctx).First(&sess, "id = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("fetching session: %w", err)
	}

	if sess.ExpiresAt.Before(time.Now()) {
		return nil, apperr.ErrNotFound
	}

	var p principal.Principal
	if err := s.db.WithContext(ctx).First(&p, "id = ?", sess.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Owner was deleted out from under the session.
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("fetching session owner: %w", err)
	}
	return &p, nil
}
