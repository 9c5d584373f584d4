package principal

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/RadRun/RR-Backend/internal/apperr"
)

// CreateParams carries the fields for a new principal row. The hash is
// computed by the caller; this package never sees plaintext passwords.
type CreateParams struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

// UpdateParams carries the only fields the update route may change. Email
// and password are immutable after creation.
type UpdateParams struct {
	FirstName string
	LastName  string
}

// Store is the persistence surface the handlers and the auth service
// depend on.
type Store interface {
	Create(ctx context.Context, params CreateParams) (*Principal, error)
	GetByID(ctx context.Context, id int64) (*Principal, error)
	GetByEmail(ctx context.Context, email string) (*Principal, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*Principal, error)
	Delete(ctx context.Context, id int64) (*Principal, error)
	List(ctx context.Context) ([]Principal, error)
}

// GormStore implements Store over the shared GORM connection.
type GormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

// WithTx returns a store bound to tx so callers can group writes with
// other statements in one transaction.
func (s *GormStore) WithTx(tx *gorm.DB) *GormStore { return &GormStore{db: tx} }

// Postgres unique_violation. GORM's postgres driver rides on pgx, so
// constraint failures surface as *pgconn.PgError.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *GormStore) Create(ctx context.Context, params CreateParams) (*Principal, error) {
	p := Principal{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email taken: %w", apperr.ErrConflict)
		}
		return nil, fmt.Errorf("creating principal: %w", err)
	}
	return &p, nil
}

func (s *GormStore) GetByID(ctx context.Context, id int64) (*Principal, error) {
	var p Principal
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "fetching principal")
	}
	return &p, nil
}

func (s *GormStore) GetByEmail(ctx context.Context, email string) (*Principal, error) {
	var p Principal
	if err := s.db.WithContext(ctx).First(&p, "email = ?", email).Error; err != nil {
		return nil, notFoundOr(err, "fetching principal by email")
	}
	return &p, nil
}

// Update changes the name fields and refreshes updated_at, returning the
// updated row.
func (s *GormStore) Update(ctx context.Context, id int64, params UpdateParams) (*Principal, error) {
	var p Principal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&p).Updates(map[string]any{
			"first_name": params.FirstName,
			"last_name":  params.LastName,
		}).Error
	})
	if err != nil {
		return nil, notFoundOr(err, "updating principal")
	}
	return &p, nil
}

// Delete removes the row and returns it as it was.
func (s *GormStore) Delete(ctx context.Context, id int64) (*Principal, error) {
	var p Principal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		return nil, notFoundOr(err, "deleting principal")
	}
	return &p, nil
}

// List returns every principal. Row order is whatever the database gives
// back; callers must not rely on it.
func (s *GormStore) List(ctx context.Context) ([]Principal, error) {
	var ps []Principal
	if err := s.db.WithContext(ctx).Find(&ps).Error; err != nil {
		return nil, fmt.Errorf("listing principals: %w", err)
	}
	return ps, nil
}
