package principal

import "time"

// Principal is the persisted account/user record. Account and User are the
// same shape and behavior, so one model backs both route trees.
//
// Email uniqueness is byte-wise via the unique index; no case folding is
// applied anywhere. PasswordHash never serializes to clients.
type Principal struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Principal) TableName() string { return "app_auth.principals" }
