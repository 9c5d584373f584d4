package session

import "time"

// Session is a bearer-credential row. ID is the random uuid token the
// client carries in the session_id cookie; it is the sole credential for
// authenticated requests. One principal may hold any number of live
// sessions at once.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"session_id"`
	UserID    int64     `gorm:"not null;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Session) TableName() string { return "app_auth.sessions" }
