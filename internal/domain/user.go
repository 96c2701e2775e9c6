package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Credential holds the bcrypt hash for a user, one row per user.
// It lives in its own table so ordinary user reads never load the hash;
// only the login verification path does.
type Credential struct {
	UserID uuid.UUID `json:"-" gorm:"type:uuid;primary_key"`
	User   User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Hash   string    `json:"-" gorm:"not null"`
}
