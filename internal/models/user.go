package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity a wallet belongs to. It exists to serve the
// registration/login flow; the wallet core only references its ID.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FullName  string    `json:"full_name"`
	Role      string    `gorm:"default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a user with a fresh id. The password must already
// be hashed.
func NewUser(email, passwordHash, fullName string) *User {
	return &User{
		ID:       uuid.New(),
		Email:    email,
		Password: passwordHash,
		FullName: fullName,
		Role:     "user",
	}
}
