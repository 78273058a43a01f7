package models

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type UserAccount struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"`
	Role         string    `json:"role"` // ADMIN, USER
	Avatar       *string   `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CanView reports whether the account may see a record owned by ownerID.
// Admins see everything, regular users only their own records.
func (u UserAccount) CanView(ownerID string) bool {
	return u.Role == RoleAdmin || u.ID == ownerID
}

func (u UserAccount) IsAdmin() bool {
	return u.Role == RoleAdmin
}
