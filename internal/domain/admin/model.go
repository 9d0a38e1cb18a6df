package admin

import (
	"strings"
	"time"
)

// Collection is the document collection holding admin accounts.
const Collection = "admins"

const (
	fieldUsername     = "username"
	fieldPasswordHash = "passwordHash"
	fieldEmail        = "email"
	fieldCreatedAt    = "createdAt"
)

// Account represents an administrator stored in the document store.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	CreatedAt    time.Time
}

// Profile is the public view of an Account. It never carries the password hash.
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a *Account) Profile() Profile {
	return Profile{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

// NormalizeUsername returns the trimmed, lower-cased form used for lookups.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
