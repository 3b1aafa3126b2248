package domain

import "time"

// User is the domain entity for a registered account.
// Email is optional; when set it is unique across all accounts.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        *string
	CreatedAt    time.Time
}
