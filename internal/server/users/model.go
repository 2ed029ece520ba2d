package users

import "time"

// User is an account of the dev backend. Accounts created through a social
// provider have no password hash.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	// Identity is "<provider>:<subject>" for social accounts.
	Identity  string
	CreatedAt time.Time
}
