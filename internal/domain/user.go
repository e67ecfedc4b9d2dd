package domain

import "time"

// User is an operator of the ledger. PasswordHash is a bcrypt hash.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         UserRole
	Email        string
	FullName     string
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin returns true if the user holds the ADMIN role.
func (u *User) IsAdmin() bool { return u.Role.IsAdmin() }

// Principal is the resolved identity behind an authenticated request.
type Principal struct {
	UserID   int64
	Username string
	Role     UserRole
	Enabled  bool
}
