// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing one account.
// UserName doubles as the login name and mirrors the email at registration
// time; both carry unique constraints in the store.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier for the account.
	Email        string    // Primary contact email, used as the login identifier.
	UserName     string    // Unique login name; set to the email on registration.
	FirstName    string    // Optional given name.
	LastName     string    // Optional family name.
	PhotoURL     string    // Reference to the account's photo.
	Workdays     int       // Worked days, consumed by the salary calculation.
	PasswordHash string    // bcrypt hash of the password; never the plaintext.
	Roles        Roles     // Role memberships; never empty after registration.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
