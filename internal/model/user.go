package model

import "time"

// Role identifies what a user does on the marketplace.  Tenants browse
// and book viewings; landlords and agents list properties and resolve
// viewing requests.  Booking authorization itself is ownership-based,
// not role-based, so the role only gates which endpoints are reachable.
type Role string

// Supported profile roles.
const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
	RoleAgent    Role = "agent"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleTenant, RoleLandlord, RoleAgent:
		return true
	}
	return false
}

// CanListProperties reports whether the role may create listings.
func (r Role) CanListProperties() bool {
	return r == RoleLandlord || r == RoleAgent
}

// User represents a profile row in the `users` table.  The password is
// stored only as a bcrypt hash.
//
// Fields:
//  ID           – primary key (uuid string).
//  Email        – unique, normalized to lower case.
//  PasswordHash – bcrypt hashed password.
//  FullName     – display name shown to the other party of a viewing.
//  Phone        – optional contact number.
//  Role         – tenant, landlord or agent.
//  IsActive     – whether the account is active.
type User struct {
	ID           string    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	FullName     string    // users.full_name
	Phone        string    // users.phone (may be empty)
	Role         Role      // users.role
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// RefreshToken models a row in the `refresh_tokens` table.  Only the
// SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    string     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
