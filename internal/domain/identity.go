package domain

import "time"

// Role distinguishes the two caller classes of the portal.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
)

// Valid reports whether the role is one of the defined values.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// Identity is the credential-bearing account record. Exactly one profile
// (patient or doctor) is linked to it; the profile id, not the identity id,
// is the ownership key on domain rows.
type Identity struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
