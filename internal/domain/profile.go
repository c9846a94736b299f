package domain

import "time"

// PatientProfile carries patient-specific attributes, 1:1 with an Identity.
type PatientProfile struct {
	ID          string
	IdentityID  string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	BloodGroup  *string
	Phone       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DoctorProfile carries doctor-specific attributes, 1:1 with an Identity.
type DoctorProfile struct {
	ID             string
	IdentityID     string
	FirstName      string
	LastName       string
	Specialization string
	LicenseNumber  string
	Department     string
	Phone          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
