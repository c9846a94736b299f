package dto

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterPatientRequest payload for new patient accounts.
type RegisterPatientRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	DateOfBirth string  `json:"dateOfBirth"`
	BloodGroup  *string `json:"bloodGroup,omitempty"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
}

// RegisterDoctorRequest payload for new doctor accounts.
type RegisterDoctorRequest struct {
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Specialization string  `json:"specialization"`
	LicenseNumber  string  `json:"licenseNumber"`
	Department     string  `json:"department"`
	Phone          *string `json:"phone,omitempty"`
}

// ChangePasswordRequest payload for password rotation.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// SessionResponse echoes the resolved claim for session hydration.
type SessionResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ProfileID string `json:"profileId"`
}
