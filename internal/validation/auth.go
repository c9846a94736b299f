package validation

import (
	"time"

	"github.com/spec-kit/patient-portal/internal/api/dto"
)

// LoginInput is the validated login payload.
type LoginInput struct {
	Email    string
	Password string
}

// ValidateLogin checks the login payload shape before any store access.
func ValidateLogin(req dto.LoginRequest) (*LoginInput, error) {
	errs := fieldErrors{}
	if !validEmail(req.Email) {
		errs.add("email", "email must be a valid address")
	}
	if req.Password == "" {
		errs.add("password", "password is required")
	}
	if err := errs.err("Invalid login payload"); err != nil {
		return nil, err
	}
	return &LoginInput{Email: req.Email, Password: req.Password}, nil
}

// RegisterPatientInput is the validated patient registration payload.
type RegisterPatientInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	BloodGroup  *string
	Phone       string
	Address     string
}

// ValidateRegisterPatient checks the patient registration payload.
func ValidateRegisterPatient(req dto.RegisterPatientRequest) (*RegisterPatientInput, error) {
	errs := fieldErrors{}
	if !validEmail(req.Email) {
		errs.add("email", "email must be a valid address")
	}
	if len(req.Password) < 8 {
		errs.add("password", "password must be at least 8 characters")
	}
	firstName := required(errs, "firstName", req.FirstName)
	lastName := required(errs, "lastName", req.LastName)
	phone := required(errs, "phone", req.Phone)
	address := required(errs, "address", req.Address)

	var dateOfBirth time.Time
	if req.DateOfBirth == "" {
		errs.add("dateOfBirth", "dateOfBirth is required")
	} else if parsed, ok := parseDate(req.DateOfBirth); ok {
		dateOfBirth = parsed
	} else {
		errs.add("dateOfBirth", "dateOfBirth must be a valid date")
	}

	if err := errs.err("Invalid registration payload"); err != nil {
		return nil, err
	}
	return &RegisterPatientInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: dateOfBirth,
		BloodGroup:  req.BloodGroup,
		Phone:       phone,
		Address:     address,
	}, nil
}

// RegisterDoctorInput is the validated doctor registration payload.
type RegisterDoctorInput struct {
	Email          string
	Password       string
	FirstName      string
	LastName       string
	Specialization string
	LicenseNumber  string
	Department     string
	Phone          *string
}

// ValidateRegisterDoctor checks the doctor registration payload.
func ValidateRegisterDoctor(req dto.RegisterDoctorRequest) (*RegisterDoctorInput, error) {
	errs := fieldErrors{}
	if !validEmail(req.Email) {
		errs.add("email", "email must be a valid address")
	}
	if len(req.Password) < 8 {
		errs.add("password", "password must be at least 8 characters")
	}
	firstName := required(errs, "firstName", req.FirstName)
	lastName := required(errs, "lastName", req.LastName)
	specialization := required(errs, "specialization", req.Specialization)
	licenseNumber := required(errs, "licenseNumber", req.LicenseNumber)
	department := required(errs, "department", req.Department)

	if err := errs.err("Invalid registration payload"); err != nil {
		return nil, err
	}
	return &RegisterDoctorInput{
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      firstName,
		LastName:       lastName,
		Specialization: specialization,
		LicenseNumber:  licenseNumber,
		Department:     department,
		Phone:          req.Phone,
	}, nil
}

// ChangePasswordInput is the validated password-rotation payload.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ValidateChangePassword checks the password-rotation payload.
func ValidateChangePassword(req dto.ChangePasswordRequest) (*ChangePasswordInput, error) {
	errs := fieldErrors{}
	if req.CurrentPassword == "" {
		errs.add("currentPassword", "currentPassword is required")
	}
	if len(req.NewPassword) < 8 {
		errs.add("newPassword", "newPassword must be at least 8 characters")
	}
	if err := errs.err("Invalid password payload"); err != nil {
		return nil, err
	}
	return &ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}, nil
}
