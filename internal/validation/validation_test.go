package validation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/patient-portal/internal/api/dto"
	"github.com/spec-kit/patient-portal/internal/domain"
	apperrors "github.com/spec-kit/patient-portal/pkg/util"
)

const doctorUUID = "5f0c2f9e-9f58-4f0a-8b8f-111111111111"
const patientUUID = "5f0c2f9e-9f58-4f0a-8b8f-222222222222"

func fieldDetails(t *testing.T, err error) map[string]any {
	t.Helper()
	de := apperrors.ToDomainError(err)
	require.NotNil(t, de)
	require.Equal(t, "VALIDATION_FAILED", de.Code)
	return de.Details
}

func TestValidateLogin(t *testing.T) {
	input, err := ValidateLogin(dto.LoginRequest{Email: "pat@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "pat@example.com", input.Email)

	_, err = ValidateLogin(dto.LoginRequest{Email: "not-an-email", Password: "secret"})
	details := fieldDetails(t, err)
	assert.Contains(t, details, "email")

	_, err = ValidateLogin(dto.LoginRequest{Email: "pat@example.com"})
	details = fieldDetails(t, err)
	assert.Contains(t, details, "password")
}

func TestValidateRegisterPatient(t *testing.T) {
	valid := dto.RegisterPatientRequest{
		Email:       "pat@example.com",
		Password:    "S3curePass!",
		FirstName:   "Pat",
		LastName:    "Example",
		DateOfBirth: "1990-04-12",
		Phone:       "555-0100",
		Address:     "1 Main St",
	}

	input, err := ValidateRegisterPatient(valid)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), input.DateOfBirth)

	short := valid
	short.Password = "short"
	_, err = ValidateRegisterPatient(short)
	assert.Contains(t, fieldDetails(t, err), "password")

	badDate := valid
	badDate.DateOfBirth = "12/04/1990"
	_, err = ValidateRegisterPatient(badDate)
	assert.Contains(t, fieldDetails(t, err), "dateOfBirth")

	missing := valid
	missing.FirstName = ""
	missing.Address = ""
	_, err = ValidateRegisterPatient(missing)
	details := fieldDetails(t, err)
	assert.Contains(t, details, "firstName")
	assert.Contains(t, details, "address")
}

func TestValidateRegisterDoctor(t *testing.T) {
	valid := dto.RegisterDoctorRequest{
		Email:          "doc@example.com",
		Password:       "S3curePass!",
		FirstName:      "Dana",
		LastName:       "Doctor",
		Specialization: "Cardiology",
		LicenseNumber:  "LIC-1",
		Department:     "Cardio",
	}

	_, err := ValidateRegisterDoctor(valid)
	require.NoError(t, err)

	missing := valid
	missing.Specialization = ""
	missing.LicenseNumber = ""
	_, err = ValidateRegisterDoctor(missing)
	details := fieldDetails(t, err)
	assert.Contains(t, details, "specialization")
	assert.Contains(t, details, "licenseNumber")
}

func TestValidateChangePassword(t *testing.T) {
	_, err := ValidateChangePassword(dto.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "brand-new-pass",
	})
	require.NoError(t, err)

	_, err = ValidateChangePassword(dto.ChangePasswordRequest{NewPassword: "short"})
	details := fieldDetails(t, err)
	assert.Contains(t, details, "currentPassword")
	assert.Contains(t, details, "newPassword")
}

func TestValidateAppointmentCreate(t *testing.T) {
	valid := dto.CreateAppointmentRequest{
		DoctorID:        doctorUUID,
		AppointmentDate: "2025-03-01",
		AppointmentTime: "10:00 AM",
		Reason:          "checkup",
	}

	input, err := ValidateAppointmentCreate(valid)
	require.NoError(t, err)
	assert.Equal(t, doctorUUID, input.DoctorID)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), input.AppointmentDate)

	badID := valid
	badID.DoctorID = "not-a-uuid"
	_, err = ValidateAppointmentCreate(badID)
	assert.Contains(t, fieldDetails(t, err), "doctorId")

	badDate := valid
	badDate.AppointmentDate = "tomorrow"
	_, err = ValidateAppointmentCreate(badDate)
	assert.Contains(t, fieldDetails(t, err), "appointmentDate")

	missing := dto.CreateAppointmentRequest{DoctorID: doctorUUID}
	_, err = ValidateAppointmentCreate(missing)
	details := fieldDetails(t, err)
	assert.Contains(t, details, "appointmentDate")
	assert.Contains(t, details, "appointmentTime")
	assert.Contains(t, details, "reason")
}

func TestValidateAppointmentCreateAcceptsRFC3339(t *testing.T) {
	input, err := ValidateAppointmentCreate(dto.CreateAppointmentRequest{
		DoctorID:        doctorUUID,
		AppointmentDate: "2025-03-01T00:00:00Z",
		AppointmentTime: "10:00 AM",
		Reason:          "checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, 2025, input.AppointmentDate.Year())
}

func TestValidateAppointmentUpdate(t *testing.T) {
	status := "COMPLETED"
	input, err := ValidateAppointmentUpdate(dto.UpdateAppointmentRequest{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, input.Status)
	assert.Equal(t, domain.AppointmentStatusCompleted, *input.Status)
	assert.Nil(t, input.Reason)
	assert.False(t, input.Notes.Set)

	bad := "ARCHIVED"
	_, err = ValidateAppointmentUpdate(dto.UpdateAppointmentRequest{Status: &bad})
	assert.Contains(t, fieldDetails(t, err), "status")

	empty := ""
	_, err = ValidateAppointmentUpdate(dto.UpdateAppointmentRequest{Reason: &empty})
	assert.Contains(t, fieldDetails(t, err), "reason")
}

func TestValidateAppointmentUpdateNotesTriState(t *testing.T) {
	var req dto.UpdateAppointmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"notes": null}`), &req))

	input, err := ValidateAppointmentUpdate(req)
	require.NoError(t, err)
	assert.True(t, input.Notes.Set)
	assert.Nil(t, input.Notes.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"notes": "fasting required"}`), &req))
	input, err = ValidateAppointmentUpdate(req)
	require.NoError(t, err)
	assert.True(t, input.Notes.Set)
	require.NotNil(t, input.Notes.Value)
	assert.Equal(t, "fasting required", *input.Notes.Value)
}

func TestValidateMedicalRecordCreate(t *testing.T) {
	valid := dto.CreateMedicalRecordRequest{
		PatientID: patientUUID,
		Diagnosis: "Seasonal allergy",
		Symptoms:  "Sneezing",
	}

	_, err := ValidateMedicalRecordCreate(valid)
	require.NoError(t, err)

	badID := valid
	badID.PatientID = "nope"
	_, err = ValidateMedicalRecordCreate(badID)
	assert.Contains(t, fieldDetails(t, err), "patientId")

	badLink := valid
	dangling := "not-a-uuid"
	badLink.AppointmentID = &dangling
	_, err = ValidateMedicalRecordCreate(badLink)
	assert.Contains(t, fieldDetails(t, err), "appointmentId")
}

func TestValidateMedicalRecordUpdate(t *testing.T) {
	diagnosis := "Chronic allergy"
	input, err := ValidateMedicalRecordUpdate(dto.UpdateMedicalRecordRequest{Diagnosis: &diagnosis})
	require.NoError(t, err)
	require.NotNil(t, input.Diagnosis)
	assert.Nil(t, input.Symptoms)

	empty := ""
	_, err = ValidateMedicalRecordUpdate(dto.UpdateMedicalRecordRequest{Symptoms: &empty})
	assert.Contains(t, fieldDetails(t, err), "symptoms")
}

func TestValidatePrescriptionCreate(t *testing.T) {
	valid := dto.CreatePrescriptionRequest{
		PatientID:  patientUUID,
		Medication: "Cetirizine",
		Dosage:     "10mg",
		Frequency:  "once daily",
		Duration:   "14 days",
	}

	_, err := ValidatePrescriptionCreate(valid)
	require.NoError(t, err)

	missing := dto.CreatePrescriptionRequest{PatientID: patientUUID}
	_, err = ValidatePrescriptionCreate(missing)
	details := fieldDetails(t, err)
	assert.Contains(t, details, "medication")
	assert.Contains(t, details, "dosage")
	assert.Contains(t, details, "frequency")
	assert.Contains(t, details, "duration")
}

func TestValidatePrescriptionUpdate(t *testing.T) {
	dosage := "5mg"
	input, err := ValidatePrescriptionUpdate(dto.UpdatePrescriptionRequest{Dosage: &dosage})
	require.NoError(t, err)
	require.NotNil(t, input.Dosage)
	assert.Nil(t, input.Medication)

	empty := ""
	_, err = ValidatePrescriptionUpdate(dto.UpdatePrescriptionRequest{Medication: &empty})
	assert.Contains(t, fieldDetails(t, err), "medication")
}
