package validation

import (
	"github.com/spec-kit/patient-portal/internal/api/dto"
)

// MedicalRecordCreateInput is the validated record payload.
type MedicalRecordCreateInput struct {
	PatientID     string
	Diagnosis     string
	Symptoms      string
	Notes         *string
	AttachmentURL *string
	AppointmentID *string
}

// ValidateMedicalRecordCreate checks the record creation payload.
func ValidateMedicalRecordCreate(req dto.CreateMedicalRecordRequest) (*MedicalRecordCreateInput, error) {
	errs := fieldErrors{}
	if !validUUID(req.PatientID) {
		errs.add("patientId", "patientId must be a well-formed identifier")
	}
	diagnosis := required(errs, "diagnosis", req.Diagnosis)
	symptoms := required(errs, "symptoms", req.Symptoms)
	if req.AppointmentID != nil && !validUUID(*req.AppointmentID) {
		errs.add("appointmentId", "appointmentId must be a well-formed identifier")
	}

	if err := errs.err("Invalid medical record payload"); err != nil {
		return nil, err
	}
	return &MedicalRecordCreateInput{
		PatientID:     req.PatientID,
		Diagnosis:     diagnosis,
		Symptoms:      symptoms,
		Notes:         req.Notes,
		AttachmentURL: req.AttachmentURL,
		AppointmentID: req.AppointmentID,
	}, nil
}

// MedicalRecordUpdateInput is the validated partial-update patch.
type MedicalRecordUpdateInput struct {
	Diagnosis     *string
	Symptoms      *string
	Notes         dto.NullableString
	AttachmentURL dto.NullableString
}

// ValidateMedicalRecordUpdate checks the update patch.
func ValidateMedicalRecordUpdate(req dto.UpdateMedicalRecordRequest) (*MedicalRecordUpdateInput, error) {
	errs := fieldErrors{}
	input := &MedicalRecordUpdateInput{Notes: req.Notes, AttachmentURL: req.AttachmentURL}

	if req.Diagnosis != nil {
		if *req.Diagnosis == "" {
			errs.add("diagnosis", "diagnosis must not be empty")
		} else {
			input.Diagnosis = req.Diagnosis
		}
	}
	if req.Symptoms != nil {
		if *req.Symptoms == "" {
			errs.add("symptoms", "symptoms must not be empty")
		} else {
			input.Symptoms = req.Symptoms
		}
	}

	if err := errs.err("Invalid medical record payload"); err != nil {
		return nil, err
	}
	return input, nil
}
