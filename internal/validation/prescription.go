package validation

import (
	"github.com/spec-kit/patient-portal/internal/api/dto"
)

// PrescriptionCreateInput is the validated prescription payload.
type PrescriptionCreateInput struct {
	PatientID     string
	Medication    string
	Dosage        string
	Frequency     string
	Duration      string
	Instructions  *string
	AttachmentURL *string
}

// ValidatePrescriptionCreate checks the prescription creation payload.
func ValidatePrescriptionCreate(req dto.CreatePrescriptionRequest) (*PrescriptionCreateInput, error) {
	errs := fieldErrors{}
	if !validUUID(req.PatientID) {
		errs.add("patientId", "patientId must be a well-formed identifier")
	}
	medication := required(errs, "medication", req.Medication)
	dosage := required(errs, "dosage", req.Dosage)
	frequency := required(errs, "frequency", req.Frequency)
	duration := required(errs, "duration", req.Duration)

	if err := errs.err("Invalid prescription payload"); err != nil {
		return nil, err
	}
	return &PrescriptionCreateInput{
		PatientID:     req.PatientID,
		Medication:    medication,
		Dosage:        dosage,
		Frequency:     frequency,
		Duration:      duration,
		Instructions:  req.Instructions,
		AttachmentURL: req.AttachmentURL,
	}, nil
}

// PrescriptionUpdateInput is the validated partial-update patch.
type PrescriptionUpdateInput struct {
	Medication    *string
	Dosage        *string
	Frequency     *string
	Duration      *string
	Instructions  dto.NullableString
	AttachmentURL dto.NullableString
}

// ValidatePrescriptionUpdate checks the update patch.
func ValidatePrescriptionUpdate(req dto.UpdatePrescriptionRequest) (*PrescriptionUpdateInput, error) {
	errs := fieldErrors{}
	input := &PrescriptionUpdateInput{Instructions: req.Instructions, AttachmentURL: req.AttachmentURL}

	checkOptional := func(field string, value *string, dst **string) {
		if value == nil {
			return
		}
		if *value == "" {
			errs.add(field, field+" must not be empty")
			return
		}
		*dst = value
	}
	checkOptional("medication", req.Medication, &input.Medication)
	checkOptional("dosage", req.Dosage, &input.Dosage)
	checkOptional("frequency", req.Frequency, &input.Frequency)
	checkOptional("duration", req.Duration, &input.Duration)

	if err := errs.err("Invalid prescription payload"); err != nil {
		return nil, err
	}
	return input, nil
}
