package dto

import (
	"time"

	"github.com/spec-kit/patient-portal/internal/domain"
)

// CreatePrescriptionRequest payload.
type CreatePrescriptionRequest struct {
	PatientID     string  `json:"patientId"`
	Medication    string  `json:"medication"`
	Dosage        string  `json:"dosage"`
	Frequency     string  `json:"frequency"`
	Duration      string  `json:"duration"`
	Instructions  *string `json:"instructions,omitempty"`
	AttachmentURL *string `json:"attachmentUrl,omitempty"`
}

// UpdatePrescriptionRequest payload; all fields optional.
type UpdatePrescriptionRequest struct {
	Medication    *string        `json:"medication,omitempty"`
	Dosage        *string        `json:"dosage,omitempty"`
	Frequency     *string        `json:"frequency,omitempty"`
	Duration      *string        `json:"duration,omitempty"`
	Instructions  NullableString `json:"instructions"`
	AttachmentURL NullableString `json:"attachmentUrl"`
}

// PrescriptionResponse is the wire shape of a prescription.
type PrescriptionResponse struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patientId"`
	DoctorID      string    `json:"doctorId"`
	Medication    string    `json:"medication"`
	Dosage        string    `json:"dosage"`
	Frequency     string    `json:"frequency"`
	Duration      string    `json:"duration"`
	Instructions  *string   `json:"instructions,omitempty"`
	AttachmentURL *string   `json:"attachmentUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewPrescriptionResponse maps a domain prescription.
func NewPrescriptionResponse(p *domain.Prescription) PrescriptionResponse {
	return PrescriptionResponse{
		ID:            p.ID,
		PatientID:     p.PatientID,
		DoctorID:      p.DoctorID,
		Medication:    p.Medication,
		Dosage:        p.Dosage,
		Frequency:     p.Frequency,
		Duration:      p.Duration,
		Instructions:  p.Instructions,
		AttachmentURL: p.AttachmentURL,
		CreatedAt:     p.CreatedAt,
	}
}
