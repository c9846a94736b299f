package dto

import (
	"time"

	"github.com/spec-kit/patient-portal/internal/domain"
)

// CreateMedicalRecordRequest payload.
type CreateMedicalRecordRequest struct {
	PatientID     string  `json:"patientId"`
	Diagnosis     string  `json:"diagnosis"`
	Symptoms      string  `json:"symptoms"`
	Notes         *string `json:"notes,omitempty"`
	AttachmentURL *string `json:"attachmentUrl,omitempty"`
	AppointmentID *string `json:"appointmentId,omitempty"`
}

// UpdateMedicalRecordRequest payload; all fields optional.
type UpdateMedicalRecordRequest struct {
	Diagnosis     *string        `json:"diagnosis,omitempty"`
	Symptoms      *string        `json:"symptoms,omitempty"`
	Notes         NullableString `json:"notes"`
	AttachmentURL NullableString `json:"attachmentUrl"`
}

// MedicalRecordResponse is the wire shape of a record.
type MedicalRecordResponse struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patientId"`
	DoctorID      string    `json:"doctorId"`
	Diagnosis     string    `json:"diagnosis"`
	Symptoms      string    `json:"symptoms"`
	Notes         *string   `json:"notes,omitempty"`
	AttachmentURL *string   `json:"attachmentUrl,omitempty"`
	AppointmentID *string   `json:"appointmentId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewMedicalRecordResponse maps a domain record.
func NewMedicalRecordResponse(m *domain.MedicalRecord) MedicalRecordResponse {
	return MedicalRecordResponse{
		ID:            m.ID,
		PatientID:     m.PatientID,
		DoctorID:      m.DoctorID,
		Diagnosis:     m.Diagnosis,
		Symptoms:      m.Symptoms,
		Notes:         m.Notes,
		AttachmentURL: m.AttachmentURL,
		AppointmentID: m.AppointmentID,
		CreatedAt:     m.CreatedAt,
	}
}
