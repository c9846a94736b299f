package domain

import "time"

// MedicalRecord is authored by a doctor for a patient. AttachmentURL
// references an externally stored file; the blob itself is out of scope.
type MedicalRecord struct {
	ID            string
	PatientID     string
	DoctorID      string
	Diagnosis     string
	Symptoms      string
	Notes         *string
	AttachmentURL *string
	AppointmentID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PatientProfileID returns the named patient profile id.
func (m *MedicalRecord) PatientProfileID() string { return m.PatientID }

// DoctorProfileID returns the authoring doctor profile id.
func (m *MedicalRecord) DoctorProfileID() string { return m.DoctorID }
