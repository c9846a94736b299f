package domain

import "time"

// Prescription shares the MedicalRecord ownership model: written by one
// doctor for one patient.
type Prescription struct {
	ID            string
	PatientID     string
	DoctorID      string
	Medication    string
	Dosage        string
	Frequency     string
	Duration      string
	Instructions  *string
	AttachmentURL *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PatientProfileID returns the named patient profile id.
func (p *Prescription) PatientProfileID() string { return p.PatientID }

// DoctorProfileID returns the prescribing doctor profile id.
func (p *Prescription) DoctorProfileID() string { return p.DoctorID }
