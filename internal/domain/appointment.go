package domain

import "time"

// AppointmentStatus enumerates appointment lifecycle states.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "SCHEDULED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// Valid reports whether the status is one of the defined values.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is owned jointly by one patient and one doctor.
type Appointment struct {
	ID              string
	PatientID       string
	DoctorID        string
	AppointmentDate time.Time
	AppointmentTime string
	Reason          string
	Notes           *string
	Status          AppointmentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PatientProfileID returns the owning patient profile id.
func (a *Appointment) PatientProfileID() string { return a.PatientID }

// DoctorProfileID returns the owning doctor profile id.
func (a *Appointment) DoctorProfileID() string { return a.DoctorID }
