package dto

import (
	"time"

	"github.com/spec-kit/patient-portal/internal/domain"
)

// CreateAppointmentRequest payload.
type CreateAppointmentRequest struct {
	DoctorID        string  `json:"doctorId"`
	AppointmentDate string  `json:"appointmentDate"`
	AppointmentTime string  `json:"appointmentTime"`
	Reason          string  `json:"reason"`
	Notes           *string `json:"notes,omitempty"`
}

// UpdateAppointmentRequest payload; all fields optional. Notes is tri-state
// so an explicit null clears stored notes while an absent field keeps them.
type UpdateAppointmentRequest struct {
	AppointmentDate *string        `json:"appointmentDate,omitempty"`
	AppointmentTime *string        `json:"appointmentTime,omitempty"`
	Status          *string        `json:"status,omitempty"`
	Reason          *string        `json:"reason,omitempty"`
	Notes           NullableString `json:"notes"`
}

// AppointmentResponse is the wire shape of an appointment.
type AppointmentResponse struct {
	ID              string                   `json:"id"`
	PatientID       string                   `json:"patientId"`
	DoctorID        string                   `json:"doctorId"`
	AppointmentDate time.Time                `json:"appointmentDate"`
	AppointmentTime string                   `json:"appointmentTime"`
	Reason          string                   `json:"reason"`
	Notes           *string                  `json:"notes,omitempty"`
	Status          domain.AppointmentStatus `json:"status"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// NewAppointmentResponse maps a domain appointment.
func NewAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		Reason:          a.Reason,
		Notes:           a.Notes,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
	}
}

// DoctorSummary is the booking-directory entry.
type DoctorSummary struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Specialization string `json:"specialization"`
	Department     string `json:"department"`
}

// NewDoctorSummary maps a doctor profile.
func NewDoctorSummary(d *domain.DoctorProfile) DoctorSummary {
	return DoctorSummary{
		ID:             d.ID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Specialization: d.Specialization,
		Department:     d.Department,
	}
}
