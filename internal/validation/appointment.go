package validation

import (
	"time"

	"github.com/spec-kit/patient-portal/internal/api/dto"
	"github.com/spec-kit/patient-portal/internal/domain"
)

// AppointmentCreateInput is the validated booking payload.
type AppointmentCreateInput struct {
	DoctorID        string
	AppointmentDate time.Time
	AppointmentTime string
	Reason          string
	Notes           *string
}

// ValidateAppointmentCreate checks the booking payload.
func ValidateAppointmentCreate(req dto.CreateAppointmentRequest) (*AppointmentCreateInput, error) {
	errs := fieldErrors{}
	if !validUUID(req.DoctorID) {
		errs.add("doctorId", "doctorId must be a well-formed identifier")
	}
	appointmentTime := required(errs, "appointmentTime", req.AppointmentTime)
	reason := required(errs, "reason", req.Reason)

	var appointmentDate time.Time
	if req.AppointmentDate == "" {
		errs.add("appointmentDate", "appointmentDate is required")
	} else if parsed, ok := parseDate(req.AppointmentDate); ok {
		appointmentDate = parsed
	} else {
		errs.add("appointmentDate", "appointmentDate must be a valid date")
	}

	if err := errs.err("Invalid appointment payload"); err != nil {
		return nil, err
	}
	return &AppointmentCreateInput{
		DoctorID:        req.DoctorID,
		AppointmentDate: appointmentDate,
		AppointmentTime: appointmentTime,
		Reason:          reason,
		Notes:           req.Notes,
	}, nil
}

// AppointmentUpdateInput is the validated partial-update patch. Nil fields
// were not supplied and leave the stored value untouched; Notes carries the
// tri-state marker so an explicit null clears stored notes.
type AppointmentUpdateInput struct {
	AppointmentDate *time.Time
	AppointmentTime *string
	Status          *domain.AppointmentStatus
	Reason          *string
	Notes           dto.NullableString
}

// ValidateAppointmentUpdate checks the update patch.
func ValidateAppointmentUpdate(req dto.UpdateAppointmentRequest) (*AppointmentUpdateInput, error) {
	errs := fieldErrors{}
	input := &AppointmentUpdateInput{Notes: req.Notes}

	if req.AppointmentDate != nil {
		if parsed, ok := parseDate(*req.AppointmentDate); ok {
			input.AppointmentDate = &parsed
		} else {
			errs.add("appointmentDate", "appointmentDate must be a valid date")
		}
	}
	if req.AppointmentTime != nil {
		if *req.AppointmentTime == "" {
			errs.add("appointmentTime", "appointmentTime must not be empty")
		} else {
			input.AppointmentTime = req.AppointmentTime
		}
	}
	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		if !status.Valid() {
			errs.add("status", "status must be one of SCHEDULED, COMPLETED, CANCELLED")
		} else {
			input.Status = &status
		}
	}
	if req.Reason != nil {
		if *req.Reason == "" {
			errs.add("reason", "reason must not be empty")
		} else {
			input.Reason = req.Reason
		}
	}

	if err := errs.err("Invalid appointment payload"); err != nil {
		return nil, err
	}
	return input, nil
}
