package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/patient-portal/internal/auth"
	"github.com/spec-kit/patient-portal/internal/domain"
	"github.com/spec-kit/patient-portal/internal/events"
	"github.com/spec-kit/patient-portal/internal/repository"
	"github.com/spec-kit/patient-portal/internal/validation"
	apperrors "github.com/spec-kit/patient-portal/pkg/util"
)

// accessDenied is the uniform denial for id-addressed operations. A missing
// row and a row owned by someone else produce the same response, so the
// caller learns nothing about rows in other tenants.
const accessDenied = "Access denied"

// AppointmentService coordinates appointment workflows with caller
// authorization re-derived per call from the claim and stored ownership.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	doctors      repository.DoctorRepository
	dispatcher   events.Dispatcher
}

// NewAppointmentService constructs the service.
func NewAppointmentService(appointments repository.AppointmentRepository, doctors repository.DoctorRepository, dispatcher events.Dispatcher) *AppointmentService {
	return &AppointmentService{appointments: appointments, doctors: doctors, dispatcher: dispatcher}
}

// Create books an appointment for the calling patient with the named doctor.
func (s *AppointmentService) Create(ctx context.Context, claims *auth.SessionClaims, input *validation.AppointmentCreateInput) (*domain.Appointment, error) {
	if claims.Role != domain.RolePatient {
		return nil, apperrors.NewAccessDenied("Only patients can book appointments")
	}

	if _, err := s.doctors.GetByID(ctx, input.DoctorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Doctor")
		}
		return nil, apperrors.MapError(err)
	}

	appointment := &domain.Appointment{
		PatientID:       claims.ProfileID,
		DoctorID:        input.DoctorID,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		Reason:          input.Reason,
		Notes:           input.Notes,
		Status:          domain.AppointmentStatusScheduled,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, claims, events.Event{
		Type:          events.EventAppointmentBooked,
		AppointmentID: appointment.ID,
		Payload: events.AppointmentBookedPayload{
			PatientID:       appointment.PatientID,
			DoctorID:        appointment.DoctorID,
			AppointmentDate: appointment.AppointmentDate,
			AppointmentTime: appointment.AppointmentTime,
		},
	})
	return appointment, nil
}

// GetByID fetches a single appointment after re-deriving ownership.
func (s *AppointmentService) GetByID(ctx context.Context, claims *auth.SessionClaims, id string) (*domain.Appointment, error) {
	return s.authorize(ctx, claims, id)
}

// ListForCaller returns the caller's own appointments, newest first. The
// filter comes from the claim, never from client input, so cross-tenant
// enumeration is impossible.
func (s *AppointmentService) ListForCaller(ctx context.Context, claims *auth.SessionClaims) ([]domain.Appointment, error) {
	var (
		appointments []domain.Appointment
		err          error
	)
	switch claims.Role {
	case domain.RolePatient:
		appointments, err = s.appointments.ListByPatient(ctx, claims.ProfileID)
	case domain.RoleDoctor:
		appointments, err = s.appointments.ListByDoctor(ctx, claims.ProfileID)
	default:
		return nil, apperrors.NewAccessDenied(accessDenied)
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return appointments, nil
}

// Update applies a partial patch to an owned appointment. Only supplied
// fields change; the tri-state notes field distinguishes clearing from
// omission.
func (s *AppointmentService) Update(ctx context.Context, claims *auth.SessionClaims, id string, patch *validation.AppointmentUpdateInput) (*domain.Appointment, error) {
	appointment, err := s.authorize(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	oldStatus := appointment.Status
	if patch.AppointmentDate != nil {
		appointment.AppointmentDate = *patch.AppointmentDate
	}
	if patch.AppointmentTime != nil {
		appointment.AppointmentTime = *patch.AppointmentTime
	}
	if patch.Status != nil {
		appointment.Status = *patch.Status
	}
	if patch.Reason != nil {
		appointment.Reason = *patch.Reason
	}
	if patch.Notes.Set {
		appointment.Notes = patch.Notes.Value
	}

	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, apperrors.MapError(err)
	}

	if appointment.Status != oldStatus {
		s.publish(ctx, claims, events.Event{
			Type:          events.EventAppointmentStatusChanged,
			AppointmentID: appointment.ID,
			Payload: events.AppointmentStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: appointment.Status,
			},
		})
	}
	return appointment, nil
}

// Delete removes an owned appointment.
func (s *AppointmentService) Delete(ctx context.Context, claims *auth.SessionClaims, id string) error {
	appointment, err := s.authorize(ctx, claims, id)
	if err != nil {
		return err
	}
	if err := s.appointments.Delete(ctx, appointment.ID); err != nil {
		return apperrors.MapError(err)
	}
	s.publish(ctx, claims, events.Event{
		Type:          events.EventAppointmentCancelled,
		AppointmentID: appointment.ID,
		Payload: events.AppointmentCancelledPayload{
			PatientID: appointment.PatientID,
			DoctorID:  appointment.DoctorID,
		},
	})
	return nil
}

// ListDoctors returns the booking directory.
func (s *AppointmentService) ListDoctors(ctx context.Context) ([]domain.DoctorProfile, error) {
	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return doctors, nil
}

// authorize runs the ownership re-derivation: fetch the row, then compare
// the claim against the row's owning profile ids. Absent rows and foreign
// rows are indistinguishable in the result.
func (s *AppointmentService) authorize(ctx context.Context, claims *auth.SessionClaims, id string) (*domain.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewAccessDenied(accessDenied)
		}
		return nil, apperrors.MapError(err)
	}
	if !auth.IsOwner(claims, appointment) {
		return nil, apperrors.NewAccessDenied(accessDenied)
	}
	return appointment, nil
}

func (s *AppointmentService) publish(ctx context.Context, claims *auth.SessionClaims, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.Actor = events.Actor{Role: claims.Role, ProfileID: claims.ProfileID}
	_ = s.dispatcher.Publish(ctx, event)
}
