package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/patient-portal/internal/auth"
	"github.com/spec-kit/patient-portal/internal/domain"
	"github.com/spec-kit/patient-portal/internal/repository"
	"github.com/spec-kit/patient-portal/internal/validation"
	apperrors "github.com/spec-kit/patient-portal/pkg/util"
)

// MedicalRecordService coordinates medical record workflows.
type MedicalRecordService struct {
	records      repository.MedicalRecordRepository
	patients     repository.PatientRepository
	appointments repository.AppointmentRepository
}

// NewMedicalRecordService constructs the service.
func NewMedicalRecordService(records repository.MedicalRecordRepository, patients repository.PatientRepository, appointments repository.AppointmentRepository) *MedicalRecordService {
	return &MedicalRecordService{records: records, patients: patients, appointments: appointments}
}

// Create authors a record for the named patient; the calling doctor becomes
// its owner. A supplied appointment id must reference an appointment
// linking the same patient and the calling doctor.
func (s *MedicalRecordService) Create(ctx context.Context, claims *auth.SessionClaims, input *validation.MedicalRecordCreateInput) (*domain.MedicalRecord, error) {
	if claims.Role != domain.RoleDoctor {
		return nil, apperrors.NewAccessDenied("Only doctors can create medical records")
	}

	if _, err := s.patients.GetByID(ctx, input.PatientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Patient")
		}
		return nil, apperrors.MapError(err)
	}

	if input.AppointmentID != nil {
		appointment, err := s.appointments.GetByID(ctx, *input.AppointmentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewAccessDenied(accessDenied)
			}
			return nil, apperrors.MapError(err)
		}
		if appointment.DoctorID != claims.ProfileID || appointment.PatientID != input.PatientID {
			return nil, apperrors.NewAccessDenied(accessDenied)
		}
	}

	record := &domain.MedicalRecord{
		PatientID:     input.PatientID,
		DoctorID:      claims.ProfileID,
		Diagnosis:     input.Diagnosis,
		Symptoms:      input.Symptoms,
		Notes:         input.Notes,
		AttachmentURL: input.AttachmentURL,
		AppointmentID: input.AppointmentID,
	}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, apperrors.MapError(err)
	}
	return record, nil
}

// GetByID fetches a single record after re-deriving ownership.
func (s *MedicalRecordService) GetByID(ctx context.Context, claims *auth.SessionClaims, id string) (*domain.MedicalRecord, error) {
	return s.authorize(ctx, claims, id)
}

// ListForCaller returns the caller's records, newest first.
func (s *MedicalRecordService) ListForCaller(ctx context.Context, claims *auth.SessionClaims) ([]domain.MedicalRecord, error) {
	var (
		records []domain.MedicalRecord
		err     error
	)
	switch claims.Role {
	case domain.RolePatient:
		records, err = s.records.ListByPatient(ctx, claims.ProfileID)
	case domain.RoleDoctor:
		records, err = s.records.ListByDoctor(ctx, claims.ProfileID)
	default:
		return nil, apperrors.NewAccessDenied(accessDenied)
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return records, nil
}

// Update applies a partial patch to an owned record.
func (s *MedicalRecordService) Update(ctx context.Context, claims *auth.SessionClaims, id string, patch *validation.MedicalRecordUpdateInput) (*domain.MedicalRecord, error) {
	record, err := s.authorize(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	if patch.Diagnosis != nil {
		record.Diagnosis = *patch.Diagnosis
	}
	if patch.Symptoms != nil {
		record.Symptoms = *patch.Symptoms
	}
	if patch.Notes.Set {
		record.Notes = patch.Notes.Value
	}
	if patch.AttachmentURL.Set {
		record.AttachmentURL = patch.AttachmentURL.Value
	}

	if err := s.records.Update(ctx, record); err != nil {
		return nil, apperrors.MapError(err)
	}
	return record, nil
}

// Delete removes an owned record.
func (s *MedicalRecordService) Delete(ctx context.Context, claims *auth.SessionClaims, id string) error {
	record, err := s.authorize(ctx, claims, id)
	if err != nil {
		return err
	}
	if err := s.records.Delete(ctx, record.ID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *MedicalRecordService) authorize(ctx context.Context, claims *auth.SessionClaims, id string) (*domain.MedicalRecord, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewAccessDenied(accessDenied)
		}
		return nil, apperrors.MapError(err)
	}
	if !auth.IsOwner(claims, record) {
		return nil, apperrors.NewAccessDenied(accessDenied)
	}
	return record, nil
}
