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

// PrescriptionService coordinates prescription workflows.
type PrescriptionService struct {
	prescriptions repository.PrescriptionRepository
	patients      repository.PatientRepository
}

// NewPrescriptionService constructs the service.
func NewPrescriptionService(prescriptions repository.PrescriptionRepository, patients repository.PatientRepository) *PrescriptionService {
	return &PrescriptionService{prescriptions: prescriptions, patients: patients}
}

// Create writes a prescription for the named patient; the calling doctor
// becomes its owner.
func (s *PrescriptionService) Create(ctx context.Context, claims *auth.SessionClaims, input *validation.PrescriptionCreateInput) (*domain.Prescription, error) {
	if claims.Role != domain.RoleDoctor {
		return nil, apperrors.NewAccessDenied("Only doctors can create prescriptions")
	}

	if _, err := s.patients.GetByID(ctx, input.PatientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Patient")
		}
		return nil, apperrors.MapError(err)
	}

	prescription := &domain.Prescription{
		PatientID:     input.PatientID,
		DoctorID:      claims.ProfileID,
		Medication:    input.Medication,
		Dosage:        input.Dosage,
		Frequency:     input.Frequency,
		Duration:      input.Duration,
		Instructions:  input.Instructions,
		AttachmentURL: input.AttachmentURL,
	}
	if err := s.prescriptions.Create(ctx, prescription); err != nil {
		return nil, apperrors.MapError(err)
	}
	return prescription, nil
}

// GetByID fetches a single prescription after re-deriving ownership.
func (s *PrescriptionService) GetByID(ctx context.Context, claims *auth.SessionClaims, id string) (*domain.Prescription, error) {
	return s.authorize(ctx, claims, id)
}

// ListForCaller returns the caller's prescriptions, newest first.
func (s *PrescriptionService) ListForCaller(ctx context.Context, claims *auth.SessionClaims) ([]domain.Prescription, error) {
	var (
		prescriptions []domain.Prescription
		err           error
	)
	switch claims.Role {
	case domain.RolePatient:
		prescriptions, err = s.prescriptions.ListByPatient(ctx, claims.ProfileID)
	case domain.RoleDoctor:
		prescriptions, err = s.prescriptions.ListByDoctor(ctx, claims.ProfileID)
	default:
		return nil, apperrors.NewAccessDenied(accessDenied)
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return prescriptions, nil
}

// Update applies a partial patch to an owned prescription.
func (s *PrescriptionService) Update(ctx context.Context, claims *auth.SessionClaims, id string, patch *validation.PrescriptionUpdateInput) (*domain.Prescription, error) {
	prescription, err := s.authorize(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	if patch.Medication != nil {
		prescription.Medication = *patch.Medication
	}
	if patch.Dosage != nil {
		prescription.Dosage = *patch.Dosage
	}
	if patch.Frequency != nil {
		prescription.Frequency = *patch.Frequency
	}
	if patch.Duration != nil {
		prescription.Duration = *patch.Duration
	}
	if patch.Instructions.Set {
		prescription.Instructions = patch.Instructions.Value
	}
	if patch.AttachmentURL.Set {
		prescription.AttachmentURL = patch.AttachmentURL.Value
	}

	if err := s.prescriptions.Update(ctx, prescription); err != nil {
		return nil, apperrors.MapError(err)
	}
	return prescription, nil
}

// Delete removes an owned prescription.
func (s *PrescriptionService) Delete(ctx context.Context, claims *auth.SessionClaims, id string) error {
	prescription, err := s.authorize(ctx, claims, id)
	if err != nil {
		return err
	}
	if err := s.prescriptions.Delete(ctx, prescription.ID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *PrescriptionService) authorize(ctx context.Context, claims *auth.SessionClaims, id string) (*domain.Prescription, error) {
	prescription, err := s.prescriptions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewAccessDenied(accessDenied)
		}
		return nil, apperrors.MapError(err)
	}
	if !auth.IsOwner(claims, prescription) {
		return nil, apperrors.NewAccessDenied(accessDenied)
	}
	return prescription, nil
}
