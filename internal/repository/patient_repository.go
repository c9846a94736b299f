package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/patient-portal/internal/domain"
)

// PatientRepository defines persistence access for patient profiles.
// Creation happens through RegistrationRepository.
type PatientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.PatientProfile, error)
	GetByIdentityID(ctx context.Context, identityID string) (*domain.PatientProfile, error)
}

type patientRepository struct {
	pool *pgxpool.Pool
}

// NewPatientRepository returns a Postgres-backed implementation.
func NewPatientRepository(pool *pgxpool.Pool) PatientRepository {
	return &patientRepository{pool: pool}
}

func (r *patientRepository) GetByID(ctx context.Context, id string) (*domain.PatientProfile, error) {
	const query = `
        SELECT id, identity_id, first_name, last_name, date_of_birth, blood_group, phone, address, created_at, updated_at
        FROM patient_profiles WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *patientRepository) GetByIdentityID(ctx context.Context, identityID string) (*domain.PatientProfile, error) {
	const query = `
        SELECT id, identity_id, first_name, last_name, date_of_birth, blood_group, phone, address, created_at, updated_at
        FROM patient_profiles WHERE identity_id=$1`
	return r.fetchSingle(ctx, query, identityID)
}

func (r *patientRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.PatientProfile, error) {
	var profile domain.PatientProfile
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&profile.ID,
		&profile.IdentityID,
		&profile.FirstName,
		&profile.LastName,
		&profile.DateOfBirth,
		&profile.BloodGroup,
		&profile.Phone,
		&profile.Address,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}
