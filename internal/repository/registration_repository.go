package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/patient-portal/internal/domain"
)

// RegistrationRepository persists a new identity together with its profile.
// Both rows commit in one transaction: a failed profile insert rolls the
// identity back, so a registration either fully exists or leaves no trace.
type RegistrationRepository interface {
	RegisterPatient(ctx context.Context, identity *domain.Identity, profile *domain.PatientProfile) error
	RegisterDoctor(ctx context.Context, identity *domain.Identity, profile *domain.DoctorProfile) error
}

type registrationRepository struct {
	pool *pgxpool.Pool
}

// NewRegistrationRepository returns a Postgres-backed implementation.
func NewRegistrationRepository(pool *pgxpool.Pool) RegistrationRepository {
	return &registrationRepository{pool: pool}
}

func (r *registrationRepository) RegisterPatient(ctx context.Context, identity *domain.Identity, profile *domain.PatientProfile) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := insertIdentity(ctx, tx, identity); err != nil {
			return err
		}

		const query = `
        INSERT INTO patient_profiles (identity_id, first_name, last_name, date_of_birth, blood_group, phone, address)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

		profile.IdentityID = identity.ID
		return tx.QueryRow(ctx, query,
			profile.IdentityID,
			profile.FirstName,
			profile.LastName,
			profile.DateOfBirth,
			profile.BloodGroup,
			profile.Phone,
			profile.Address,
		).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	})
}

func (r *registrationRepository) RegisterDoctor(ctx context.Context, identity *domain.Identity, profile *domain.DoctorProfile) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := insertIdentity(ctx, tx, identity); err != nil {
			return err
		}

		const query = `
        INSERT INTO doctor_profiles (identity_id, first_name, last_name, specialization, license_number, department, phone)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

		profile.IdentityID = identity.ID
		return tx.QueryRow(ctx, query,
			profile.IdentityID,
			profile.FirstName,
			profile.LastName,
			profile.Specialization,
			profile.LicenseNumber,
			profile.Department,
			profile.Phone,
		).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	})
}

func insertIdentity(ctx context.Context, tx pgx.Tx, identity *domain.Identity) error {
	const query = `
        INSERT INTO identities (email, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return tx.QueryRow(ctx, query,
		identity.Email,
		identity.PasswordHash,
		identity.Role,
	).Scan(&identity.ID, &identity.CreatedAt, &identity.UpdatedAt)
}
