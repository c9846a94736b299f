package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/patient-portal/internal/domain"
)

// DoctorRepository defines persistence access for doctor profiles.
// Creation happens through RegistrationRepository.
type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.DoctorProfile, error)
	GetByIdentityID(ctx context.Context, identityID string) (*domain.DoctorProfile, error)
	List(ctx context.Context) ([]domain.DoctorProfile, error)
}

type doctorRepository struct {
	pool *pgxpool.Pool
}

// NewDoctorRepository returns a Postgres-backed implementation.
func NewDoctorRepository(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepository{pool: pool}
}

func (r *doctorRepository) GetByID(ctx context.Context, id string) (*domain.DoctorProfile, error) {
	const query = `
        SELECT id, identity_id, first_name, last_name, specialization, license_number, department, phone, created_at, updated_at
        FROM doctor_profiles WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *doctorRepository) GetByIdentityID(ctx context.Context, identityID string) (*domain.DoctorProfile, error) {
	const query = `
        SELECT id, identity_id, first_name, last_name, specialization, license_number, department, phone, created_at, updated_at
        FROM doctor_profiles WHERE identity_id=$1`
	return r.fetchSingle(ctx, query, identityID)
}

func (r *doctorRepository) List(ctx context.Context) ([]domain.DoctorProfile, error) {
	const query = `
        SELECT id, identity_id, first_name, last_name, specialization, license_number, department, phone, created_at, updated_at
        FROM doctor_profiles ORDER BY last_name, first_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDoctors(rows)
}

func (r *doctorRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.DoctorProfile, error) {
	var profile domain.DoctorProfile
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&profile.ID,
		&profile.IdentityID,
		&profile.FirstName,
		&profile.LastName,
		&profile.Specialization,
		&profile.LicenseNumber,
		&profile.Department,
		&profile.Phone,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func scanDoctors(rows pgx.Rows) ([]domain.DoctorProfile, error) {
	var result []domain.DoctorProfile
	for rows.Next() {
		var profile domain.DoctorProfile
		if err := rows.Scan(
			&profile.ID,
			&profile.IdentityID,
			&profile.FirstName,
			&profile.LastName,
			&profile.Specialization,
			&profile.LicenseNumber,
			&profile.Department,
			&profile.Phone,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, profile)
	}
	return result, rows.Err()
}
