package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/patient-portal/internal/domain"
)

// PrescriptionRepository encapsulates prescription persistence.
type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *domain.Prescription) error
	Update(ctx context.Context, prescription *domain.Prescription) error
	GetByID(ctx context.Context, id string) (*domain.Prescription, error)
	ListByPatient(ctx context.Context, patientID string) ([]domain.Prescription, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]domain.Prescription, error)
	Delete(ctx context.Context, id string) error
}

type prescriptionRepository struct {
	pool *pgxpool.Pool
}

// NewPrescriptionRepository instantiates repository.
func NewPrescriptionRepository(pool *pgxpool.Pool) PrescriptionRepository {
	return &prescriptionRepository{pool: pool}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *domain.Prescription) error {
	const query = `
        INSERT INTO prescriptions (patient_id, doctor_id, medication, dosage, frequency, duration, instructions, attachment_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		prescription.PatientID,
		prescription.DoctorID,
		prescription.Medication,
		prescription.Dosage,
		prescription.Frequency,
		prescription.Duration,
		prescription.Instructions,
		prescription.AttachmentURL,
	).Scan(&prescription.ID, &prescription.CreatedAt, &prescription.UpdatedAt)
}

func (r *prescriptionRepository) Update(ctx context.Context, prescription *domain.Prescription) error {
	const query = `
        UPDATE prescriptions SET medication=$1, dosage=$2, frequency=$3, duration=$4,
            instructions=$5, attachment_url=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		prescription.Medication,
		prescription.Dosage,
		prescription.Frequency,
		prescription.Duration,
		prescription.Instructions,
		prescription.AttachmentURL,
		prescription.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *prescriptionRepository) GetByID(ctx context.Context, id string) (*domain.Prescription, error) {
	const query = `
        SELECT id, patient_id, doctor_id, medication, dosage, frequency, duration, instructions, attachment_url, created_at, updated_at
        FROM prescriptions WHERE id=$1`

	var prescription domain.Prescription
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&prescription.ID,
		&prescription.PatientID,
		&prescription.DoctorID,
		&prescription.Medication,
		&prescription.Dosage,
		&prescription.Frequency,
		&prescription.Duration,
		&prescription.Instructions,
		&prescription.AttachmentURL,
		&prescription.CreatedAt,
		&prescription.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) ListByPatient(ctx context.Context, patientID string) ([]domain.Prescription, error) {
	const query = `
        SELECT id, patient_id, doctor_id, medication, dosage, frequency, duration, instructions, attachment_url, created_at, updated_at
        FROM prescriptions WHERE patient_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, patientID)
}

func (r *prescriptionRepository) ListByDoctor(ctx context.Context, doctorID string) ([]domain.Prescription, error) {
	const query = `
        SELECT id, patient_id, doctor_id, medication, dosage, frequency, duration, instructions, attachment_url, created_at, updated_at
        FROM prescriptions WHERE doctor_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, doctorID)
}

func (r *prescriptionRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM prescriptions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *prescriptionRepository) list(ctx context.Context, query string, arg any) ([]domain.Prescription, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Prescription
	for rows.Next() {
		var prescription domain.Prescription
		if err := rows.Scan(
			&prescription.ID,
			&prescription.PatientID,
			&prescription.DoctorID,
			&prescription.Medication,
			&prescription.Dosage,
			&prescription.Frequency,
			&prescription.Duration,
			&prescription.Instructions,
			&prescription.AttachmentURL,
			&prescription.CreatedAt,
			&prescription.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, prescription)
	}
	return result, rows.Err()
}
