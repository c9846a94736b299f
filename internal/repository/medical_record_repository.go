package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/patient-portal/internal/domain"
)

// MedicalRecordRepository encapsulates medical record persistence.
type MedicalRecordRepository interface {
	Create(ctx context.Context, record *domain.MedicalRecord) error
	Update(ctx context.Context, record *domain.MedicalRecord) error
	GetByID(ctx context.Context, id string) (*domain.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID string) ([]domain.MedicalRecord, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]domain.MedicalRecord, error)
	Delete(ctx context.Context, id string) error
}

type medicalRecordRepository struct {
	pool *pgxpool.Pool
}

// NewMedicalRecordRepository instantiates repository.
func NewMedicalRecordRepository(pool *pgxpool.Pool) MedicalRecordRepository {
	return &medicalRecordRepository{pool: pool}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *domain.MedicalRecord) error {
	const query = `
        INSERT INTO medical_records (patient_id, doctor_id, diagnosis, symptoms, notes, attachment_url, appointment_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		record.PatientID,
		record.DoctorID,
		record.Diagnosis,
		record.Symptoms,
		record.Notes,
		record.AttachmentURL,
		record.AppointmentID,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
}

func (r *medicalRecordRepository) Update(ctx context.Context, record *domain.MedicalRecord) error {
	const query = `
        UPDATE medical_records SET diagnosis=$1, symptoms=$2, notes=$3, attachment_url=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		record.Diagnosis,
		record.Symptoms,
		record.Notes,
		record.AttachmentURL,
		record.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *medicalRecordRepository) GetByID(ctx context.Context, id string) (*domain.MedicalRecord, error) {
	const query = `
        SELECT id, patient_id, doctor_id, diagnosis, symptoms, notes, attachment_url, appointment_id, created_at, updated_at
        FROM medical_records WHERE id=$1`

	var record domain.MedicalRecord
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.PatientID,
		&record.DoctorID,
		&record.Diagnosis,
		&record.Symptoms,
		&record.Notes,
		&record.AttachmentURL,
		&record.AppointmentID,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) ListByPatient(ctx context.Context, patientID string) ([]domain.MedicalRecord, error) {
	const query = `
        SELECT id, patient_id, doctor_id, diagnosis, symptoms, notes, attachment_url, appointment_id, created_at, updated_at
        FROM medical_records WHERE patient_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, patientID)
}

func (r *medicalRecordRepository) ListByDoctor(ctx context.Context, doctorID string) ([]domain.MedicalRecord, error) {
	const query = `
        SELECT id, patient_id, doctor_id, diagnosis, symptoms, notes, attachment_url, appointment_id, created_at, updated_at
        FROM medical_records WHERE doctor_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, doctorID)
}

func (r *medicalRecordRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM medical_records WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *medicalRecordRepository) list(ctx context.Context, query string, arg any) ([]domain.MedicalRecord, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MedicalRecord
	for rows.Next() {
		var record domain.MedicalRecord
		if err := rows.Scan(
			&record.ID,
			&record.PatientID,
			&record.DoctorID,
			&record.Diagnosis,
			&record.Symptoms,
			&record.Notes,
			&record.AttachmentURL,
			&record.AppointmentID,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
