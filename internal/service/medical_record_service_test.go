package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/patient-portal/internal/domain"
	"github.com/spec-kit/patient-portal/internal/validation"
)

func TestMedicalRecordCreate(t *testing.T) {
	patients := &mockPatientRepo{
		GetByIDFunc: func(_ context.Context, id string) (*domain.PatientProfile, error) {
			return &domain.PatientProfile{ID: id}, nil
		},
	}
	svc := NewMedicalRecordService(&mockMedicalRecordRepo{}, patients, &mockAppointmentRepo{})

	record, err := svc.Create(context.Background(), doctorClaims("doctor-1"), &validation.MedicalRecordCreateInput{
		PatientID: "patient-1",
		Diagnosis: "Seasonal allergy",
		Symptoms:  "Sneezing",
	})
	require.NoError(t, err)

	assert.Equal(t, "doctor-1", record.DoctorID, "author comes from the claim")
	assert.Equal(t, "patient-1", record.PatientID)
}

func TestMedicalRecordCreateRejectsPatientCaller(t *testing.T) {
	svc := NewMedicalRecordService(&mockMedicalRecordRepo{}, &mockPatientRepo{}, &mockAppointmentRepo{})

	_, err := svc.Create(context.Background(), patientClaims("patient-1"), &validation.MedicalRecordCreateInput{
		PatientID: "patient-1",
		Diagnosis: "Self-diagnosis",
		Symptoms:  "n/a",
	})
	require.Error(t, err)
	assert.Equal(t, "ACCESS_DENIED", domainCode(t, err))
}

func TestMedicalRecordCreateUnknownPatient(t *testing.T) {
	patients := &mockPatientRepo{
		GetByIDFunc: func(_ context.Context, _ string) (*domain.PatientProfile, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := NewMedicalRecordService(&mockMedicalRecordRepo{}, patients, &mockAppointmentRepo{})

	_, err := svc.Create(context.Background(), doctorClaims("doctor-1"), &validation.MedicalRecordCreateInput{
		PatientID: "no-such-patient",
		Diagnosis: "x",
		Symptoms:  "y",
	})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", domainCode(t, err))
}

func TestMedicalRecordCreateAppointmentLinkMustMatch(t *testing.T) {
	patients := &mockPatientRepo{
		GetByIDFunc: func(_ context.Context, id string) (*domain.PatientProfile, error) {
			return &domain.PatientProfile{ID: id}, nil
		},
	}
	appointments := &mockAppointmentRepo{
		GetByIDFunc: func(_ context.Context, id string) (*domain.Appointment, error) {
			if id == "appointment-1" {
				return &domain.Appointment{ID: id, PatientID: "patient-1", DoctorID: "doctor-1"}, nil
			}
			return nil, pgx.ErrNoRows
		},
	}
	svc := NewMedicalRecordService(&mockMedicalRecordRepo{}, patients, appointments)

	// Matching link succeeds.
	record, err := svc.Create(context.Background(), doctorClaims("doctor-1"), &validation.MedicalRecordCreateInput{
		PatientID:     "patient-1",
		Diagnosis:     "x",
		Symptoms:      "y",
		AppointmentID: strPtr("appointment-1"),
	})
	require.NoError(t, err)
	require.NotNil(t, record.AppointmentID)

	// Appointment belongs to another doctor.
	_, err = svc.Create(context.Background(), doctorClaims("doctor-2"), &validation.MedicalRecordCreateInput{
		PatientID:     "patient-1",
		Diagnosis:     "x",
		Symptoms:      "y",
		AppointmentID: strPtr("appointment-1"),
	})
	require.Error(t, err)
	assert.Equal(t, "ACCESS_DENIED", domainCode(t, err))

	// Appointment names a different patient.
	_, err = svc.Create(context.Background(), doctorClaims("doctor-1"), &validation.MedicalRecordCreateInput{
		PatientID:     "patient-2",
		Diagnosis:     "x",
		Symptoms:      "y",
		AppointmentID: strPtr("appointment-1"),
	})
	require.Error(t, err)
	assert.Equal(t, "ACCESS_DENIED", domainCode(t, err))

	// Appointment id does not exist.
	_, err = svc.Create(context.Background(), doctorClaims("doctor-1"), &validation.MedicalRecordCreateInput{
		PatientID:     "patient-1",
		Diagnosis:     "x",
		Symptoms:      "y",
		AppointmentID: strPtr("no-such-appointment"),
	})
	require.Error(t, err)
	assert.Equal(t, "ACCESS_DENIED", domainCode(t, err))
}

func TestMedicalRecordOwnershipMatrix(t *testing.T) {
	records := &mockMedicalRecordRepo{
		GetByIDFunc: func(_ context.Context, id string) (*domain.MedicalRecord, error) {
			if id == "record-1" {
				return &domain.MedicalRecord{ID: id, PatientID: "patient-1", DoctorID: "doctor-1"}, nil
			}
			return nil, pgx.ErrNoRows
		},
	}
	svc := NewMedicalRecordService(records, &mockPatientRepo{}, &mockAppointmentRepo{})
	ctx := context.Background()

	_, err := svc.GetByID(ctx, patientClaims("patient-1"), "record-1")
	assert.NoError(t, err)
	_, err = svc.GetByID(ctx, doctorClaims("doctor-1"), "record-1")
	assert.NoError(t, err)

	_, errForeign := svc.GetByID(ctx, patientClaims("patient-2"), "record-1")
	require.Error(t, errForeign)
	_, errMissing := svc.GetByID(ctx, patientClaims("patient-1"), "no-such-record")
	require.Error(t, errMissing)
	assert.Equal(t, errForeign.Error(), errMissing.Error())
}

func TestMedicalRecordUpdateTriStateFields(t *testing.T) {
	stored := &domain.MedicalRecord{
		ID:            "record-1",
		PatientID:     "patient-1",
		DoctorID:      "doctor-1",
		Diagnosis:     "Seasonal allergy",
		Symptoms:      "Sneezing",
		Notes:         strPtr("re-check in spring"),
		AttachmentURL: strPtr("https://files.example.com/scan.pdf"),
	}
	records := &mockMedicalRecordRepo{
		GetByIDFunc: func(_ context.Context, _ string) (*domain.MedicalRecord, error) {
			copied := *stored
			return &copied, nil
		},
	}
	svc := NewMedicalRecordService(records, &mockPatientRepo{}, &mockAppointmentRepo{})

	diagnosis := "Chronic allergy"
	updated, err := svc.Update(context.Background(), doctorClaims("doctor-1"), "record-1", &validation.MedicalRecordUpdateInput{
		Diagnosis:     &diagnosis,
		AttachmentURL: dtoNull(),
	})
	require.NoError(t, err)

	assert.Equal(t, "Chronic allergy", updated.Diagnosis)
	assert.Equal(t, "Sneezing", updated.Symptoms)
	assert.Nil(t, updated.AttachmentURL, "explicit null clears the attachment")
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "re-check in spring", *updated.Notes, "absent tri-state field keeps stored notes")
}

func TestMedicalRecordDelete(t *testing.T) {
	var deletedID string
	records := &mockMedicalRecordRepo{
		GetByIDFunc: func(_ context.Context, _ string) (*domain.MedicalRecord, error) {
			return &domain.MedicalRecord{ID: "record-1", PatientID: "patient-1", DoctorID: "doctor-1"}, nil
		},
		DeleteFunc: func(_ context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	svc := NewMedicalRecordService(records, &mockPatientRepo{}, &mockAppointmentRepo{})

	require.NoError(t, svc.Delete(context.Background(), patientClaims("patient-1"), "record-1"))
	assert.Equal(t, "record-1", deletedID)

	err := svc.Delete(context.Background(), doctorClaims("doctor-2"), "record-1")
	require.Error(t, err)
	assert.Equal(t, "ACCESS_DENIED", domainCode(t, err))
}

func TestMedicalRecordListForCaller(t *testing.T) {
	records := &mockMedicalRecordRepo{
		ListByPatientFunc: func(_ context.Context, patientID string) ([]domain.MedicalRecord, error) {
			return []domain.MedicalRecord{{ID: "r1", PatientID: patientID}}, nil
		},
		ListByDoctorFunc: func(_ context.Context, doctorID string) ([]domain.MedicalRecord, error) {
			return []domain.MedicalRecord{{ID: "r2", DoctorID: doctorID}, {ID: "r3", DoctorID: doctorID}}, nil
		},
	}
	svc := NewMedicalRecordService(records, &mockPatientRepo{}, &mockAppointmentRepo{})

	list, err := svc.ListForCaller(context.Background(), patientClaims("patient-1"))
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = svc.ListForCaller(context.Background(), doctorClaims("doctor-1"))
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
