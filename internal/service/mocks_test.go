package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/patient-portal/internal/api/dto"
	"github.com/spec-kit/patient-portal/internal/domain"
	"github.com/spec-kit/patient-portal/internal/events"
)

// dtoNull is a tri-state field carrying an explicit null.
func dtoNull() dto.NullableString {
	return dto.NullableString{Set: true}
}

// dtoValue is a tri-state field carrying a value.
func dtoValue(s string) dto.NullableString {
	return dto.NullableString{Set: true, Value: &s}
}

// Function-field mocks: tests set only the methods a scenario touches.
// Unset methods fall back to pgx.ErrNoRows so missing rows behave like an
// empty store.

type mockIdentityRepo struct {
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Identity, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.Identity, error)
	UpdatePasswordFunc func(ctx context.Context, id, passwordHash string) error
}

func (m *mockIdentityRepo) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockIdentityRepo) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockIdentityRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash)
	}
	return nil
}

type mockPatientRepo struct {
	GetByIDFunc         func(ctx context.Context, id string) (*domain.PatientProfile, error)
	GetByIdentityIDFunc func(ctx context.Context, identityID string) (*domain.PatientProfile, error)
}

func (m *mockPatientRepo) GetByID(ctx context.Context, id string) (*domain.PatientProfile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockPatientRepo) GetByIdentityID(ctx context.Context, identityID string) (*domain.PatientProfile, error) {
	if m.GetByIdentityIDFunc != nil {
		return m.GetByIdentityIDFunc(ctx, identityID)
	}
	return nil, pgx.ErrNoRows
}

type mockDoctorRepo struct {
	GetByIDFunc         func(ctx context.Context, id string) (*domain.DoctorProfile, error)
	GetByIdentityIDFunc func(ctx context.Context, identityID string) (*domain.DoctorProfile, error)
	ListFunc            func(ctx context.Context) ([]domain.DoctorProfile, error)
}

func (m *mockDoctorRepo) GetByID(ctx context.Context, id string) (*domain.DoctorProfile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockDoctorRepo) GetByIdentityID(ctx context.Context, identityID string) (*domain.DoctorProfile, error) {
	if m.GetByIdentityIDFunc != nil {
		return m.GetByIdentityIDFunc(ctx, identityID)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockDoctorRepo) List(ctx context.Context) ([]domain.DoctorProfile, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockRegistrationRepo struct {
	RegisterPatientFunc func(ctx context.Context, identity *domain.Identity, profile *domain.PatientProfile) error
	RegisterDoctorFunc  func(ctx context.Context, identity *domain.Identity, profile *domain.DoctorProfile) error
}

func (m *mockRegistrationRepo) RegisterPatient(ctx context.Context, identity *domain.Identity, profile *domain.PatientProfile) error {
	if m.RegisterPatientFunc != nil {
		return m.RegisterPatientFunc(ctx, identity, profile)
	}
	identity.ID = "identity-mock"
	profile.IdentityID = identity.ID
	profile.ID = "patient-mock"
	return nil
}

func (m *mockRegistrationRepo) RegisterDoctor(ctx context.Context, identity *domain.Identity, profile *domain.DoctorProfile) error {
	if m.RegisterDoctorFunc != nil {
		return m.RegisterDoctorFunc(ctx, identity, profile)
	}
	identity.ID = "identity-mock"
	profile.IdentityID = identity.ID
	profile.ID = "doctor-mock"
	return nil
}

type mockAppointmentRepo struct {
	CreateFunc        func(ctx context.Context, appointment *domain.Appointment) error
	UpdateFunc        func(ctx context.Context, appointment *domain.Appointment) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Appointment, error)
	ListByPatientFunc func(ctx context.Context, patientID string) ([]domain.Appointment, error)
	ListByDoctorFunc  func(ctx context.Context, doctorID string) ([]domain.Appointment, error)
	DeleteFunc        func(ctx context.Context, id string) error
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *domain.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	appointment.ID = "appointment-mock"
	return nil
}

func (m *mockAppointmentRepo) Update(ctx context.Context, appointment *domain.Appointment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, appointment)
	}
	return nil
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]domain.Appointment, error) {
	if m.ListByDoctorFunc != nil {
		return m.ListByDoctorFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockMedicalRecordRepo struct {
	CreateFunc        func(ctx context.Context, record *domain.MedicalRecord) error
	UpdateFunc        func(ctx context.Context, record *domain.MedicalRecord) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.MedicalRecord, error)
	ListByPatientFunc func(ctx context.Context, patientID string) ([]domain.MedicalRecord, error)
	ListByDoctorFunc  func(ctx context.Context, doctorID string) ([]domain.MedicalRecord, error)
	DeleteFunc        func(ctx context.Context, id string) error
}

func (m *mockMedicalRecordRepo) Create(ctx context.Context, record *domain.MedicalRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	record.ID = "record-mock"
	return nil
}

func (m *mockMedicalRecordRepo) Update(ctx context.Context, record *domain.MedicalRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record)
	}
	return nil
}

func (m *mockMedicalRecordRepo) GetByID(ctx context.Context, id string) (*domain.MedicalRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockMedicalRecordRepo) ListByPatient(ctx context.Context, patientID string) ([]domain.MedicalRecord, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *mockMedicalRecordRepo) ListByDoctor(ctx context.Context, doctorID string) ([]domain.MedicalRecord, error) {
	if m.ListByDoctorFunc != nil {
		return m.ListByDoctorFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *mockMedicalRecordRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockPrescriptionRepo struct {
	CreateFunc        func(ctx context.Context, prescription *domain.Prescription) error
	UpdateFunc        func(ctx context.Context, prescription *domain.Prescription) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Prescription, error)
	ListByPatientFunc func(ctx context.Context, patientID string) ([]domain.Prescription, error)
	ListByDoctorFunc  func(ctx context.Context, doctorID string) ([]domain.Prescription, error)
	DeleteFunc        func(ctx context.Context, id string) error
}

func (m *mockPrescriptionRepo) Create(ctx context.Context, prescription *domain.Prescription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, prescription)
	}
	prescription.ID = "prescription-mock"
	return nil
}

func (m *mockPrescriptionRepo) Update(ctx context.Context, prescription *domain.Prescription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, prescription)
	}
	return nil
}

func (m *mockPrescriptionRepo) GetByID(ctx context.Context, id string) (*domain.Prescription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockPrescriptionRepo) ListByPatient(ctx context.Context, patientID string) ([]domain.Prescription, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *mockPrescriptionRepo) ListByDoctor(ctx context.Context, doctorID string) ([]domain.Prescription, error) {
	if m.ListByDoctorFunc != nil {
		return m.ListByDoctorFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *mockPrescriptionRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// captureDispatcher records published events for assertions.
type captureDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *captureDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *captureDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}
