package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/patient-portal/internal/domain"
)

func TestIsOwner(t *testing.T) {
	appointment := &domain.Appointment{PatientID: "patient-A", DoctorID: "doctor-B"}

	tests := []struct {
		name   string
		claims *SessionClaims
		want   bool
	}{
		{
			name:   "owning patient",
			claims: &SessionClaims{Role: domain.RolePatient, ProfileID: "patient-A"},
			want:   true,
		},
		{
			name:   "owning doctor",
			claims: &SessionClaims{Role: domain.RoleDoctor, ProfileID: "doctor-B"},
			want:   true,
		},
		{
			name:   "foreign patient",
			claims: &SessionClaims{Role: domain.RolePatient, ProfileID: "patient-C"},
			want:   false,
		},
		{
			name:   "foreign doctor",
			claims: &SessionClaims{Role: domain.RoleDoctor, ProfileID: "doctor-C"},
			want:   false,
		},
		{
			name:   "patient id on a doctor claim does not cross over",
			claims: &SessionClaims{Role: domain.RoleDoctor, ProfileID: "patient-A"},
			want:   false,
		},
		{
			name:   "unknown role",
			claims: &SessionClaims{Role: domain.Role("ADMIN"), ProfileID: "patient-A"},
			want:   false,
		},
		{
			name:   "nil claims",
			claims: nil,
			want:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsOwner(tc.claims, appointment))
		})
	}
}

func TestIsOwnerNilRow(t *testing.T) {
	claims := &SessionClaims{Role: domain.RolePatient, ProfileID: "patient-A"}
	assert.False(t, IsOwner(claims, nil))
}

func TestIsOwnerCoversAllOwnedResources(t *testing.T) {
	patient := &SessionClaims{Role: domain.RolePatient, ProfileID: "patient-A"}
	doctor := &SessionClaims{Role: domain.RoleDoctor, ProfileID: "doctor-B"}

	rows := []OwnedResource{
		&domain.Appointment{PatientID: "patient-A", DoctorID: "doctor-B"},
		&domain.MedicalRecord{PatientID: "patient-A", DoctorID: "doctor-B"},
		&domain.Prescription{PatientID: "patient-A", DoctorID: "doctor-B"},
	}
	for _, row := range rows {
		assert.True(t, IsOwner(patient, row))
		assert.True(t, IsOwner(doctor, row))
	}
}
