package auth

import "github.com/spec-kit/patient-portal/internal/domain"

// OwnedResource is any persisted row owned jointly by one patient and one
// doctor profile.
type OwnedResource interface {
	PatientProfileID() string
	DoctorProfileID() string
}

// IsOwner reports whether the claim's (role, profileId) pair matches the
// owning side of the row: the patient field for PATIENT claims, the doctor
// field for DOCTOR claims. Every domain service applies this one predicate
// rather than re-deriving ownership per entity.
func IsOwner(claims *SessionClaims, row OwnedResource) bool {
	if claims == nil || row == nil {
		return false
	}
	switch claims.Role {
	case domain.RolePatient:
		return claims.ProfileID == row.PatientProfileID()
	case domain.RoleDoctor:
		return claims.ProfileID == row.DoctorProfileID()
	}
	return false
}
