package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/patient-portal/internal/auth"
	"github.com/spec-kit/patient-portal/internal/config"
	"github.com/spec-kit/patient-portal/internal/domain"
	"github.com/spec-kit/patient-portal/internal/repository"
	"github.com/spec-kit/patient-portal/internal/validation"
	apperrors "github.com/spec-kit/patient-portal/pkg/util"
)

// invalidCredentials is the single message for every login failure so the
// response cannot distinguish "wrong password" from "unknown email".
const invalidCredentials = "Invalid credentials"

// AuthService coordinates registration, login, and logout flows.
type AuthService struct {
	identities    repository.IdentityRepository
	patients      repository.PatientRepository
	doctors       repository.DoctorRepository
	registrations repository.RegistrationRepository
	tokenMgr      *auth.TokenManager
	denylist      *auth.TokenDenylist
	bcryptCost    int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	IdentityRepo     repository.IdentityRepository
	PatientRepo      repository.PatientRepository
	DoctorRepo       repository.DoctorRepository
	RegistrationRepo repository.RegistrationRepository
	Denylist         *auth.TokenDenylist
}

// AuthResult bundles the identity, its profile id, and a freshly issued token.
type AuthResult struct {
	Identity  *domain.Identity
	ProfileID string
	Token     string
	ExpiresAt time.Time
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		identities:    deps.IdentityRepo,
		patients:      deps.PatientRepo,
		doctors:       deps.DoctorRepo,
		registrations: deps.RegistrationRepo,
		tokenMgr:      auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes),
		denylist:      deps.Denylist,
		bcryptCost:    cfg.Auth.BcryptCost,
	}
}

// RegisterPatient creates an identity plus patient profile in one
// transaction and issues a token. A failure leaves no row behind, so the
// email stays reusable.
func (s *AuthService) RegisterPatient(ctx context.Context, input *validation.RegisterPatientInput) (*AuthResult, error) {
	if err := s.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	identity := &domain.Identity{
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RolePatient,
	}
	profile := &domain.PatientProfile{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
		BloodGroup:  input.BloodGroup,
		Phone:       input.Phone,
		Address:     input.Address,
	}
	if err := s.registrations.RegisterPatient(ctx, identity, profile); err != nil {
		return nil, mapRegistrationError(err)
	}

	return s.issue(identity, profile.ID)
}

// RegisterDoctor creates an identity plus doctor profile in one
// transaction and issues a token.
func (s *AuthService) RegisterDoctor(ctx context.Context, input *validation.RegisterDoctorInput) (*AuthResult, error) {
	if err := s.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	identity := &domain.Identity{
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleDoctor,
	}
	profile := &domain.DoctorProfile{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Specialization: input.Specialization,
		LicenseNumber:  input.LicenseNumber,
		Department:     input.Department,
		Phone:          input.Phone,
	}
	if err := s.registrations.RegisterDoctor(ctx, identity, profile); err != nil {
		return nil, mapRegistrationError(err)
	}

	return s.issue(identity, profile.ID)
}

// Login authenticates an identity of either role.
func (s *AuthService) Login(ctx context.Context, input *validation.LoginInput) (*AuthResult, error) {
	identity, err := s.identities.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthenticated(invalidCredentials)
		}
		return nil, apperrors.MapError(err)
	}

	ok, err := auth.VerifyPassword(input.Password, identity.PasswordHash)
	if err != nil || !ok {
		return nil, apperrors.NewUnauthenticated(invalidCredentials)
	}

	profileID, err := s.profileIDFor(ctx, identity)
	if err != nil {
		return nil, err
	}
	return s.issue(identity, profileID)
}

// Logout revokes the presented token until its natural expiry. An invalid
// or already-expired token is a no-op: logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	claims := s.tokenMgr.Parse(rawToken)
	if claims == nil {
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, claims *auth.SessionClaims, input *validation.ChangePasswordInput) error {
	identity, err := s.identities.GetByID(ctx, claims.IdentityID)
	if err != nil {
		return apperrors.MapError(err)
	}
	ok, err := auth.VerifyPassword(input.CurrentPassword, identity.PasswordHash)
	if err != nil || !ok {
		return apperrors.NewUnauthenticated(invalidCredentials)
	}
	hash, err := auth.HashPassword(input.NewPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.identities.UpdatePassword(ctx, identity.ID, hash); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// ensureEmailFree is a fast pre-check; two concurrent registrations can
// both pass it, so the unique constraint on identities.email stays the
// authoritative guard and mapRegistrationError translates its violation.
func (s *AuthService) ensureEmailFree(ctx context.Context, email string) error {
	if _, err := s.identities.GetByEmail(ctx, email); err == nil {
		return apperrors.NewValidationError("Email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return apperrors.MapError(err)
	}
	return nil
}

func mapRegistrationError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "license") {
			return apperrors.NewValidationError("License number already registered", nil)
		}
		return apperrors.NewValidationError("Email already registered", nil)
	}
	return apperrors.MapError(err)
}

func (s *AuthService) profileIDFor(ctx context.Context, identity *domain.Identity) (string, error) {
	switch identity.Role {
	case domain.RolePatient:
		profile, err := s.patients.GetByIdentityID(ctx, identity.ID)
		if err != nil {
			return "", apperrors.MapError(err)
		}
		return profile.ID, nil
	case domain.RoleDoctor:
		profile, err := s.doctors.GetByIdentityID(ctx, identity.ID)
		if err != nil {
			return "", apperrors.MapError(err)
		}
		return profile.ID, nil
	}
	return "", apperrors.NewUnauthenticated(invalidCredentials)
}

func (s *AuthService) issue(identity *domain.Identity, profileID string) (*AuthResult, error) {
	token, expiresAt, err := s.tokenMgr.Generate(identity.ID, identity.Email, identity.Role, profileID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &AuthResult{
		Identity:  identity,
		ProfileID: profileID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
