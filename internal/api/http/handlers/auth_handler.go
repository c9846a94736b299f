package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/patient-portal/internal/api/dto"
	"github.com/spec-kit/patient-portal/internal/auth"
	"github.com/spec-kit/patient-portal/internal/config"
	"github.com/spec-kit/patient-portal/internal/service"
	"github.com/spec-kit/patient-portal/internal/validation"
	apperrors "github.com/spec-kit/patient-portal/pkg/util"
)

// AuthHandler exposes registration, login, and session endpoints.
type AuthHandler struct {
	auth *service.AuthService
	cfg  config.AuthConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{auth: authService, cfg: cfg}
}

// RegisterPatient handles POST /auth/register/patient.
func (h *AuthHandler) RegisterPatient(c *fiber.Ctx) error {
	var req dto.RegisterPatientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := validation.ValidateRegisterPatient(req)
	if err != nil {
		return err
	}

	result, err := h.auth.RegisterPatient(c.Context(), input)
	if err != nil {
		return err
	}
	h.setSessionCookie(c, result.Token, result.ExpiresAt)
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    sessionResponse(result),
	})
}

// RegisterDoctor handles POST /auth/register/doctor.
func (h *AuthHandler) RegisterDoctor(c *fiber.Ctx) error {
	var req dto.RegisterDoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := validation.ValidateRegisterDoctor(req)
	if err != nil {
		return err
	}

	result, err := h.auth.RegisterDoctor(c.Context(), input)
	if err != nil {
		return err
	}
	h.setSessionCookie(c, result.Token, result.ExpiresAt)
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    sessionResponse(result),
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := validation.ValidateLogin(req)
	if err != nil {
		return err
	}

	result, err := h.auth.Login(c.Context(), input)
	if err != nil {
		return err
	}
	h.setSessionCookie(c, result.Token, result.ExpiresAt)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    sessionResponse(result),
	})
}

// Logout handles POST /auth/logout. The presented token is denylisted
// until its natural expiry and the cookie is cleared.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), c.Cookies(auth.CookieName)); err != nil {
		return err
	}
	h.clearSessionCookie(c)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Me handles GET /auth/me, echoing the resolved claim.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": dto.SessionResponse{
			ID:        claims.IdentityID,
			Email:     claims.Email,
			Role:      string(claims.Role),
			ProfileID: claims.ProfileID,
		},
	})
}

// ChangePassword handles POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := validation.ValidateChangePassword(req)
	if err != nil {
		return err
	}
	if err := h.auth.ChangePassword(c.Context(), claims, input); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password updated",
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func sessionResponse(result *service.AuthResult) dto.SessionResponse {
	return dto.SessionResponse{
		ID:        result.Identity.ID,
		Email:     result.Identity.Email,
		Role:      string(result.Identity.Role),
		ProfileID: result.ProfileID,
	}
}
