package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/patient-portal/internal/domain"
	apperrors "github.com/spec-kit/patient-portal/pkg/util"
)

// RequirePatient ensures the caller holds a PATIENT-role claim.
func RequirePatient() fiber.Handler {
	return requireRole(domain.RolePatient, "Only patients may perform this action")
}

// RequireDoctor ensures the caller holds a DOCTOR-role claim.
func RequireDoctor() fiber.Handler {
	return requireRole(domain.RoleDoctor, "Only doctors may perform this action")
}

func requireRole(role domain.Role, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("Not authenticated")
		}
		if claims.Role != role {
			return apperrors.NewAccessDenied(message)
		}
		return c.Next()
	}
}
