package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/patient-portal/internal/api/dto"
	"github.com/spec-kit/patient-portal/internal/auth"
	"github.com/spec-kit/patient-portal/internal/service"
	"github.com/spec-kit/patient-portal/internal/validation"
	apperrors "github.com/spec-kit/patient-portal/pkg/util"
)

// AppointmentsHandler manages appointment endpoints for both roles.
type AppointmentsHandler struct {
	service *service.AppointmentService
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(appointmentService *service.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{service: appointmentService}
}

// Create POST /appointments.
func (h *AppointmentsHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := validation.ValidateAppointmentCreate(req)
	if err != nil {
		return err
	}

	appointment, err := h.service.Create(c.Context(), claims, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.NewAppointmentResponse(appointment),
	})
}

// List GET /appointments.
func (h *AppointmentsHandler) List(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	appointments, err := h.service.ListForCaller(c.Context(), claims)
	if err != nil {
		return err
	}
	items := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		items = append(items, dto.NewAppointmentResponse(&appointments[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// Get GET /appointments/:id.
func (h *AppointmentsHandler) Get(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	appointment, err := h.service.GetByID(c.Context(), claims, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewAppointmentResponse(appointment)})
}

// Update PUT /appointments/:id.
func (h *AppointmentsHandler) Update(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	var req dto.UpdateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	patch, err := validation.ValidateAppointmentUpdate(req)
	if err != nil {
		return err
	}

	appointment, err := h.service.Update(c.Context(), claims, c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewAppointmentResponse(appointment)})
}

// Delete DELETE /appointments/:id.
func (h *AppointmentsHandler) Delete(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	if err := h.service.Delete(c.Context(), claims, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Appointment deleted successfully",
	})
}

// ListDoctors GET /doctors returns the booking directory.
func (h *AppointmentsHandler) ListDoctors(c *fiber.Ctx) error {
	doctors, err := h.service.ListDoctors(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.DoctorSummary, 0, len(doctors))
	for i := range doctors {
		items = append(items, dto.NewDoctorSummary(&doctors[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}
