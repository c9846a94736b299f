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

// PrescriptionsHandler manages prescription endpoints.
type PrescriptionsHandler struct {
	service *service.PrescriptionService
}

// NewPrescriptionsHandler constructs handler.
func NewPrescriptionsHandler(prescriptionService *service.PrescriptionService) *PrescriptionsHandler {
	return &PrescriptionsHandler{service: prescriptionService}
}

// Create POST /prescriptions.
func (h *PrescriptionsHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	var req dto.CreatePrescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := validation.ValidatePrescriptionCreate(req)
	if err != nil {
		return err
	}

	prescription, err := h.service.Create(c.Context(), claims, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.NewPrescriptionResponse(prescription),
	})
}

// List GET /prescriptions.
func (h *PrescriptionsHandler) List(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	prescriptions, err := h.service.ListForCaller(c.Context(), claims)
	if err != nil {
		return err
	}
	items := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		items = append(items, dto.NewPrescriptionResponse(&prescriptions[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// Get GET /prescriptions/:id.
func (h *PrescriptionsHandler) Get(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	prescription, err := h.service.GetByID(c.Context(), claims, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewPrescriptionResponse(prescription)})
}

// Update PUT /prescriptions/:id.
func (h *PrescriptionsHandler) Update(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	var req dto.UpdatePrescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	patch, err := validation.ValidatePrescriptionUpdate(req)
	if err != nil {
		return err
	}

	prescription, err := h.service.Update(c.Context(), claims, c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewPrescriptionResponse(prescription)})
}

// Delete DELETE /prescriptions/:id.
func (h *PrescriptionsHandler) Delete(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	if err := h.service.Delete(c.Context(), claims, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Prescription deleted successfully",
	})
}
