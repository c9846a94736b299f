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

// MedicalRecordsHandler manages medical record endpoints.
type MedicalRecordsHandler struct {
	service *service.MedicalRecordService
}

// NewMedicalRecordsHandler constructs handler.
func NewMedicalRecordsHandler(recordService *service.MedicalRecordService) *MedicalRecordsHandler {
	return &MedicalRecordsHandler{service: recordService}
}

// Create POST /medical-records.
func (h *MedicalRecordsHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	var req dto.CreateMedicalRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := validation.ValidateMedicalRecordCreate(req)
	if err != nil {
		return err
	}

	record, err := h.service.Create(c.Context(), claims, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.NewMedicalRecordResponse(record),
	})
}

// List GET /medical-records.
func (h *MedicalRecordsHandler) List(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	records, err := h.service.ListForCaller(c.Context(), claims)
	if err != nil {
		return err
	}
	items := make([]dto.MedicalRecordResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.NewMedicalRecordResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// Get GET /medical-records/:id.
func (h *MedicalRecordsHandler) Get(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	record, err := h.service.GetByID(c.Context(), claims, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewMedicalRecordResponse(record)})
}

// Update PUT /medical-records/:id.
func (h *MedicalRecordsHandler) Update(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	var req dto.UpdateMedicalRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	patch, err := validation.ValidateMedicalRecordUpdate(req)
	if err != nil {
		return err
	}

	record, err := h.service.Update(c.Context(), claims, c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewMedicalRecordResponse(record)})
}

// Delete DELETE /medical-records/:id.
func (h *MedicalRecordsHandler) Delete(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("Not authenticated")
	}
	if err := h.service.Delete(c.Context(), claims, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Medical record deleted successfully",
	})
}
