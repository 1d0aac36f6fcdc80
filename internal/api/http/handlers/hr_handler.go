package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-platform/internal/api/dto"
	"github.com/spec-kit/hr-platform/internal/service"
	"github.com/spec-kit/hr-platform/pkg/util"
)

// HRHandler exposes the orchestration workflow endpoints.
type HRHandler struct {
	hr *service.HRService
}

// NewHRHandler constructs handler.
func NewHRHandler(hr *service.HRService) *HRHandler {
	return &HRHandler{hr: hr}
}

// Verify handles POST /auth/verify. A mismatch answers 401 with
// {"isValid": false} and no error envelope, matching the public contract.
func (h *HRHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.EmployeeID <= 0 {
		return util.NewValidationError("employeeId required", nil)
	}

	employee, err := h.hr.VerifyIdentity(c.Context(), service.VerifyInput{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Address:    req.Address,
		SSN:        req.SSN,
	})
	if err != nil {
		if de := util.ToDomainError(err); de.Code == "IDENTITY_MISMATCH" {
			return c.Status(http.StatusUnauthorized).JSON(dto.VerifyResponse{IsValid: false})
		}
		return err
	}

	return c.JSON(dto.VerifyResponse{IsValid: true, Employee: employee})
}

// CreateDossier handles POST /dossiers.
func (h *HRHandler) CreateDossier(c *fiber.Ctx) error {
	var req dto.DossierCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.EmployeeID <= 0 || req.BeneficiaryID <= 0 {
		return util.NewValidationError("employeeId and beneficiaryId required", nil)
	}

	result, err := h.hr.CreateDossier(c.Context(), req.EmployeeID, req.BeneficiaryID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(result)
}

// CreateCompany handles POST /companies.
func (h *HRHandler) CreateCompany(c *fiber.Ctx) error {
	var req dto.CompanyCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.ID == "" || req.Name == "" {
		return util.NewValidationError("id and name required", nil)
	}

	company, err := h.hr.CreateCompany(c.Context(), req.ID, req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(company)
}
