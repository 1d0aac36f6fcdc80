package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-platform/internal/api/dto"
	"github.com/spec-kit/hr-platform/internal/service"
	"github.com/spec-kit/hr-platform/pkg/util"
)

// BeneficiariesHandler exposes beneficiary CRUD. The registry wires Get and
// Delete; the HR service wires Create and Update.
type BeneficiariesHandler struct {
	beneficiaries *service.BeneficiaryService
}

// NewBeneficiariesHandler constructs handler.
func NewBeneficiariesHandler(beneficiaries *service.BeneficiaryService) *BeneficiariesHandler {
	return &BeneficiariesHandler{beneficiaries: beneficiaries}
}

// Create handles POST /beneficiaries.
func (h *BeneficiariesHandler) Create(c *fiber.Ctx) error {
	var req dto.BeneficiaryRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return util.NewValidationError("name required", nil)
	}

	beneficiary, err := h.beneficiaries.Create(c.Context(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(beneficiary)
}

// Update handles PUT /beneficiaries/:id.
func (h *BeneficiariesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.BeneficiaryRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return util.NewValidationError("name required", nil)
	}

	beneficiary, err := h.beneficiaries.Update(c.Context(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(beneficiary)
}

// Get handles GET /beneficiaries/:id.
func (h *BeneficiariesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	beneficiary, err := h.beneficiaries.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(beneficiary)
}

// Delete handles DELETE /beneficiaries/:id.
func (h *BeneficiariesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	beneficiary, err := h.beneficiaries.Delete(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(beneficiary)
}
