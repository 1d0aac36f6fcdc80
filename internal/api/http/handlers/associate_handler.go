package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-platform/internal/api/dto"
	"github.com/spec-kit/hr-platform/internal/service"
	"github.com/spec-kit/hr-platform/pkg/util"
)

// AssociateHandler exposes the dossier upsert.
type AssociateHandler struct {
	association *service.AssociationService
}

// NewAssociateHandler constructs handler.
func NewAssociateHandler(association *service.AssociationService) *AssociateHandler {
	return &AssociateHandler{association: association}
}

// Associate handles POST /associate.
func (h *AssociateHandler) Associate(c *fiber.Ctx) error {
	var req dto.AssociateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.EmployeeID <= 0 || req.BeneficiaryID <= 0 {
		return util.NewValidationError("employeeId and beneficiaryId required", nil)
	}

	dossier, created, err := h.association.Associate(c.Context(), req.EmployeeID, req.BeneficiaryID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"dossier": dossier, "created": created})
}

// GetDossier handles GET /dossiers/:id.
func (h *AssociateHandler) GetDossier(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	dossier, err := h.association.GetDossier(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dossier)
}
