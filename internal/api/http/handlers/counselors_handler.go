package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-platform/internal/api/dto"
	"github.com/spec-kit/hr-platform/internal/service"
	"github.com/spec-kit/hr-platform/pkg/util"
)

// CounselorsHandler exposes the counselor write path.
type CounselorsHandler struct {
	registry *service.RegistryService
}

// NewCounselorsHandler constructs handler.
func NewCounselorsHandler(registry *service.RegistryService) *CounselorsHandler {
	return &CounselorsHandler{registry: registry}
}

// Create handles POST /counselors.
func (h *CounselorsHandler) Create(c *fiber.Ctx) error {
	var req dto.CounselorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.ID == "" || req.Name == "" {
		return util.NewValidationError("id and name required", nil)
	}

	counselor, err := h.registry.CreateCounselor(c.Context(), req.ID, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(counselor)
}
