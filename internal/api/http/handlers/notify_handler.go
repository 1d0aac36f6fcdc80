package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-platform/internal/api/dto"
	"github.com/spec-kit/hr-platform/internal/service"
	"github.com/spec-kit/hr-platform/pkg/util"
)

// NotifyHandler receives beneficiary-change events.
type NotifyHandler struct {
	notifications *service.NotificationService
}

// NewNotifyHandler constructs handler.
func NewNotifyHandler(notifications *service.NotificationService) *NotifyHandler {
	return &NotifyHandler{notifications: notifications}
}

// BeneficiaryChange handles POST /beneficiary-change. The event is accepted
// with 202; there is no delivery acknowledgment beyond that.
func (h *NotifyHandler) BeneficiaryChange(c *fiber.Ctx) error {
	var req dto.BeneficiaryChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.DossierID <= 0 {
		return util.NewValidationError("dossierId required", nil)
	}

	h.notifications.Accept(c.Context(), req.DossierID)
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"sent": true})
}
