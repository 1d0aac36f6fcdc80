package handlers

import "github.com/gofiber/fiber/v2"

// DocsHandler serves the service's OpenAPI document at /api-docs.
type DocsHandler struct {
	document map[string]any
}

// NewDocsHandler constructs handler around a pre-built document.
func NewDocsHandler(document map[string]any) *DocsHandler {
	return &DocsHandler{document: document}
}

// Serve handles GET /api-docs.
func (h *DocsHandler) Serve(c *fiber.Ctx) error {
	return c.JSON(h.document)
}
