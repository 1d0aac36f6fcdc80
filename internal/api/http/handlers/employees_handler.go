package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-platform/internal/api/dto"
	"github.com/spec-kit/hr-platform/internal/domain"
	"github.com/spec-kit/hr-platform/internal/service"
	"github.com/spec-kit/hr-platform/pkg/util"
)

// EmployeesHandler exposes CRUD over the employee registry.
type EmployeesHandler struct {
	registry *service.RegistryService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(registry *service.RegistryService) *EmployeesHandler {
	return &EmployeesHandler{registry: registry}
}

// Create handles POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Address == "" || req.Email == "" || req.SSN == "" {
		return util.NewValidationError("name, address, email, ssn required", nil)
	}

	employee, err := h.registry.CreateEmployee(c.Context(), service.EmployeeCreateInput{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
		SSN:     req.SSN,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(employee)
}

// List handles GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	employees, err := h.registry.ListEmployees(c.Context())
	if err != nil {
		return err
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return c.JSON(employees)
}

// Get handles GET /employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	employee, err := h.registry.GetEmployee(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(employee)
}

// Update handles PUT /employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	employee, err := h.registry.UpdateEmployee(c.Context(), id, service.EmployeeUpdateInput{
		Name:          req.Name,
		Address:       req.Address,
		Email:         req.Email,
		SSN:           req.SSN,
		Authenticated: req.Authenticated,
	})
	if err != nil {
		return err
	}
	return c.JSON(employee)
}

// SetAuth handles PUT /employees/:id/auth.
func (h *EmployeesHandler) SetAuth(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.EmployeeAuthRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	employee, err := h.registry.SetAuthenticated(c.Context(), id, req.Authenticated)
	if err != nil {
		return err
	}
	return c.JSON(employee)
}

// Delete handles DELETE /employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	employee, err := h.registry.DeleteEmployee(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(employee)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, util.NewValidationError("invalid id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}
