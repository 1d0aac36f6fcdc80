package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-platform/internal/api/http/handlers"
)

// RegistryRoutes bundles dependencies for the employee registry surface.
type RegistryRoutes struct {
	Health        *handlers.HealthHandler
	Employees     *handlers.EmployeesHandler
	Beneficiaries *handlers.BeneficiariesHandler
	Counselors    *handlers.CounselorsHandler
	Docs          *handlers.DocsHandler
}

// RegisterRegistryRoutes wires the registry's HTTP routes.
func RegisterRegistryRoutes(app *fiber.App, cfg RegistryRoutes) {
	registerCommon(app, cfg.Health, cfg.Docs)

	app.Post("/employees", cfg.Employees.Create)
	app.Get("/employees", cfg.Employees.List)
	app.Get("/employees/:id", cfg.Employees.Get)
	app.Put("/employees/:id/auth", cfg.Employees.SetAuth)
	app.Put("/employees/:id", cfg.Employees.Update)
	app.Delete("/employees/:id", cfg.Employees.Delete)

	app.Get("/beneficiaries/:id", cfg.Beneficiaries.Get)
	app.Delete("/beneficiaries/:id", cfg.Beneficiaries.Delete)

	app.Post("/counselors", cfg.Counselors.Create)
}

// HRRoutes bundles dependencies for the orchestration surface.
type HRRoutes struct {
	Health        *handlers.HealthHandler
	HR            *handlers.HRHandler
	Beneficiaries *handlers.BeneficiariesHandler
	Docs          *handlers.DocsHandler
}

// RegisterHRRoutes wires the HR service's HTTP routes.
func RegisterHRRoutes(app *fiber.App, cfg HRRoutes) {
	registerCommon(app, cfg.Health, cfg.Docs)

	app.Post("/auth/verify", cfg.HR.Verify)
	app.Post("/beneficiaries", cfg.Beneficiaries.Create)
	app.Put("/beneficiaries/:id", cfg.Beneficiaries.Update)
	app.Post("/companies", cfg.HR.CreateCompany)
	app.Post("/dossiers", cfg.HR.CreateDossier)
}

// AssociationRoutes bundles dependencies for the association surface.
type AssociationRoutes struct {
	Health    *handlers.HealthHandler
	Associate *handlers.AssociateHandler
	Docs      *handlers.DocsHandler
}

// RegisterAssociationRoutes wires the association service's HTTP routes.
func RegisterAssociationRoutes(app *fiber.App, cfg AssociationRoutes) {
	registerCommon(app, cfg.Health, cfg.Docs)

	app.Post("/associate", cfg.Associate.Associate)
	app.Get("/dossiers/:id", cfg.Associate.GetDossier)
}

// NotificationRoutes bundles dependencies for the notification surface.
type NotificationRoutes struct {
	Health *handlers.HealthHandler
	Notify *handlers.NotifyHandler
	Docs   *handlers.DocsHandler
}

// RegisterNotificationRoutes wires the notification service's HTTP routes.
func RegisterNotificationRoutes(app *fiber.App, cfg NotificationRoutes) {
	registerCommon(app, cfg.Health, cfg.Docs)

	app.Post("/beneficiary-change", cfg.Notify.BeneficiaryChange)
}

func registerCommon(app *fiber.App, health *handlers.HealthHandler, docs *handlers.DocsHandler) {
	app.Get("/health/live", health.Live)
	app.Get("/health/ready", health.Ready)
	app.Get("/api-docs", docs.Serve)
}
