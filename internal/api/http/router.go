package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/patient-portal/internal/api/http/handlers"
	"github.com/spec-kit/patient-portal/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Appointments   *handlers.AppointmentsHandler
	MedicalRecords *handlers.MedicalRecordsHandler
	Prescriptions  *handlers.PrescriptionsHandler
	Session        *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes. Every route behind the session
// middleware derives its caller from the resolved claim; role guards gate
// creation per operation class, and row-level ownership is re-derived in
// the services.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register/patient", cfg.Auth.RegisterPatient)
	authGroup.Post("/register/doctor", cfg.Auth.RegisterDoctor)
	authGroup.Post("/login", cfg.Auth.Login)

	authProtected := authGroup.Group("", cfg.Session.Handle)
	authProtected.Post("/logout", cfg.Auth.Logout)
	authProtected.Get("/me", cfg.Auth.Me)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)

	app.Get("/doctors", cfg.Session.Handle, cfg.Appointments.ListDoctors)

	appointments := app.Group("/appointments", cfg.Session.Handle)
	appointments.Post("", auth.RequirePatient(), cfg.Appointments.Create)
	appointments.Get("", cfg.Appointments.List)
	appointments.Get("/:id", cfg.Appointments.Get)
	appointments.Put("/:id", cfg.Appointments.Update)
	appointments.Delete("/:id", cfg.Appointments.Delete)

	records := app.Group("/medical-records", cfg.Session.Handle)
	records.Post("", auth.RequireDoctor(), cfg.MedicalRecords.Create)
	records.Get("", cfg.MedicalRecords.List)
	records.Get("/:id", cfg.MedicalRecords.Get)
	records.Put("/:id", cfg.MedicalRecords.Update)
	records.Delete("/:id", cfg.MedicalRecords.Delete)

	prescriptions := app.Group("/prescriptions", cfg.Session.Handle)
	prescriptions.Post("", auth.RequireDoctor(), cfg.Prescriptions.Create)
	prescriptions.Get("", cfg.Prescriptions.List)
	prescriptions.Get("/:id", cfg.Prescriptions.Get)
	prescriptions.Put("/:id", cfg.Prescriptions.Update)
	prescriptions.Delete("/:id", cfg.Prescriptions.Delete)
}
