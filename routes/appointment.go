package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/physiosync/physiosync-server/clinic"
	"github.com/physiosync/physiosync-server/controllers"
	"github.com/physiosync/physiosync-server/middleware"
	"github.com/physiosync/physiosync-server/models"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, h *controllers.Handler, svc *clinic.Service) {
	appointment := app.Group("/appointments",
		middleware.Protected(), middleware.LoadUser(svc), middleware.RequireApproved())

	appointment.Get("/", h.GetAppointments)
	appointment.Get("/availability", h.GetAvailability)
	appointment.Post("/", middleware.RequireRole(models.RoleDoctor, models.RoleStaff), h.CreateAppointment)
	appointment.Post("/self", middleware.RequireRole(models.RolePatient), h.SelfBook)
	appointment.Patch("/:id/status",
		middleware.RequireRole(models.RoleDoctor, models.RoleStaff, models.RoleAdmin), h.UpdateAppointmentStatus)

	dashboard := app.Group("/dashboard",
		middleware.Protected(), middleware.LoadUser(svc), middleware.RequireApproved(),
		middleware.RequireRole(models.RoleDoctor, models.RoleStaff, models.RoleAdmin))
	dashboard.Get("/stats", h.GetDashboardStats)

	intake := app.Group("/intake",
		middleware.Protected(), middleware.LoadUser(svc), middleware.RequireApproved(),
		middleware.RequireRole(models.RoleDoctor, models.RoleStaff))
	intake.Post("/parse", h.ParseMessage)
}
