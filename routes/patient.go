package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/physiosync/physiosync-server/clinic"
	"github.com/physiosync/physiosync-server/controllers"
	"github.com/physiosync/physiosync-server/middleware"
	"github.com/physiosync/physiosync-server/models"
)

// SetupPatientRoutes configures the patient registry routes. Every role but
// patient may read and export the registry.
func SetupPatientRoutes(app *fiber.App, h *controllers.Handler, svc *clinic.Service) {
	patient := app.Group("/patients",
		middleware.Protected(), middleware.LoadUser(svc), middleware.RequireApproved(),
		middleware.RequireRole(models.RoleDoctor, models.RoleStaff, models.RoleAdmin))

	patient.Get("/", h.GetPatients)
	patient.Get("/export", h.ExportPatientsCSV)
}
