package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/physiosync/physiosync-server/clinic"
	"github.com/physiosync/physiosync-server/controllers"
	"github.com/physiosync/physiosync-server/middleware"
	"github.com/physiosync/physiosync-server/models"
)

// SetupAdminRoutes configures the approval queue and reset routes.
func SetupAdminRoutes(app *fiber.App, h *controllers.Handler, svc *clinic.Service) {
	admin := app.Group("/admin",
		middleware.Protected(), middleware.LoadUser(svc), middleware.RequireApproved(),
		middleware.RequireRole(models.RoleAdmin))

	admin.Get("/pending-users", h.GetPendingUsers)
	admin.Post("/users/:id/approve", h.ApproveUser)
	admin.Delete("/users/:id", h.RejectUser)
	admin.Post("/reset", h.ResetDatabase)
}
