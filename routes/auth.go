package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/physiosync/physiosync-server/clinic"
	"github.com/physiosync/physiosync-server/controllers"
	"github.com/physiosync/physiosync-server/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, h *controllers.Handler, svc *clinic.Service) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.RefreshToken)

	// Profile stays reachable for unapproved accounts so clients can render
	// the awaiting-approval state; everything else sits behind the gate.
	auth.Get("/me", middleware.Protected(), middleware.LoadUser(svc), h.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), h.Logout)
}
