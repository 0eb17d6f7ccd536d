package controllers

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/physiosync/physiosync-server/clinic"
	"github.com/physiosync/physiosync-server/models"
)

// MessageParser is the boundary to the external extraction model. Anything it
// returns is a reviewable draft, never a committed appointment.
type MessageParser interface {
	ParseMessage(ctx context.Context, message string) (models.ParsedBooking, error)
}

// Handler bundles the state-owning service and the parse collaborator for the
// HTTP surface. Handlers decode, delegate and encode; business rules live in
// the clinic package.
type Handler struct {
	Svc    *clinic.Service
	Parser MessageParser
}

func NewHandler(svc *clinic.Service, parser MessageParser) *Handler {
	return &Handler{Svc: svc, Parser: parser}
}

// account returns the user resolved by the middleware chain.
func account(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals("account").(models.User)
	return user, ok
}

// AdminEmail is the bootstrap administrator identifier.
func AdminEmail() string {
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		return v
	}
	return "admin"
}

// AdminPassword is the bootstrap administrator password.
func AdminPassword() string {
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		return v
	}
	return "admin123"
}
