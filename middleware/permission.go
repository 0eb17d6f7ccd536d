package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/physiosync/physiosync-server/clinic"
	"github.com/physiosync/physiosync-server/models"
)

// LoadUser resolves the authenticated account into the "account" local. The
// lookup is live so that an approval (or rejection) takes effect on the next
// request, not on the next sign-in.
func LoadUser(svc *clinic.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("userID").(string)

		if userID == models.BootstrapAdminID {
			email := os.Getenv("ADMIN_EMAIL")
			if email == "" {
				email = "admin"
			}
			c.Locals("account", models.User{
				ID:         models.BootstrapAdminID,
				Email:      email,
				Name:       "System Admin",
				Role:       models.RoleAdmin,
				IsApproved: true,
			})
			return c.Next()
		}

		user, ok := svc.FindUserByID(userID)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		c.Locals("account", user)
		return c.Next()
	}
}

// RequireApproved is the global gate ahead of all routing: an unapproved
// non-admin account can do nothing but sign out.
func RequireApproved() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("account").(models.User)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		if !user.IsApproved && user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":  "Account awaiting approval",
				"status": "awaiting_approval",
			})
		}
		return c.Next()
	}
}

// RequireRole allows only the listed roles through.
func RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("account").(models.User)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}
}
