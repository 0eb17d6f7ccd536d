package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/physiosync/physiosync-server/models"
	"github.com/physiosync/physiosync-server/utils"
)

// GetPendingUsers lists professional accounts awaiting review.
func (h *Handler) GetPendingUsers(c *fiber.Ctx) error {
	pending := h.Svc.PendingUsers()
	if pending == nil {
		pending = []models.User{}
	}
	return c.JSON(pending)
}

// ApproveUser flips the approval flag on an account request.
func (h *Handler) ApproveUser(c *fiber.Ctx) error {
	if err := h.Svc.ApproveUser(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to approve user",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "User approved",
	})
}

// RejectUser removes an account request entirely.
func (h *Handler) RejectUser(c *fiber.Ctx) error {
	if err := h.Svc.RejectUser(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to reject user",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "User rejected",
	})
}

// ResetDatabase clears the durable slots and restores the seed state.
func (h *Handler) ResetDatabase(c *fiber.Ctx) error {
	if err := h.Svc.Reset(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to reset database",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Database reset to seed state",
	})
}
