package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// ParseMessage runs the extraction model over pasted free text and returns a
// reviewable draft. Failures are dismissible notices, never fatal: the caller
// always keeps the manual entry path.
func (h *Handler) ParseMessage(c *fiber.Ctx) error {
	if h.Parser == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "AI extraction is not configured, please enter details manually",
		})
	}

	type ParseInput struct {
		Message string `json:"message"`
	}
	input := new(ParseInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	booking, err := h.Parser.ParseMessage(c.Context(), input.Message)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "AI failed to parse the message, please enter details manually",
		})
	}
	return c.JSON(booking)
}
