package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/physiosync/physiosync-server/clinic"
	"github.com/physiosync/physiosync-server/models"
	"github.com/physiosync/physiosync-server/utils"
)

// GetAppointments lists the schedule. Patients only receive their own rows.
func (h *Handler) GetAppointments(c *fiber.Ctx) error {
	user, ok := account(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	appointments := h.Svc.Appointments(user)
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return c.JSON(appointments)
}

// CreateAppointment is the staff/doctor intake path.
func (h *Handler) CreateAppointment(c *fiber.Ctx) error {
	var req clinic.IntakeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.PatientName == "" || req.Date == "" || req.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	appointment, err := h.Svc.CreateAppointment(c.Context(), req)
	if err != nil {
		return appointmentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// SelfBook books a slot for the signed-in patient's own profile.
func (h *Handler) SelfBook(c *fiber.Ctx) error {
	user, ok := account(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	type SelfBookInput struct {
		Date   string `json:"date"`
		Time   string `json:"time"`
		Reason string `json:"reason"`
	}
	input := new(SelfBookInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Date == "" || input.Time == "" || input.Reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	appointment, err := h.Svc.SelfBook(c.Context(), user, input.Date, input.Time, input.Reason)
	if err != nil {
		return appointmentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointmentStatus applies a status transition.
func (h *Handler) UpdateAppointmentStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	type StatusInput struct {
		Status models.AppointmentStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	appointment, err := h.Svc.ChangeAppointmentStatus(c.Context(), id, input.Status)
	if err != nil {
		return appointmentError(c, err)
	}
	return c.JSON(appointment)
}

// GetAvailability returns the slot grid for ?date=YYYY-MM-DD.
func (h *Handler) GetAvailability(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing date query parameter",
		})
	}
	return c.JSON(h.Svc.Availability(date))
}

// GetDashboardStats recomputes the aggregate on every call.
func (h *Handler) GetDashboardStats(c *fiber.Ctx) error {
	return c.JSON(h.Svc.Stats())
}

func appointmentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, clinic.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	case errors.Is(err, clinic.ErrSlotTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "This slot is already booked",
		})
	case errors.Is(err, clinic.ErrInvalidSlot):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Not a bookable time slot",
		})
	case errors.Is(err, clinic.ErrInvalidSource):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown appointment source",
		})
	case errors.Is(err, clinic.ErrInvalidTransition):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, clinic.ErrNoPatientProfile):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No patient profile is linked to this account",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointments",
			Error:   err.Error(),
		})
	}
}
