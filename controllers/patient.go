package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/physiosync/physiosync-server/utils"
)

// GetPatients returns the registry.
func (h *Handler) GetPatients(c *fiber.Ctx) error {
	return c.JSON(h.Svc.Patients())
}

// ExportPatientsCSV renders the registry as a CSV download.
func (h *Handler) ExportPatientsCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Name", "Email", "Phone", "Last Visit", "Medical History"}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to export patients",
			Error:   err.Error(),
		})
	}
	for _, p := range h.Svc.Patients() {
		lastVisit := p.LastVisit
		if lastVisit == "" {
			lastVisit = "N/A"
		}
		record := []string{p.Name, p.Email, p.Phone, lastVisit, strings.Join(p.MedicalHistory, "; ")}
		if err := w.Write(record); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to export patients",
				Error:   err.Error(),
			})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to export patients",
			Error:   err.Error(),
		})
	}

	filename := fmt.Sprintf("PhysioSync_Patients_%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
