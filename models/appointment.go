package models

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

type AppointmentSource string

const (
	SourceWhatsApp AppointmentSource = "whatsapp"
	SourceSMS      AppointmentSource = "sms"
	SourceApp      AppointmentSource = "app"
	SourceCall     AppointmentSource = "call"
)

// ValidSource reports whether s is a known intake channel.
func ValidSource(s AppointmentSource) bool {
	switch s {
	case SourceWhatsApp, SourceSMS, SourceApp, SourceCall:
		return true
	}
	return false
}

type Appointment struct {
	ID           string            `json:"id"`
	PatientID    string            `json:"patientId"`
	PatientName  string            `json:"patientName"`
	PatientPhone string            `json:"patientPhone"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Reason       string            `json:"reason"`
	Source       AppointmentSource `json:"source"`
	Status       AppointmentStatus `json:"status"`
	Notes        string            `json:"notes,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// Blocking reports whether the appointment occupies its slot. Cancelled
// records free the slot, every other status holds it.
func (a Appointment) Blocking() bool {
	return a.Status != StatusCancelled
}

// CanTransition validates a status change. Forward only: pending may be
// confirmed or cancelled, confirmed may complete; completed and cancelled are
// terminal.
func (a Appointment) CanTransition(next AppointmentStatus) error {
	switch a.Status {
	case StatusPending:
		if next != StatusConfirmed && next != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", next)
		}
	case StatusConfirmed:
		if next != StatusCompleted {
			return fmt.Errorf("invalid transition from confirmed to %s", next)
		}
	default:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}
	return nil
}
