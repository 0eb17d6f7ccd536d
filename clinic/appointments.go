package clinic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/physiosync/physiosync-server/models"
)

// IntakeRequest carries the fields of a staff/doctor appointment intake.
type IntakeRequest struct {
	PatientName  string                   `json:"patientName"`
	PatientPhone string                   `json:"patientPhone"`
	Date         string                   `json:"date"`
	Time         string                   `json:"time"`
	Reason       string                   `json:"reason"`
	Source       models.AppointmentSource `json:"source"`
}

// CreateAppointment resolves or creates the patient by name and appends a
// pending appointment. A slot already held by a non-cancelled appointment is
// rejected here rather than at confirm time, so the conflict surfaces while
// the booker can still pick another slot.
func (s *Service) CreateAppointment(ctx context.Context, req IntakeRequest) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !models.ValidSlot(req.Time) {
		return models.Appointment{}, ErrInvalidSlot
	}
	if !models.ValidSource(req.Source) {
		return models.Appointment{}, ErrInvalidSource
	}
	if s.slotTaken(req.Date, req.Time) {
		return models.Appointment{}, ErrSlotTaken
	}

	patient, created := s.resolveOrCreatePatient(req.PatientName, req.PatientPhone)
	if created {
		if err := s.store.SavePatients(ctx, s.patients); err != nil {
			return models.Appointment{}, err
		}
	}

	appointment := models.Appointment{
		ID:           uuid.NewString(),
		PatientID:    patient.ID,
		PatientName:  req.PatientName,
		PatientPhone: req.PatientPhone,
		Date:         req.Date,
		Time:         req.Time,
		Reason:       req.Reason,
		Source:       req.Source,
		Status:       models.StatusPending,
		CreatedAt:    time.Now(),
	}

	s.appointments = append([]models.Appointment{appointment}, s.appointments...)
	if err := s.store.SaveAppointments(ctx, s.appointments); err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

// SelfBook books a slot for the acting user's own patient profile. The source
// is always "app". A dangling profile binding falls back to the first patient
// on file.
func (s *Service) SelfBook(ctx context.Context, user models.User, date, timeLabel, reason string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.PatientProfileID == "" {
		return models.Appointment{}, ErrNoPatientProfile
	}
	if !models.ValidSlot(timeLabel) {
		return models.Appointment{}, ErrInvalidSlot
	}
	if s.slotTaken(date, timeLabel) {
		return models.Appointment{}, ErrSlotTaken
	}

	var patient *models.Patient
	for i := range s.patients {
		if s.patients[i].ID == user.PatientProfileID {
			patient = &s.patients[i]
			break
		}
	}
	if patient == nil {
		if len(s.patients) == 0 {
			return models.Appointment{}, ErrNoPatientProfile
		}
		patient = &s.patients[0]
	}

	appointment := models.Appointment{
		ID:           uuid.NewString(),
		PatientID:    patient.ID,
		PatientName:  patient.Name,
		PatientPhone: patient.Phone,
		Date:         date,
		Time:         timeLabel,
		Reason:       reason,
		Source:       models.SourceApp,
		Status:       models.StatusPending,
		CreatedAt:    time.Now(),
	}

	s.appointments = append([]models.Appointment{appointment}, s.appointments...)
	if err := s.store.SaveAppointments(ctx, s.appointments); err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

// ChangeAppointmentStatus applies a legal status transition and mirrors the
// collection. Illegal transitions mutate nothing.
func (s *Service) ChangeAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		if err := s.appointments[i].CanTransition(status); err != nil {
			return models.Appointment{}, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
		s.appointments[i].Status = status
		if err := s.store.SaveAppointments(ctx, s.appointments); err != nil {
			return models.Appointment{}, err
		}
		return s.appointments[i], nil
	}
	return models.Appointment{}, ErrNotFound
}

// Appointments lists the schedule for a user. Patients only ever see rows
// bound to their own profile.
func (s *Service) Appointments(user models.User) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !user.CanSeeOwnAppointmentsOnly() {
		out := make([]models.Appointment, len(s.appointments))
		copy(out, s.appointments)
		return out
	}

	var out []models.Appointment
	for _, a := range s.appointments {
		if a.PatientID == user.PatientProfileID {
			out = append(out, a)
		}
	}
	return out
}

// Patients returns a copy of the registry.
func (s *Service) Patients() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Patient, len(s.patients))
	copy(out, s.patients)
	return out
}

// Availability computes the slot grid for one date. A slot is free unless a
// non-cancelled appointment already holds it.
func (s *Service) Availability(date string) []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slots := make([]models.TimeSlot, 0, len(models.WorkingHours))
	for _, label := range models.WorkingHours {
		slots = append(slots, models.TimeSlot{
			Time:        label,
			IsAvailable: !s.slotTaken(date, label),
		})
	}
	return slots
}

// ConfirmedOn lists confirmed appointments for a date, used by the reminder
// job.
func (s *Service) ConfirmedOn(date string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, a := range s.appointments {
		if a.Date == date && a.Status == models.StatusConfirmed {
			out = append(out, a)
		}
	}
	return out
}

// PatientByID looks up one patient record.
func (s *Service) PatientByID(id string) (models.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.patients {
		if p.ID == id {
			return p, true
		}
	}
	return models.Patient{}, false
}

// Stats recomputes the dashboard aggregate from the appointment collection.
func (s *Service) Stats() models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := time.Now().Format("2006-01-02")
	stats := models.DashboardStats{
		TotalAppointments: len(s.appointments),
	}

	counts := map[models.AppointmentSource]int{}
	for _, a := range s.appointments {
		if a.Date == today && a.Status == models.StatusConfirmed {
			stats.ConfirmedToday++
		}
		if a.Status == models.StatusPending {
			stats.PendingRequests++
		}
		counts[a.Source]++
	}

	stats.SourceDistribution = []models.SourceCount{
		{Name: "WhatsApp", Value: counts[models.SourceWhatsApp]},
		{Name: "SMS", Value: counts[models.SourceSMS]},
		{Name: "App", Value: counts[models.SourceApp]},
		{Name: "Call", Value: counts[models.SourceCall]},
	}
	return stats
}

// slotTaken assumes the caller holds at least a read lock.
func (s *Service) slotTaken(date, timeLabel string) bool {
	for _, a := range s.appointments {
		if a.Date == date && a.Time == timeLabel && a.Blocking() {
			return true
		}
	}
	return false
}

// resolveOrCreatePatient matches case-insensitively against the registry,
// first match wins. A miss creates a minimal record pending a proper intake.
// Caller holds the write lock; the second return reports whether the registry
// grew.
func (s *Service) resolveOrCreatePatient(name, phone string) (models.Patient, bool) {
	for _, p := range s.patients {
		if strings.EqualFold(p.Name, name) {
			return p, false
		}
	}

	patient := models.Patient{
		ID:             uuid.NewString(),
		Name:           name,
		Phone:          phone,
		Email:          "newpatient@example.com",
		MedicalHistory: []string{"Pending Intake"},
	}
	s.patients = append(s.patients, patient)
	return patient, true
}
