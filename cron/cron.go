package cron

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/physiosync/physiosync-server/clinic"
	"github.com/physiosync/physiosync-server/models"
	"github.com/physiosync/physiosync-server/utils"
)

// StartReminderJob schedules the daily reminder email for next-day confirmed
// appointments. The job only reads the collections; it never mutates them.
// Without SMTP settings it stays off.
func StartReminderJob(svc *clinic.Service) *cron.Cron {
	if !utils.EmailConfigured() {
		log.Println("SMTP not configured, appointment reminders disabled")
		return nil
	}

	schedule := os.Getenv("REMINDER_CRON")
	if schedule == "" {
		schedule = "0 18 * * *" // every evening for the next day's sessions
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() { sendAppointmentReminders(svc) })
	if err != nil {
		log.Printf("Failed to schedule reminder job: %v", err)
		return nil
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
	return c
}

// sendAppointmentReminders emails every patient with a confirmed session
// tomorrow.
func sendAppointmentReminders(svc *clinic.Service) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	appointments := svc.ConfirmedOn(tomorrow)
	log.Printf("Found %d appointments for reminders on %s", len(appointments), tomorrow)

	for _, appointment := range appointments {
		patient, ok := svc.PatientByID(appointment.PatientID)
		if !ok || patient.Email == "" {
			continue
		}
		if err := sendReminderEmail(patient, appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %s: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %s to %s", appointment.ID, patient.Email)
	}
}

func sendReminderEmail(patient models.Patient, appointment models.Appointment) error {
	subject := "Reminder: Upcoming Physiotherapy Session"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your physiotherapy session tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Reason:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>PhysioSync</p>
	`, patient.Name, appointment.Date, appointment.Time, appointment.Reason)

	return utils.SendEmail(patient.Email, subject, body)
}
