package models

import "time"

// SeedPatients returns the demo registry used when the patient slot is empty.
func SeedPatients() []Patient {
	return []Patient{
		{
			ID:             "p1",
			Name:           "Liam Johnson",
			Phone:          "+1 555-0101",
			Email:          "liam@example.com",
			MedicalHistory: []string{"Lower Back Pain", "L5 Dislocation"},
			LastVisit:      "2024-05-15",
		},
		{
			ID:             "p2",
			Name:           "Emma Watson",
			Phone:          "+1 555-0102",
			Email:          "emma@example.com",
			MedicalHistory: []string{"Rotator Cuff", "Shoulder Instability"},
			LastVisit:      "2024-05-12",
		},
	}
}

// SeedAppointments returns the demo schedule used when the appointment slot is
// empty.
func SeedAppointments() []Appointment {
	return []Appointment{
		{
			ID:           "1",
			PatientID:    "p1",
			PatientName:  "Liam Johnson",
			PatientPhone: "+1 555-0101",
			Date:         "2024-05-20",
			Time:         "09:00",
			Reason:       "Chronic lower back pain check-up.",
			Source:       SourceApp,
			Status:       StatusConfirmed,
			CreatedAt:    time.Now(),
		},
	}
}
