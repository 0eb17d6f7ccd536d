package models

type Patient struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	MedicalHistory []string `json:"medicalHistory"`
	LastVisit      string   `json:"lastVisit,omitempty"`
}
