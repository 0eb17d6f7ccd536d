package models

// SourceCount is one bucket of the dashboard's source breakdown.
type SourceCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DashboardStats is derived from the appointment collection on every read,
// never persisted or cached.
type DashboardStats struct {
	TotalAppointments  int           `json:"totalAppointments"`
	ConfirmedToday     int           `json:"confirmedToday"`
	PendingRequests    int           `json:"pendingRequests"`
	SourceDistribution []SourceCount `json:"sourceDistribution"`
}

// ParsedBooking is the draft record returned by the message-parse
// collaborator. It is staged for human review and only becomes an Appointment
// through the normal intake path.
type ParsedBooking struct {
	PatientName string  `json:"patientName"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Reason      string  `json:"reason"`
	Confidence  float64 `json:"confidence"`
}
