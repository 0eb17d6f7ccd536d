package models

// BootstrapAdminID identifies the built-in administrator account. It never
// appears in the user collection.
const BootstrapAdminID = "admin-id"

// UserRole is one of the four fixed account types.
type UserRole string

const (
	RoleDoctor  UserRole = "doctor"
	RoleStaff   UserRole = "staff"
	RolePatient UserRole = "patient"
	RoleAdmin   UserRole = "admin"
)

// View is a landing tab for a signed-in user.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewBooking   View = "booking"
	ViewAdmin     View = "admin"
)

type User struct {
	ID               string   `json:"id"`
	Email            string   `json:"email"`
	Name             string   `json:"name"`
	Role             UserRole `json:"role"`
	IsApproved       bool     `json:"isApproved"`
	PasswordHash     string   `json:"passwordHash,omitempty"`
	PatientProfileID string   `json:"patientProfileId,omitempty"`
}

// Sanitized returns a copy safe to send in API responses.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// InitialView is the tab a user lands on after sign-in.
func (u User) InitialView() View {
	switch u.Role {
	case RoleAdmin:
		return ViewAdmin
	case RolePatient:
		return ViewBooking
	default:
		return ViewDashboard
	}
}

// CanIntake reports whether the user may create appointments on behalf of patients.
func (u User) CanIntake() bool {
	return u.Role == RoleDoctor || u.Role == RoleStaff
}

// CanApprove reports whether the user may approve or reject account requests.
func (u User) CanApprove() bool {
	return u.Role == RoleAdmin
}

// CanSeePatientRegistry reports whether the user may list and export patients.
func (u User) CanSeePatientRegistry() bool {
	return u.Role != RolePatient
}

// CanSeeOwnAppointmentsOnly restricts the appointment listing to the user's
// own records.
func (u User) CanSeeOwnAppointmentsOnly() bool {
	return u.Role == RolePatient
}

// ValidRole reports whether r is one of the registerable roles. Admin accounts
// are never created through registration.
func ValidRole(r UserRole) bool {
	return r == RoleDoctor || r == RoleStaff || r == RolePatient
}
