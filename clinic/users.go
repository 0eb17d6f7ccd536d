package clinic

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/physiosync/physiosync-server/models"
)

// RegisterUser appends a new account. Patients are approved on the spot and
// get a fresh patient profile bound via PatientProfileID; doctor and staff
// accounts stay unapproved until an admin acts.
func (s *Service) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return models.User{}, ErrDuplicateEmail
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.IsApproved = user.Role == models.RolePatient || user.Role == models.RoleAdmin

	if user.Role == models.RolePatient {
		profile := models.Patient{
			ID:             "p-" + uuid.NewString(),
			Name:           user.Name,
			Phone:          "",
			Email:          user.Email,
			MedicalHistory: []string{"Pending Intake"},
		}
		user.PatientProfileID = profile.ID
		s.patients = append(s.patients, profile)
		if err := s.store.SavePatients(ctx, s.patients); err != nil {
			return models.User{}, err
		}
	}

	s.users = append(s.users, user)
	if err := s.store.SaveUsers(ctx, s.users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ApproveUser flips IsApproved on the matching user. Unknown IDs are a no-op.
func (s *Service) ApproveUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == userID {
			s.users[i].IsApproved = true
			return s.store.SaveUsers(ctx, s.users)
		}
	}
	return nil
}

// RejectUser removes the matching user entirely. Unknown IDs are a no-op.
// Only unapproved accounts are ever offered for rejection.
func (s *Service) RejectUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == userID {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return s.store.SaveUsers(ctx, s.users)
		}
	}
	return nil
}

// FindUserByEmail matches case-insensitively, first match wins.
func (s *Service) FindUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Service) FindUserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// PendingUsers lists the accounts awaiting admin review: unapproved
// professional accounts only, patients never queue.
func (s *Service) PendingUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pending []models.User
	for _, u := range s.users {
		if !u.IsApproved && u.Role != models.RolePatient {
			pending = append(pending, u.Sanitized())
		}
	}
	return pending
}
