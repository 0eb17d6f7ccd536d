// Package clinic owns the in-memory collections and every mutation on them.
// The persistence shim mirrors each touched collection after a successful
// mutation; the mirror is not the owner, so a crash between mutate and persist
// loses that update.
package clinic

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/physiosync/physiosync-server/models"
	"github.com/physiosync/physiosync-server/store"
)

var (
	ErrNotFound          = errors.New("clinic: record not found")
	ErrDuplicateEmail    = errors.New("clinic: a user with this email already exists")
	ErrSlotTaken         = errors.New("clinic: slot is already booked")
	ErrInvalidSlot       = errors.New("clinic: not a bookable time slot")
	ErrInvalidSource     = errors.New("clinic: unknown appointment source")
	ErrInvalidTransition = errors.New("clinic: illegal status transition")
	ErrNoPatientProfile  = errors.New("clinic: user has no patient profile")
)

type Service struct {
	mu    sync.RWMutex
	store *store.Store

	appointments []models.Appointment
	patients     []models.Patient
	users        []models.User
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Load seeds the collections from the store. Empty slots fall back to the
// demo seed data (users start empty). A corrupt slot is logged and replaced by
// its fallback; any other storage failure aborts the load.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointments, err := s.store.LoadAppointments(ctx, models.SeedAppointments())
	if err := checkLoad(err, store.SlotAppointments); err != nil {
		return err
	}
	patients, err := s.store.LoadPatients(ctx, models.SeedPatients())
	if err := checkLoad(err, store.SlotPatients); err != nil {
		return err
	}
	users, err := s.store.LoadUsers(ctx, nil)
	if err := checkLoad(err, store.SlotUsers); err != nil {
		return err
	}

	s.appointments = appointments
	s.patients = patients
	s.users = users
	return nil
}

func checkLoad(err error, slot string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrCorrupt) {
		log.Printf("Warning: %s is corrupt, continuing with fallback data: %v", slot, err)
		return nil
	}
	return err
}

// Reset clears the durable slots and restores the seed state, mirroring it
// back immediately.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ResetAll(ctx); err != nil {
		return err
	}

	s.appointments = models.SeedAppointments()
	s.patients = models.SeedPatients()
	s.users = nil

	if err := s.store.SaveAppointments(ctx, s.appointments); err != nil {
		return err
	}
	if err := s.store.SavePatients(ctx, s.patients); err != nil {
		return err
	}
	return s.store.SaveUsers(ctx, s.users)
}
