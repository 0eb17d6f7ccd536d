// Package store is the persistence shim between the in-memory collections and
// redis. Each collection lives in one named slot holding a JSON-encoded array;
// saves replace the whole slot, there are no transactions and no versioning of
// the stored shape.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/physiosync/physiosync-server/models"
)

const (
	SlotAppointments = "physiosync:appointments"
	SlotPatients     = "physiosync:patients"
	SlotUsers        = "physiosync:users"
)

// ErrCorrupt marks a slot whose payload exists but does not decode. Loads
// still hand back the fallback so the caller can continue; whether to warn the
// user is the caller's call.
var ErrCorrupt = errors.New("store: corrupt slot payload")

type Store struct {
	redis *redis.Client
}

func New(client *redis.Client) *Store {
	return &Store{redis: client}
}

// load reads a slot into dst. Absent slots report found=false and leave dst
// untouched; an undecodable payload does the same but returns ErrCorrupt
// wrapped, rather than swallowing the decode failure.
func (s *Store) load(ctx context.Context, slot string, dst any) (found bool, err error) {
	data, err := s.redis.Get(ctx, slot).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: get %s: %w", slot, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupt, slot, err)
	}
	return true, nil
}

// save serializes the collection and overwrites the slot unconditionally.
func (s *Store) save(ctx context.Context, slot string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", slot, err)
	}
	if err := s.redis.Set(ctx, slot, data, 0).Err(); err != nil {
		return fmt.Errorf("store: set %s: %w", slot, err)
	}
	return nil
}

func (s *Store) LoadAppointments(ctx context.Context, fallback []models.Appointment) ([]models.Appointment, error) {
	var out []models.Appointment
	found, err := s.load(ctx, SlotAppointments, &out)
	if !found {
		return fallback, err
	}
	return out, err
}

func (s *Store) LoadPatients(ctx context.Context, fallback []models.Patient) ([]models.Patient, error) {
	var out []models.Patient
	found, err := s.load(ctx, SlotPatients, &out)
	if !found {
		return fallback, err
	}
	return out, err
}

func (s *Store) LoadUsers(ctx context.Context, fallback []models.User) ([]models.User, error) {
	var out []models.User
	found, err := s.load(ctx, SlotUsers, &out)
	if !found {
		return fallback, err
	}
	return out, err
}

func (s *Store) SaveAppointments(ctx context.Context, appointments []models.Appointment) error {
	return s.save(ctx, SlotAppointments, appointments)
}

func (s *Store) SavePatients(ctx context.Context, patients []models.Patient) error {
	return s.save(ctx, SlotPatients, patients)
}

func (s *Store) SaveUsers(ctx context.Context, users []models.User) error {
	return s.save(ctx, SlotUsers, users)
}

// ResetAll clears the three slots. The owning service is expected to reload
// itself afterwards.
func (s *Store) ResetAll(ctx context.Context) error {
	if err := s.redis.Del(ctx, SlotAppointments, SlotPatients, SlotUsers).Err(); err != nil {
		return fmt.Errorf("store: reset: %w", err)
	}
	return nil
}
