package store

import (
	"context"

	"github.com/lithammer/shortuuid/v4"
)

// Vaccination status values.
const (
	VaccinationScheduled = "scheduled"
	VaccinationCompleted = "completed"
	VaccinationOverdue   = "overdue"
)

// Vaccination is the object representing a vaccination record.
type Vaccination struct {
	ID            int32
	UID           string
	UserID        int32
	CreatedTs     int64
	UpdatedTs     int64
	Name          string
	ScheduledDate string
	Status        string
	Description   *string
	CompleteDate  *string
	Notes         *string
	Document      *string
	AgeMonths     *int32
	IsStandard    bool
}

// FindVaccination is the find condition for vaccination.
type FindVaccination struct {
	ID     *int32
	UID    *string
	UserID *int32
	Status *string

	Limit  *int
	Offset *int
}

// UpdateVaccination is the update request for vaccination.
type UpdateVaccination struct {
	ID            int32
	UserID        int32
	Name          *string
	ScheduledDate *string
	Status        *string
	Description   *string
	CompleteDate  *string
	Notes         *string
}

// DeleteVaccination is the delete request for vaccination.
type DeleteVaccination struct {
	ID     int32
	UserID int32
}

// CreateVaccination creates a new vaccination record.
func (s *Store) CreateVaccination(ctx context.Context, create *Vaccination) (*Vaccination, error) {
	if create.UID == "" {
		create.UID = shortuuid.New()
	}
	return s.driver.CreateVaccination(ctx, create)
}

// ListVaccinations lists vaccination records with filter.
func (s *Store) ListVaccinations(ctx context.Context, find *FindVaccination) ([]*Vaccination, error) {
	return s.driver.ListVaccinations(ctx, find)
}

// GetVaccination gets a vaccination record by find condition.
func (s *Store) GetVaccination(ctx context.Context, find *FindVaccination) (*Vaccination, error) {
	list, err := s.driver.ListVaccinations(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// UpdateVaccination updates a vaccination record.
func (s *Store) UpdateVaccination(ctx context.Context, update *UpdateVaccination) error {
	return s.driver.UpdateVaccination(ctx, update)
}

// DeleteVaccination deletes a vaccination record.
func (s *Store) DeleteVaccination(ctx context.Context, delete *DeleteVaccination) error {
	return s.driver.DeleteVaccination(ctx, delete)
}
