package store

import (
	"context"

	"github.com/lithammer/shortuuid/v4"
)

// Feeding is the object representing a single feeding record.
// Time and amount are stored exactly as entered ("10:00 AM", "4oz") since
// they originate from free-form user input.
type Feeding struct {
	ID        int32
	UID       string
	UserID    int32
	CreatedTs int64
	UpdatedTs int64
	Time      string
	Type      string
	Amount    string
	Notes     *string
}

// FindFeeding is the find condition for feeding.
type FindFeeding struct {
	ID     *int32
	UID    *string
	UserID *int32

	Limit  *int
	Offset *int
}

// UpdateFeeding is the update request for feeding.
type UpdateFeeding struct {
	ID     int32
	UserID int32
	Time   *string
	Type   *string
	Amount *string
	Notes  *string
}

// DeleteFeeding is the delete request for feeding.
type DeleteFeeding struct {
	ID     int32
	UserID int32
}

// CreateFeeding creates a new feeding record.
func (s *Store) CreateFeeding(ctx context.Context, create *Feeding) (*Feeding, error) {
	if create.UID == "" {
		create.UID = shortuuid.New()
	}
	return s.driver.CreateFeeding(ctx, create)
}

// ListFeedings lists feeding records with filter, newest first.
func (s *Store) ListFeedings(ctx context.Context, find *FindFeeding) ([]*Feeding, error) {
	return s.driver.ListFeedings(ctx, find)
}

// GetFeeding gets a feeding record by find condition.
func (s *Store) GetFeeding(ctx context.Context, find *FindFeeding) (*Feeding, error) {
	list, err := s.driver.ListFeedings(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// UpdateFeeding updates a feeding record.
func (s *Store) UpdateFeeding(ctx context.Context, update *UpdateFeeding) error {
	return s.driver.UpdateFeeding(ctx, update)
}

// DeleteFeeding deletes a feeding record.
func (s *Store) DeleteFeeding(ctx context.Context, delete *DeleteFeeding) error {
	return s.driver.DeleteFeeding(ctx, delete)
}
