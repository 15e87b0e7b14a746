package store

import (
	"context"

	"github.com/lithammer/shortuuid/v4"
)

// Essential is the object representing a baby-care inventory item.
type Essential struct {
	ID           int32
	UID          string
	UserID       int32
	CreatedTs    int64
	UpdatedTs    int64
	Name         string
	Category     string
	CurrentStock int32
	MinThreshold int32
	Unit         *string
	Notes        *string
}

// NeedsRestock reports whether the current stock dropped to the alert threshold.
func (e *Essential) NeedsRestock() bool {
	return e.CurrentStock <= e.MinThreshold
}

// FindEssential is the find condition for essential.
type FindEssential struct {
	ID     *int32
	UID    *string
	UserID *int32

	Limit  *int
	Offset *int
}

// UpdateEssential is the update request for essential.
type UpdateEssential struct {
	ID           int32
	UserID       int32
	Name         *string
	Category     *string
	CurrentStock *int32
	MinThreshold *int32
	Unit         *string
	Notes        *string
}

// DeleteEssential is the delete request for essential.
type DeleteEssential struct {
	ID     int32
	UserID int32
}

// CreateEssential creates a new inventory item.
func (s *Store) CreateEssential(ctx context.Context, create *Essential) (*Essential, error) {
	if create.UID == "" {
		create.UID = shortuuid.New()
	}
	return s.driver.CreateEssential(ctx, create)
}

// ListEssentials lists inventory items with filter.
func (s *Store) ListEssentials(ctx context.Context, find *FindEssential) ([]*Essential, error) {
	return s.driver.ListEssentials(ctx, find)
}

// GetEssential gets an inventory item by find condition.
func (s *Store) GetEssential(ctx context.Context, find *FindEssential) (*Essential, error) {
	list, err := s.driver.ListEssentials(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// UpdateEssential updates an inventory item.
func (s *Store) UpdateEssential(ctx context.Context, update *UpdateEssential) error {
	return s.driver.UpdateEssential(ctx, update)
}

// DeleteEssential deletes an inventory item.
func (s *Store) DeleteEssential(ctx context.Context, delete *DeleteEssential) error {
	return s.driver.DeleteEssential(ctx, delete)
}
