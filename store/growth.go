package store

import (
	"context"

	"github.com/lithammer/shortuuid/v4"
)

// GrowthEntry is the object representing a growth measurement.
// At least one of Height, Weight or Head is set.
type GrowthEntry struct {
	ID        int32
	UID       string
	UserID    int32
	CreatedTs int64
	UpdatedTs int64
	Date      string
	Height    *float64 // cm
	Weight    *float64 // kg
	Head      *float64 // cm
	Comment   *string
}

// FindGrowthEntry is the find condition for growth entry.
type FindGrowthEntry struct {
	ID     *int32
	UID    *string
	UserID *int32

	Limit  *int
	Offset *int
}

// DeleteGrowthEntry is the delete request for growth entry.
type DeleteGrowthEntry struct {
	ID     int32
	UserID int32
}

// CreateGrowthEntry creates a new growth measurement.
func (s *Store) CreateGrowthEntry(ctx context.Context, create *GrowthEntry) (*GrowthEntry, error) {
	if create.UID == "" {
		create.UID = shortuuid.New()
	}
	return s.driver.CreateGrowthEntry(ctx, create)
}

// ListGrowthEntries lists growth measurements with filter, newest first.
func (s *Store) ListGrowthEntries(ctx context.Context, find *FindGrowthEntry) ([]*GrowthEntry, error) {
	return s.driver.ListGrowthEntries(ctx, find)
}

// DeleteGrowthEntry deletes a growth measurement.
func (s *Store) DeleteGrowthEntry(ctx context.Context, delete *DeleteGrowthEntry) error {
	return s.driver.DeleteGrowthEntry(ctx, delete)
}
