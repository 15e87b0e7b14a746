package store

import (
	"context"

	"github.com/lithammer/shortuuid/v4"
)

// Sleep type values.
const (
	SleepNap   = "nap"
	SleepNight = "night"
)

// Sleep is the object representing a sleep log entry.
type Sleep struct {
	ID        int32
	UID       string
	UserID    int32
	CreatedTs int64
	UpdatedTs int64
	BabyName  string
	Time      string
	Type      string // SleepNap or SleepNight
	Duration  string
	Date      string
	Mood      *string
	Notes     *string
}

// FindSleep is the find condition for sleep.
type FindSleep struct {
	ID     *int32
	UID    *string
	UserID *int32
	Date   *string

	Limit  *int
	Offset *int
}

// DeleteSleep is the delete request for sleep.
type DeleteSleep struct {
	ID     int32
	UserID int32
}

// CreateSleep creates a new sleep log entry.
func (s *Store) CreateSleep(ctx context.Context, create *Sleep) (*Sleep, error) {
	if create.UID == "" {
		create.UID = shortuuid.New()
	}
	return s.driver.CreateSleep(ctx, create)
}

// ListSleeps lists sleep log entries with filter, newest first.
func (s *Store) ListSleeps(ctx context.Context, find *FindSleep) ([]*Sleep, error) {
	return s.driver.ListSleeps(ctx, find)
}

// DeleteSleep deletes a sleep log entry.
func (s *Store) DeleteSleep(ctx context.Context, delete *DeleteSleep) error {
	return s.driver.DeleteSleep(ctx, delete)
}
