package store

import (
	"context"

	"github.com/lithammer/shortuuid/v4"
)

// Memory is the object representing a saved baby memory with uploaded media.
type Memory struct {
	ID          int32
	UID         string
	UserID      int32
	CreatedTs   int64
	UpdatedTs   int64
	Title       string
	Description string
	Type        string // media type as reported by the uploader, e.g. "image"
	FileURL     string
	Tags        *string
	IsPublic    bool
}

// FindMemory is the find condition for memory.
type FindMemory struct {
	ID     *int32
	UID    *string
	UserID *int32

	Limit  *int
	Offset *int
}

// DeleteMemory is the delete request for memory.
type DeleteMemory struct {
	ID     int32
	UserID int32
}

// CreateMemory creates a new memory.
func (s *Store) CreateMemory(ctx context.Context, create *Memory) (*Memory, error) {
	if create.UID == "" {
		create.UID = shortuuid.New()
	}
	return s.driver.CreateMemory(ctx, create)
}

// ListMemories lists memories with filter, newest first.
func (s *Store) ListMemories(ctx context.Context, find *FindMemory) ([]*Memory, error) {
	return s.driver.ListMemories(ctx, find)
}

// DeleteMemory deletes a memory.
func (s *Store) DeleteMemory(ctx context.Context, delete *DeleteMemory) error {
	return s.driver.DeleteMemory(ctx, delete)
}
