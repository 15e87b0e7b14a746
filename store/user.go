package store

import (
	"context"

	"github.com/lithammer/shortuuid/v4"
)

// User is the object representing an account that owns baby records.
type User struct {
	ID        int32
	UID       string
	RowStatus RowStatus
	CreatedTs int64
	UpdatedTs int64
	Username  string
	Nickname  string
	Email     string
}

// FindUser is the find condition for user.
type FindUser struct {
	ID       *int32
	UID      *string
	Username *string
}

// DeleteUser is the delete request for user.
type DeleteUser struct {
	ID int32
}

// CreateUser creates a new user.
func (s *Store) CreateUser(ctx context.Context, create *User) (*User, error) {
	if create.UID == "" {
		create.UID = shortuuid.New()
	}
	return s.driver.CreateUser(ctx, create)
}

// ListUsers lists users with filter.
func (s *Store) ListUsers(ctx context.Context, find *FindUser) ([]*User, error) {
	return s.driver.ListUsers(ctx, find)
}

// GetUser gets a user by find condition.
func (s *Store) GetUser(ctx context.Context, find *FindUser) (*User, error) {
	list, err := s.driver.ListUsers(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// DeleteUser deletes a user.
func (s *Store) DeleteUser(ctx context.Context, delete *DeleteUser) error {
	return s.driver.DeleteUser(ctx, delete)
}
