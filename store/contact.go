package store

import (
	"context"

	"github.com/lithammer/shortuuid/v4"
)

// Contact type values.
const (
	ContactPhone   = "phone"
	ContactWebsite = "website"
)

// Contact is the object representing a doctor or clinic contact.
type Contact struct {
	ID          int32
	UID         string
	UserID      int32
	CreatedTs   int64
	UpdatedTs   int64
	Name        string
	Category    string
	Type        string // ContactPhone or ContactWebsite
	Value       string
	Description *string
}

// FindContact is the find condition for contact.
type FindContact struct {
	ID     *int32
	UID    *string
	UserID *int32

	Limit  *int
	Offset *int
}

// DeleteContact is the delete request for contact.
type DeleteContact struct {
	ID     int32
	UserID int32
}

// CreateContact creates a new contact.
func (s *Store) CreateContact(ctx context.Context, create *Contact) (*Contact, error) {
	if create.UID == "" {
		create.UID = shortuuid.New()
	}
	return s.driver.CreateContact(ctx, create)
}

// ListContacts lists contacts with filter.
func (s *Store) ListContacts(ctx context.Context, find *FindContact) ([]*Contact, error) {
	return s.driver.ListContacts(ctx, find)
}

// DeleteContact deletes a contact.
func (s *Store) DeleteContact(ctx context.Context, delete *DeleteContact) error {
	return s.driver.DeleteContact(ctx, delete)
}
