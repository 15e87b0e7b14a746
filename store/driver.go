package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)

	// User model related methods.
	CreateUser(ctx context.Context, create *User) (*User, error)
	ListUsers(ctx context.Context, find *FindUser) ([]*User, error)
	DeleteUser(ctx context.Context, delete *DeleteUser) error

	// Feeding model related methods.
	CreateFeeding(ctx context.Context, create *Feeding) (*Feeding, error)
	ListFeedings(ctx context.Context, find *FindFeeding) ([]*Feeding, error)
	UpdateFeeding(ctx context.Context, update *UpdateFeeding) error
	DeleteFeeding(ctx context.Context, delete *DeleteFeeding) error

	// Sleep model related methods.
	CreateSleep(ctx context.Context, create *Sleep) (*Sleep, error)
	ListSleeps(ctx context.Context, find *FindSleep) ([]*Sleep, error)
	DeleteSleep(ctx context.Context, delete *DeleteSleep) error

	// GrowthEntry model related methods.
	CreateGrowthEntry(ctx context.Context, create *GrowthEntry) (*GrowthEntry, error)
	ListGrowthEntries(ctx context.Context, find *FindGrowthEntry) ([]*GrowthEntry, error)
	DeleteGrowthEntry(ctx context.Context, delete *DeleteGrowthEntry) error

	// Vaccination model related methods.
	CreateVaccination(ctx context.Context, create *Vaccination) (*Vaccination, error)
	ListVaccinations(ctx context.Context, find *FindVaccination) ([]*Vaccination, error)
	UpdateVaccination(ctx context.Context, update *UpdateVaccination) error
	DeleteVaccination(ctx context.Context, delete *DeleteVaccination) error

	// Essential model related methods.
	CreateEssential(ctx context.Context, create *Essential) (*Essential, error)
	ListEssentials(ctx context.Context, find *FindEssential) ([]*Essential, error)
	UpdateEssential(ctx context.Context, update *UpdateEssential) error
	DeleteEssential(ctx context.Context, delete *DeleteEssential) error

	// Memory model related methods.
	CreateMemory(ctx context.Context, create *Memory) (*Memory, error)
	ListMemories(ctx context.Context, find *FindMemory) ([]*Memory, error)
	DeleteMemory(ctx context.Context, delete *DeleteMemory) error

	// Contact model related methods.
	CreateContact(ctx context.Context, create *Contact) (*Contact, error)
	ListContacts(ctx context.Context, find *FindContact) ([]*Contact, error)
	DeleteContact(ctx context.Context, delete *DeleteContact) error

	// Notification model related methods.
	CreateNotification(ctx context.Context, create *Notification) (*Notification, error)
	ListNotifications(ctx context.Context, find *FindNotification) ([]*Notification, error)
	UpdateNotification(ctx context.Context, update *UpdateNotification) error
	DeleteNotification(ctx context.Context, delete *DeleteNotification) error
}
