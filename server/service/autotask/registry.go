package autotask

import (
	"context"

	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/plugin/storage"
	"github.com/cradlekit/cradle/store"
)

// Store is the slice of the data layer the dispatch pipeline writes to.
type Store interface {
	CreateFeeding(ctx context.Context, create *store.Feeding) (*store.Feeding, error)
	CreateSleep(ctx context.Context, create *store.Sleep) (*store.Sleep, error)
	CreateGrowthEntry(ctx context.Context, create *store.GrowthEntry) (*store.GrowthEntry, error)
	CreateVaccination(ctx context.Context, create *store.Vaccination) (*store.Vaccination, error)
	CreateContact(ctx context.Context, create *store.Contact) (*store.Contact, error)
	CreateEssential(ctx context.Context, create *store.Essential) (*store.Essential, error)
	CreateMemory(ctx context.Context, create *store.Memory) (*store.Memory, error)
	CreateNotification(ctx context.Context, create *store.Notification) (*store.Notification, error)
}

// Handler persists one action kind. Validation and the confirmation
// label come from the kind's schema; the handler only maps descriptor
// values onto a record scoped to the actor.
type Handler interface {
	Spec() *agent.KindSpec
	Persist(ctx context.Context, action *agent.Action, userID int32, upload *storage.UploadResult) error
}

// newRegistry wires one handler per recognized kind. Adding a kind
// means adding a schema entry and one registry line.
func newRegistry(s Store) map[string]Handler {
	handlers := []Handler{
		&growthHandler{store: s},
		&feedingHandler{store: s},
		&sleepHandler{store: s},
		&vaccinationHandler{store: s},
		&contactHandler{store: s},
		&essentialsHandler{store: s},
		&memoryHandler{store: s},
		&notificationHandler{store: s},
	}

	registry := make(map[string]Handler, len(handlers))
	for _, h := range handlers {
		registry[h.Spec().Kind] = h
	}
	return registry
}
