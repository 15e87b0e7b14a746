package v1

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/cradlekit/cradle/internal/profile"
	"github.com/cradlekit/cradle/store"
)

// memDriver is an in-memory store.Driver for handler tests.
type memDriver struct {
	mu     sync.Mutex
	nextID int32

	users         []*store.User
	feedings      []*store.Feeding
	sleeps        []*store.Sleep
	growthEntries []*store.GrowthEntry
	vaccinations  []*store.Vaccination
	essentials    []*store.Essential
	memories      []*store.Memory
	contacts      []*store.Contact
	notifications []*store.Notification
}

func newMemDriver() *memDriver {
	return &memDriver{}
}

func (d *memDriver) id() int32 {
	d.nextID++
	return d.nextID
}

func (*memDriver) GetDB() *sql.DB { return nil }
func (*memDriver) Close() error   { return nil }

func (*memDriver) IsInitialized(context.Context) (bool, error) { return true, nil }

func (d *memDriver) CreateUser(_ context.Context, create *store.User) (*store.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	create.ID = d.id()
	create.CreatedTs = time.Now().Unix()
	create.UpdatedTs = create.CreatedTs
	d.users = append(d.users, create)
	return create, nil
}

func (d *memDriver) ListUsers(_ context.Context, find *store.FindUser) ([]*store.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := []*store.User{}
	for _, user := range d.users {
		if find.ID != nil && user.ID != *find.ID {
			continue
		}
		if find.Username != nil && user.Username != *find.Username {
			continue
		}
		list = append(list, user)
	}
	return list, nil
}

func (d *memDriver) DeleteUser(_ context.Context, delete *store.DeleteUser) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, user := range d.users {
		if user.ID == delete.ID {
			d.users = append(d.users[:i], d.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (d *memDriver) CreateFeeding(_ context.Context, create *store.Feeding) (*store.Feeding, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	create.ID = d.id()
	create.CreatedTs = time.Now().Unix()
	create.UpdatedTs = create.CreatedTs
	// Newest first, matching the SQL ordering.
	d.feedings = append([]*store.Feeding{create}, d.feedings...)
	return create, nil
}

func (d *memDriver) ListFeedings(_ context.Context, find *store.FindFeeding) ([]*store.Feeding, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := []*store.Feeding{}
	for _, feeding := range d.feedings {
		if find.ID != nil && feeding.ID != *find.ID {
			continue
		}
		if find.UserID != nil && feeding.UserID != *find.UserID {
			continue
		}
		list = append(list, feeding)
	}
	return list, nil
}

func (d *memDriver) UpdateFeeding(_ context.Context, update *store.UpdateFeeding) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, feeding := range d.feedings {
		if feeding.ID != update.ID || feeding.UserID != update.UserID {
			continue
		}
		if update.Time != nil {
			feeding.Time = *update.Time
		}
		if update.Type != nil {
			feeding.Type = *update.Type
		}
		if update.Amount != nil {
			feeding.Amount = *update.Amount
		}
		if update.Notes != nil {
			feeding.Notes = update.Notes
		}
		feeding.UpdatedTs = time.Now().Unix()
	}
	return nil
}

func (d *memDriver) DeleteFeeding(_ context.Context, delete *store.DeleteFeeding) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, feeding := range d.feedings {
		if feeding.ID == delete.ID && feeding.UserID == delete.UserID {
			d.feedings = append(d.feedings[:i], d.feedings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (d *memDriver) CreateSleep(_ context.Context, create *store.Sleep) (*store.Sleep, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	create.ID = d.id()
	d.sleeps = append([]*store.Sleep{create}, d.sleeps...)
	return create, nil
}

func (d *memDriver) ListSleeps(_ context.Context, find *store.FindSleep) ([]*store.Sleep, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := []*store.Sleep{}
	for _, sleep := range d.sleeps {
		if find.UserID != nil && sleep.UserID != *find.UserID {
			continue
		}
		if find.Date != nil && sleep.Date != *find.Date {
			continue
		}
		list = append(list, sleep)
	}
	return list, nil
}

func (d *memDriver) DeleteSleep(_ context.Context, delete *store.DeleteSleep) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, sleep := range d.sleeps {
		if sleep.ID == delete.ID && sleep.UserID == delete.UserID {
			d.sleeps = append(d.sleeps[:i], d.sleeps[i+1:]...)
			return nil
		}
	}
	return nil
}

func (d *memDriver) CreateGrowthEntry(_ context.Context, create *store.GrowthEntry) (*store.GrowthEntry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	create.ID = d.id()
	d.growthEntries = append([]*store.GrowthEntry{create}, d.growthEntries...)
	return create, nil
}

func (d *memDriver) ListGrowthEntries(_ context.Context, find *store.FindGrowthEntry) ([]*store.GrowthEntry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := []*store.GrowthEntry{}
	for _, entry := range d.growthEntries {
		if find.UserID != nil && entry.UserID != *find.UserID {
			continue
		}
		list = append(list, entry)
	}
	return list, nil
}

func (d *memDriver) DeleteGrowthEntry(_ context.Context, delete *store.DeleteGrowthEntry) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, entry := range d.growthEntries {
		if entry.ID == delete.ID && entry.UserID == delete.UserID {
			d.growthEntries = append(d.growthEntries[:i], d.growthEntries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (d *memDriver) CreateVaccination(_ context.Context, create *store.Vaccination) (*store.Vaccination, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	create.ID = d.id()
	d.vaccinations = append([]*store.Vaccination{create}, d.vaccinations...)
	return create, nil
}

func (d *memDriver) ListVaccinations(_ context.Context, find *store.FindVaccination) ([]*store.Vaccination, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := []*store.Vaccination{}
	for _, vaccination := range d.vaccinations {
		if find.ID != nil && vaccination.ID != *find.ID {
			continue
		}
		if find.UserID != nil && vaccination.UserID != *find.UserID {
			continue
		}
		if find.Status != nil && vaccination.Status != *find.Status {
			continue
		}
		list = append(list, vaccination)
	}
	return list, nil
}

func (d *memDriver) UpdateVaccination(_ context.Context, update *store.UpdateVaccination) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, vaccination := range d.vaccinations {
		if vaccination.ID != update.ID || vaccination.UserID != update.UserID {
			continue
		}
		if update.Status != nil {
			vaccination.Status = *update.Status
		}
		if update.CompleteDate != nil {
			vaccination.CompleteDate = update.CompleteDate
		}
	}
	return nil
}

func (d *memDriver) DeleteVaccination(_ context.Context, delete *store.DeleteVaccination) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, vaccination := range d.vaccinations {
		if vaccination.ID == delete.ID && vaccination.UserID == delete.UserID {
			d.vaccinations = append(d.vaccinations[:i], d.vaccinations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (d *memDriver) CreateEssential(_ context.Context, create *store.Essential) (*store.Essential, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	create.ID = d.id()
	d.essentials = append([]*store.Essential{create}, d.essentials...)
	return create, nil
}

func (d *memDriver) ListEssentials(_ context.Context, find *store.FindEssential) ([]*store.Essential, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := []*store.Essential{}
	for _, essential := range d.essentials {
		if find.ID != nil && essential.ID != *find.ID {
			continue
		}
		if find.UserID != nil && essential.UserID != *find.UserID {
			continue
		}
		list = append(list, essential)
	}
	return list, nil
}

func (d *memDriver) UpdateEssential(_ context.Context, update *store.UpdateEssential) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, essential := range d.essentials {
		if essential.ID != update.ID || essential.UserID != update.UserID {
			continue
		}
		if update.CurrentStock != nil {
			essential.CurrentStock = *update.CurrentStock
		}
		if update.MinThreshold != nil {
			essential.MinThreshold = *update.MinThreshold
		}
	}
	return nil
}

func (d *memDriver) DeleteEssential(_ context.Context, delete *store.DeleteEssential) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, essential := range d.essentials {
		if essential.ID == delete.ID && essential.UserID == delete.UserID {
			d.essentials = append(d.essentials[:i], d.essentials[i+1:]...)
			return nil
		}
	}
	return nil
}

func (d *memDriver) CreateMemory(_ context.Context, create *store.Memory) (*store.Memory, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	create.ID = d.id()
	d.memories = append([]*store.Memory{create}, d.memories...)
	return create, nil
}

func (d *memDriver) ListMemories(_ context.Context, find *store.FindMemory) ([]*store.Memory, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := []*store.Memory{}
	for _, memory := range d.memories {
		if find.UserID != nil && memory.UserID != *find.UserID {
			continue
		}
		list = append(list, memory)
	}
	return list, nil
}

func (d *memDriver) DeleteMemory(_ context.Context, delete *store.DeleteMemory) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, memory := range d.memories {
		if memory.ID == delete.ID && memory.UserID == delete.UserID {
			d.memories = append(d.memories[:i], d.memories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (d *memDriver) CreateContact(_ context.Context, create *store.Contact) (*store.Contact, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	create.ID = d.id()
	d.contacts = append([]*store.Contact{create}, d.contacts...)
	return create, nil
}

func (d *memDriver) ListContacts(_ context.Context, find *store.FindContact) ([]*store.Contact, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := []*store.Contact{}
	for _, contact := range d.contacts {
		if find.UserID != nil && contact.UserID != *find.UserID {
			continue
		}
		list = append(list, contact)
	}
	return list, nil
}

func (d *memDriver) DeleteContact(_ context.Context, delete *store.DeleteContact) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, contact := range d.contacts {
		if contact.ID == delete.ID && contact.UserID == delete.UserID {
			d.contacts = append(d.contacts[:i], d.contacts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (d *memDriver) CreateNotification(_ context.Context, create *store.Notification) (*store.Notification, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	create.ID = d.id()
	d.notifications = append([]*store.Notification{create}, d.notifications...)
	return create, nil
}

func (d *memDriver) ListNotifications(_ context.Context, find *store.FindNotification) ([]*store.Notification, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := []*store.Notification{}
	for _, notification := range d.notifications {
		if find.ID != nil && notification.ID != *find.ID {
			continue
		}
		if find.UserID != nil && notification.UserID != *find.UserID {
			continue
		}
		if find.Type != nil && notification.Type != *find.Type {
			continue
		}
		if find.IsRead != nil && notification.IsRead != *find.IsRead {
			continue
		}
		list = append(list, notification)
	}
	return list, nil
}

func (d *memDriver) UpdateNotification(_ context.Context, update *store.UpdateNotification) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, notification := range d.notifications {
		if notification.ID != update.ID || notification.UserID != update.UserID {
			continue
		}
		if update.IsRead != nil {
			notification.IsRead = *update.IsRead
		}
		if update.IsSent != nil {
			notification.IsSent = *update.IsSent
		}
	}
	return nil
}

func (d *memDriver) DeleteNotification(_ context.Context, delete *store.DeleteNotification) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, notification := range d.notifications {
		if notification.ID == delete.ID && notification.UserID == delete.UserID {
			d.notifications = append(d.notifications[:i], d.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ store.Driver = (*memDriver)(nil)

func testProfile(data string) *profile.Profile {
	return &profile.Profile{
		Mode:   "dev",
		Driver: "sqlite",
		Data:   data,
	}
}
