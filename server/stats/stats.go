// Package stats computes simple per-user care statistics for the
// dashboard. It works off the regular list queries; personal data sets
// are small enough that counting in memory is fine.
package stats

import (
	"context"
	"time"

	"github.com/cradlekit/cradle/store"
)

// UserStats is a snapshot of one user's recent activity.
type UserStats struct {
	FeedingsToday    int64 `json:"feedingsToday"`
	FeedingsLastWeek int64 `json:"feedingsLastWeek"`
	SleepsLastWeek   int64 `json:"sleepsLastWeek"`
	GrowthEntries    int64 `json:"growthEntries"`

	UpcomingVaccinations int64 `json:"upcomingVaccinations"`
	LowEssentials        int64 `json:"lowEssentials"`
	Memories             int64 `json:"memories"`
	UnreadNotifications  int64 `json:"unreadNotifications"`

	LastUpdated time.Time `json:"lastUpdated"`
}

// Store is the slice of the data layer the collector reads from.
type Store interface {
	ListFeedings(ctx context.Context, find *store.FindFeeding) ([]*store.Feeding, error)
	ListSleeps(ctx context.Context, find *store.FindSleep) ([]*store.Sleep, error)
	ListGrowthEntries(ctx context.Context, find *store.FindGrowthEntry) ([]*store.GrowthEntry, error)
	ListVaccinations(ctx context.Context, find *store.FindVaccination) ([]*store.Vaccination, error)
	ListEssentials(ctx context.Context, find *store.FindEssential) ([]*store.Essential, error)
	ListMemories(ctx context.Context, find *store.FindMemory) ([]*store.Memory, error)
	ListNotifications(ctx context.Context, find *store.FindNotification) ([]*store.Notification, error)
}

// Collector computes user statistics on demand.
type Collector struct {
	store Store
}

// NewCollector creates a collector over the store.
func NewCollector(st Store) *Collector {
	return &Collector{store: st}
}

// Collect gathers the statistics for one user. Partial failures skip
// the affected counters rather than failing the whole snapshot.
func (c *Collector) Collect(ctx context.Context, userID int32) *UserStats {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)

	stats := &UserStats{LastUpdated: now}

	if feedings, err := c.store.ListFeedings(ctx, &store.FindFeeding{UserID: &userID}); err == nil {
		for _, feeding := range feedings {
			created := time.Unix(feeding.CreatedTs, 0)
			if !created.Before(dayStart) {
				stats.FeedingsToday++
			}
			if !created.Before(weekAgo) {
				stats.FeedingsLastWeek++
			}
		}
	}

	if sleeps, err := c.store.ListSleeps(ctx, &store.FindSleep{UserID: &userID}); err == nil {
		// Sleep dates are ISO strings, so lexical comparison matches
		// chronological order.
		cutoff := weekAgo.Format("2006-01-02")
		for _, sleep := range sleeps {
			if sleep.Date >= cutoff {
				stats.SleepsLastWeek++
			}
		}
	}

	if entries, err := c.store.ListGrowthEntries(ctx, &store.FindGrowthEntry{UserID: &userID}); err == nil {
		stats.GrowthEntries = int64(len(entries))
	}

	if vaccinations, err := c.store.ListVaccinations(ctx, &store.FindVaccination{UserID: &userID}); err == nil {
		for _, vaccination := range vaccinations {
			if vaccination.Status == store.VaccinationScheduled {
				stats.UpcomingVaccinations++
			}
		}
	}

	if essentials, err := c.store.ListEssentials(ctx, &store.FindEssential{UserID: &userID}); err == nil {
		for _, essential := range essentials {
			if essential.NeedsRestock() {
				stats.LowEssentials++
			}
		}
	}

	if memories, err := c.store.ListMemories(ctx, &store.FindMemory{UserID: &userID}); err == nil {
		stats.Memories = int64(len(memories))
	}

	unread := false
	if notifications, err := c.store.ListNotifications(ctx, &store.FindNotification{UserID: &userID, IsRead: &unread}); err == nil {
		stats.UnreadNotifications = int64(len(notifications))
	}

	return stats
}
