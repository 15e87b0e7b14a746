package store

import (
	"context"

	"github.com/lithammer/shortuuid/v4"
)

// Notification type values.
const (
	NotificationFeedingReminder      = "feeding_reminder"
	NotificationSleepReminder        = "sleep_reminder"
	NotificationVaccineReminder      = "vaccine_reminder"
	NotificationAppointmentReminder  = "appointment_reminder"
	NotificationMilestoneCelebration = "milestone_celebration"
	NotificationWeatherAlert         = "weather_alert"
	NotificationEssentialsAlert      = "essentials_alert"
	NotificationGeneral              = "general"
)

// Notification priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Notification category values.
const (
	CategoryReminder    = "reminder"
	CategoryAlert       = "alert"
	CategoryCelebration = "celebration"
	CategoryInfo        = "info"
)

// Notification is the object representing a scheduled or delivered notification.
// Confirmation notifications emitted after successful agent actions are
// ordinary rows with type "general" and priority "low".
type Notification struct {
	ID           int32
	UID          string
	UserID       int32
	CreatedTs    int64
	UpdatedTs    int64
	Type         string
	Title        string
	Message      string
	Priority     string
	ScheduledFor string
	IsRead       bool
	IsSent       bool
	ActionURL    *string
	Metadata     *string // JSON blob
	Category     string
}

// FindNotification is the find condition for notification.
type FindNotification struct {
	ID     *int32
	UID    *string
	UserID *int32
	Type   *string
	IsRead *bool

	Limit  *int
	Offset *int
}

// UpdateNotification is the update request for notification.
type UpdateNotification struct {
	ID     int32
	UserID int32
	IsRead *bool
	IsSent *bool
}

// DeleteNotification is the delete request for notification.
type DeleteNotification struct {
	ID     int32
	UserID int32
}

// CreateNotification creates a new notification.
func (s *Store) CreateNotification(ctx context.Context, create *Notification) (*Notification, error) {
	if create.UID == "" {
		create.UID = shortuuid.New()
	}
	return s.driver.CreateNotification(ctx, create)
}

// ListNotifications lists notifications with filter, newest first.
func (s *Store) ListNotifications(ctx context.Context, find *FindNotification) ([]*Notification, error) {
	return s.driver.ListNotifications(ctx, find)
}

// UpdateNotification updates a notification.
func (s *Store) UpdateNotification(ctx context.Context, update *UpdateNotification) error {
	return s.driver.UpdateNotification(ctx, update)
}

// DeleteNotification deletes a notification.
func (s *Store) DeleteNotification(ctx context.Context, delete *DeleteNotification) error {
	return s.driver.DeleteNotification(ctx, delete)
}
