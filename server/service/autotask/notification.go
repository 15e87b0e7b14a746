package autotask

import (
	"context"

	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/plugin/storage"
	"github.com/cradlekit/cradle/store"
)

type notificationHandler struct {
	store Store
}

func (h *notificationHandler) Spec() *agent.KindSpec {
	return agent.LookupKind("notification")
}

func (h *notificationHandler) Persist(ctx context.Context, action *agent.Action, userID int32, _ *storage.UploadResult) error {
	create := &store.Notification{
		UserID:       userID,
		Type:         action.String("type"),
		Title:        action.String("title"),
		Message:      action.String("message"),
		Priority:     notificationPriority(action.String("priority")),
		ScheduledFor: action.String("scheduledFor"),
		Category:     notificationCategory(action.String("category")),
	}
	if actionURL := action.String("actionUrl"); actionURL != "" {
		create.ActionURL = &actionURL
	}
	if metadata := action.String("metadata"); metadata != "" {
		create.Metadata = &metadata
	}

	_, err := h.store.CreateNotification(ctx, create)
	return err
}

// notificationPriority clamps the model-supplied priority onto the closed set.
func notificationPriority(priority string) string {
	switch priority {
	case store.PriorityLow, store.PriorityMedium, store.PriorityHigh, store.PriorityUrgent:
		return priority
	default:
		return store.PriorityMedium
	}
}

// notificationCategory clamps the model-supplied category onto the closed set.
func notificationCategory(category string) string {
	switch category {
	case store.CategoryReminder, store.CategoryAlert, store.CategoryCelebration, store.CategoryInfo:
		return category
	default:
		return store.CategoryReminder
	}
}
