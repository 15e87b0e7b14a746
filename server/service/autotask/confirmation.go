package autotask

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/store"
)

// emitConfirmation persists a low-priority notification announcing a
// successful write. It is fire and forget: a missing time, date or
// actionName skips it silently, and any persistence error is swallowed
// and logged. It must never turn a successful domain write into a
// failed result.
func emitConfirmation(ctx context.Context, s Store, action *agent.Action, userID int32, label string) {
	if action.Time == "" || action.Date == "" || action.ActionName == "" {
		slog.Debug("confirmation skipped, missing time/date/actionName",
			"action", action.ActionName, "user_id", userID)
		return
	}

	actionURL := label
	confirmation := &store.Notification{
		UserID:       userID,
		Type:         store.NotificationGeneral,
		Title:        fmt.Sprintf("%s Updated Successfully!", label),
		Message:      fmt.Sprintf("%s updated on %s", label, action.Time),
		Priority:     store.PriorityLow,
		ScheduledFor: action.Date,
		Category:     store.CategoryInfo,
		ActionURL:    &actionURL,
	}

	if _, err := s.CreateNotification(ctx, confirmation); err != nil {
		slog.Warn("failed to save confirmation notification",
			"action", action.ActionName, "user_id", userID, "error", err)
	}
}
