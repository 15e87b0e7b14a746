package autotask

import (
	"context"
	"strings"

	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/plugin/storage"
	"github.com/cradlekit/cradle/store"
)

type sleepHandler struct {
	store Store
}

func (h *sleepHandler) Spec() *agent.KindSpec {
	return agent.LookupKind("sleep")
}

func (h *sleepHandler) Persist(ctx context.Context, action *agent.Action, userID int32, _ *storage.UploadResult) error {
	create := &store.Sleep{
		UserID:   userID,
		BabyName: action.String("babyName"),
		Time:     action.String("time"),
		Type:     sleepType(action.String("type")),
		Duration: action.String("duration"),
		Date:     action.String("date"),
	}
	if mood := action.String("mood"); mood != "" {
		create.Mood = &mood
	}
	if notes := action.String("notes"); notes != "" {
		create.Notes = &notes
	}

	_, err := h.store.CreateSleep(ctx, create)
	return err
}

// sleepType clamps the model-supplied sleep type onto the closed set.
func sleepType(t string) string {
	switch strings.ToLower(t) {
	case store.SleepNight:
		return store.SleepNight
	default:
		return store.SleepNap
	}
}
