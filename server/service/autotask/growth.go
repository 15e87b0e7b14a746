package autotask

import (
	"context"

	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/plugin/storage"
	"github.com/cradlekit/cradle/store"
)

type growthHandler struct {
	store Store
}

func (h *growthHandler) Spec() *agent.KindSpec {
	return agent.LookupKind("growth")
}

func (h *growthHandler) Persist(ctx context.Context, action *agent.Action, userID int32, _ *storage.UploadResult) error {
	create := &store.GrowthEntry{
		UserID: userID,
		Date:   action.String("date"),
	}
	if height, ok := action.Float("height"); ok {
		create.Height = &height
	}
	if weight, ok := action.Float("weight"); ok {
		create.Weight = &weight
	}
	if head, ok := action.Float("head"); ok {
		create.Head = &head
	}
	if comment := action.String("comment"); comment != "" {
		create.Comment = &comment
	}

	_, err := h.store.CreateGrowthEntry(ctx, create)
	return err
}
