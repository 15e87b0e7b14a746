package autotask

import (
	"context"

	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/plugin/storage"
	"github.com/cradlekit/cradle/store"
)

type feedingHandler struct {
	store Store
}

func (h *feedingHandler) Spec() *agent.KindSpec {
	return agent.LookupKind("feeding")
}

func (h *feedingHandler) Persist(ctx context.Context, action *agent.Action, userID int32, _ *storage.UploadResult) error {
	create := &store.Feeding{
		UserID: userID,
		Time:   action.String("time"),
		Type:   action.String("type"),
		Amount: action.String("amount"),
	}
	if notes := action.String("notes"); notes != "" {
		create.Notes = &notes
	}

	_, err := h.store.CreateFeeding(ctx, create)
	return err
}
