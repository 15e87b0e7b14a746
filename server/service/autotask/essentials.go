package autotask

import (
	"context"

	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/plugin/storage"
	"github.com/cradlekit/cradle/store"
)

type essentialsHandler struct {
	store Store
}

func (h *essentialsHandler) Spec() *agent.KindSpec {
	return agent.LookupKind("essentials")
}

func (h *essentialsHandler) Persist(ctx context.Context, action *agent.Action, userID int32, _ *storage.UploadResult) error {
	currentStock, _ := action.Int("currentStock")
	minThreshold, _ := action.Int("minThreshold")

	create := &store.Essential{
		UserID:       userID,
		Name:         action.String("name"),
		Category:     action.String("category"),
		CurrentStock: currentStock,
		MinThreshold: minThreshold,
	}
	if unit := action.String("unit"); unit != "" {
		create.Unit = &unit
	}
	if notes := action.String("notes"); notes != "" {
		create.Notes = &notes
	}

	_, err := h.store.CreateEssential(ctx, create)
	return err
}
