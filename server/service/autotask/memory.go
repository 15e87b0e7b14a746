package autotask

import (
	"context"

	"github.com/pkg/errors"

	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/plugin/storage"
	"github.com/cradlekit/cradle/store"
)

type memoryHandler struct {
	store Store
}

func (h *memoryHandler) Spec() *agent.KindSpec {
	return agent.LookupKind("memory")
}

func (h *memoryHandler) Persist(ctx context.Context, action *agent.Action, userID int32, upload *storage.UploadResult) error {
	// The coordinator guarantees an upload for memory actions.
	if upload == nil {
		return errors.New("missing upload result")
	}

	create := &store.Memory{
		UserID:      userID,
		Title:       action.String("title"),
		Description: action.String("description"),
		Type:        upload.Type,
		FileURL:     upload.URL,
		IsPublic:    action.Bool("isPublic"),
	}
	if tags := action.String("tags"); tags != "" {
		create.Tags = &tags
	}

	_, err := h.store.CreateMemory(ctx, create)
	return err
}
