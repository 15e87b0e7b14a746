package autotask

import (
	"context"
	"strings"

	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/plugin/storage"
	"github.com/cradlekit/cradle/store"
)

type contactHandler struct {
	store Store
}

func (h *contactHandler) Spec() *agent.KindSpec {
	return agent.LookupKind("doctor_contact")
}

func (h *contactHandler) Persist(ctx context.Context, action *agent.Action, userID int32, _ *storage.UploadResult) error {
	create := &store.Contact{
		UserID:   userID,
		Name:     action.String("name"),
		Category: action.String("category"),
		Type:     contactType(action.String("type")),
		Value:    action.String("value"),
	}
	if description := action.String("description"); description != "" {
		create.Description = &description
	}

	_, err := h.store.CreateContact(ctx, create)
	return err
}

// contactType clamps the model-supplied contact type onto the closed set.
func contactType(t string) string {
	switch strings.ToLower(t) {
	case store.ContactWebsite:
		return store.ContactWebsite
	default:
		return store.ContactPhone
	}
}
