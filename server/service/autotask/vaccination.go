package autotask

import (
	"context"

	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/plugin/storage"
	"github.com/cradlekit/cradle/store"
)

type vaccinationHandler struct {
	store Store
}

func (h *vaccinationHandler) Spec() *agent.KindSpec {
	return agent.LookupKind("vaccination")
}

func (h *vaccinationHandler) Persist(ctx context.Context, action *agent.Action, userID int32, _ *storage.UploadResult) error {
	create := &store.Vaccination{
		UserID:        userID,
		Name:          action.String("name"),
		ScheduledDate: action.String("scheduledDate"),
		Status:        vaccinationStatus(action.String("status")),
	}
	if description := action.String("description"); description != "" {
		create.Description = &description
	}
	if completeDate := action.String("completeDate"); completeDate != "" {
		create.CompleteDate = &completeDate
	}
	if notes := action.String("notes"); notes != "" {
		create.Notes = &notes
	}
	if ageMonths, ok := action.Int("ageMonths"); ok {
		create.AgeMonths = &ageMonths
	}
	create.IsStandard = action.Bool("isStandard")

	_, err := h.store.CreateVaccination(ctx, create)
	return err
}

// vaccinationStatus clamps the model-supplied status onto the closed set.
func vaccinationStatus(status string) string {
	switch status {
	case store.VaccinationScheduled, store.VaccinationCompleted, store.VaccinationOverdue:
		return status
	default:
		return store.VaccinationScheduled
	}
}
