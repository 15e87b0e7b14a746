package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cradlekit/cradle/store"
)

type CreateSleepRequest struct {
	BabyName string  `json:"babyName"`
	Time     string  `json:"time"`
	Type     string  `json:"type"`
	Duration string  `json:"duration"`
	Date     string  `json:"date"`
	Mood     *string `json:"mood"`
	Notes    *string `json:"notes"`
}

type SleepResponse struct {
	ID        int32   `json:"id"`
	UID       string  `json:"uid"`
	CreatedTs int64   `json:"createdTs"`
	UpdatedTs int64   `json:"updatedTs"`
	BabyName  string  `json:"babyName"`
	Time      string  `json:"time"`
	Type      string  `json:"type"`
	Duration  string  `json:"duration"`
	Date      string  `json:"date"`
	Mood      *string `json:"mood,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func convertSleep(sleep *store.Sleep) *SleepResponse {
	return &SleepResponse{
		ID:        sleep.ID,
		UID:       sleep.UID,
		CreatedTs: sleep.CreatedTs,
		UpdatedTs: sleep.UpdatedTs,
		BabyName:  sleep.BabyName,
		Time:      sleep.Time,
		Type:      sleep.Type,
		Duration:  sleep.Duration,
		Date:      sleep.Date,
		Mood:      sleep.Mood,
		Notes:     sleep.Notes,
	}
}

func (s *APIV1Service) CreateSleep(c echo.Context) error {
	user := currentUser(c)
	request := &CreateSleepRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request").SetInternal(err)
	}
	if request.BabyName == "" || request.Time == "" || request.Type == "" || request.Duration == "" || request.Date == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "babyName, time, type, duration and date are required")
	}

	sleep, err := s.Store.CreateSleep(c.Request().Context(), &store.Sleep{
		UserID:   user.ID,
		BabyName: request.BabyName,
		Time:     request.Time,
		Type:     request.Type,
		Duration: request.Duration,
		Date:     request.Date,
		Mood:     request.Mood,
		Notes:    request.Notes,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create sleep record").SetInternal(err)
	}
	return c.JSON(http.StatusOK, convertSleep(sleep))
}

func (s *APIV1Service) ListSleeps(c echo.Context) error {
	user := currentUser(c)
	find := &store.FindSleep{UserID: &user.ID}
	if date := c.QueryParam("date"); date != "" {
		find.Date = &date
	}
	sleeps, err := s.Store.ListSleeps(c.Request().Context(), find)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list sleep records").SetInternal(err)
	}

	response := make([]*SleepResponse, 0, len(sleeps))
	for _, sleep := range sleeps {
		response = append(response, convertSleep(sleep))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *APIV1Service) DeleteSleep(c echo.Context) error {
	user := currentUser(c)
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteSleep(c.Request().Context(), &store.DeleteSleep{ID: id, UserID: user.ID}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete sleep record").SetInternal(err)
	}
	return c.JSON(http.StatusOK, true)
}
