package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cradlekit/cradle/store"
)

type CreateFeedingRequest struct {
	Time   string  `json:"time"`
	Type   string  `json:"type"`
	Amount string  `json:"amount"`
	Notes  *string `json:"notes"`
}

type UpdateFeedingRequest struct {
	Time   *string `json:"time"`
	Type   *string `json:"type"`
	Amount *string `json:"amount"`
	Notes  *string `json:"notes"`
}

type FeedingResponse struct {
	ID        int32   `json:"id"`
	UID       string  `json:"uid"`
	CreatedTs int64   `json:"createdTs"`
	UpdatedTs int64   `json:"updatedTs"`
	Time      string  `json:"time"`
	Type      string  `json:"type"`
	Amount    string  `json:"amount"`
	Notes     *string `json:"notes,omitempty"`
}

func convertFeeding(feeding *store.Feeding) *FeedingResponse {
	return &FeedingResponse{
		ID:        feeding.ID,
		UID:       feeding.UID,
		CreatedTs: feeding.CreatedTs,
		UpdatedTs: feeding.UpdatedTs,
		Time:      feeding.Time,
		Type:      feeding.Type,
		Amount:    feeding.Amount,
		Notes:     feeding.Notes,
	}
}

func (s *APIV1Service) CreateFeeding(c echo.Context) error {
	user := currentUser(c)
	request := &CreateFeedingRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request").SetInternal(err)
	}
	if request.Time == "" || request.Type == "" || request.Amount == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "time, type and amount are required")
	}

	feeding, err := s.Store.CreateFeeding(c.Request().Context(), &store.Feeding{
		UserID: user.ID,
		Time:   request.Time,
		Type:   request.Type,
		Amount: request.Amount,
		Notes:  request.Notes,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create feeding").SetInternal(err)
	}
	return c.JSON(http.StatusOK, convertFeeding(feeding))
}

func (s *APIV1Service) ListFeedings(c echo.Context) error {
	user := currentUser(c)
	feedings, err := s.Store.ListFeedings(c.Request().Context(), &store.FindFeeding{UserID: &user.ID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list feedings").SetInternal(err)
	}

	response := make([]*FeedingResponse, 0, len(feedings))
	for _, feeding := range feedings {
		response = append(response, convertFeeding(feeding))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *APIV1Service) UpdateFeeding(c echo.Context) error {
	user := currentUser(c)
	id, err := pathID(c)
	if err != nil {
		return err
	}
	request := &UpdateFeedingRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request").SetInternal(err)
	}

	update := &store.UpdateFeeding{
		ID:     id,
		UserID: user.ID,
		Time:   request.Time,
		Type:   request.Type,
		Amount: request.Amount,
		Notes:  request.Notes,
	}
	if err := s.Store.UpdateFeeding(c.Request().Context(), update); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update feeding").SetInternal(err)
	}

	feeding, err := s.Store.GetFeeding(c.Request().Context(), &store.FindFeeding{ID: &id, UserID: &user.ID})
	if err != nil || feeding == nil {
		return echo.NewHTTPError(http.StatusNotFound, "feeding not found")
	}
	return c.JSON(http.StatusOK, convertFeeding(feeding))
}

func (s *APIV1Service) DeleteFeeding(c echo.Context) error {
	user := currentUser(c)
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteFeeding(c.Request().Context(), &store.DeleteFeeding{ID: id, UserID: user.ID}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete feeding").SetInternal(err)
	}
	return c.JSON(http.StatusOK, true)
}
