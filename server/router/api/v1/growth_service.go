package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cradlekit/cradle/store"
)

type CreateGrowthEntryRequest struct {
	Date    string   `json:"date"`
	Height  *float64 `json:"height"`
	Weight  *float64 `json:"weight"`
	Head    *float64 `json:"head"`
	Comment *string  `json:"comment"`
}

type GrowthEntryResponse struct {
	ID        int32    `json:"id"`
	UID       string   `json:"uid"`
	CreatedTs int64    `json:"createdTs"`
	UpdatedTs int64    `json:"updatedTs"`
	Date      string   `json:"date"`
	Height    *float64 `json:"height,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Head      *float64 `json:"head,omitempty"`
	Comment   *string  `json:"comment,omitempty"`
}

func convertGrowthEntry(entry *store.GrowthEntry) *GrowthEntryResponse {
	return &GrowthEntryResponse{
		ID:        entry.ID,
		UID:       entry.UID,
		CreatedTs: entry.CreatedTs,
		UpdatedTs: entry.UpdatedTs,
		Date:      entry.Date,
		Height:    entry.Height,
		Weight:    entry.Weight,
		Head:      entry.Head,
		Comment:   entry.Comment,
	}
}

func (s *APIV1Service) CreateGrowthEntry(c echo.Context) error {
	user := currentUser(c)
	request := &CreateGrowthEntryRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request").SetInternal(err)
	}
	if request.Date == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "date is required")
	}
	if request.Height == nil && request.Weight == nil && request.Head == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "at least one measurement is required")
	}

	entry, err := s.Store.CreateGrowthEntry(c.Request().Context(), &store.GrowthEntry{
		UserID:  user.ID,
		Date:    request.Date,
		Height:  request.Height,
		Weight:  request.Weight,
		Head:    request.Head,
		Comment: request.Comment,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create growth entry").SetInternal(err)
	}
	return c.JSON(http.StatusOK, convertGrowthEntry(entry))
}

func (s *APIV1Service) ListGrowthEntries(c echo.Context) error {
	user := currentUser(c)
	entries, err := s.Store.ListGrowthEntries(c.Request().Context(), &store.FindGrowthEntry{UserID: &user.ID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list growth entries").SetInternal(err)
	}

	response := make([]*GrowthEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, convertGrowthEntry(entry))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *APIV1Service) DeleteGrowthEntry(c echo.Context) error {
	user := currentUser(c)
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteGrowthEntry(c.Request().Context(), &store.DeleteGrowthEntry{ID: id, UserID: user.ID}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete growth entry").SetInternal(err)
	}
	return c.JSON(http.StatusOK, true)
}
