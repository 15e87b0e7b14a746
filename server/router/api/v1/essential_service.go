package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cradlekit/cradle/store"
)

type CreateEssentialRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	CurrentStock *int32  `json:"currentStock"`
	MinThreshold *int32  `json:"minThreshold"`
	Unit         *string `json:"unit"`
	Notes        *string `json:"notes"`
}

type UpdateEssentialRequest struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	CurrentStock *int32  `json:"currentStock"`
	MinThreshold *int32  `json:"minThreshold"`
	Unit         *string `json:"unit"`
	Notes        *string `json:"notes"`
}

type EssentialResponse struct {
	ID           int32   `json:"id"`
	UID          string  `json:"uid"`
	CreatedTs    int64   `json:"createdTs"`
	UpdatedTs    int64   `json:"updatedTs"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	CurrentStock int32   `json:"currentStock"`
	MinThreshold int32   `json:"minThreshold"`
	Unit         *string `json:"unit,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	IsLow        bool    `json:"isLow"`
}

func convertEssential(essential *store.Essential) *EssentialResponse {
	return &EssentialResponse{
		ID:           essential.ID,
		UID:          essential.UID,
		CreatedTs:    essential.CreatedTs,
		UpdatedTs:    essential.UpdatedTs,
		Name:         essential.Name,
		Category:     essential.Category,
		CurrentStock: essential.CurrentStock,
		MinThreshold: essential.MinThreshold,
		Unit:         essential.Unit,
		Notes:        essential.Notes,
		IsLow:        essential.NeedsRestock(),
	}
}

func (s *APIV1Service) CreateEssential(c echo.Context) error {
	user := currentUser(c)
	request := &CreateEssentialRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request").SetInternal(err)
	}
	if request.Name == "" || request.CurrentStock == nil || request.MinThreshold == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "name, currentStock and minThreshold are required")
	}
	if request.Category == "" {
		request.Category = "others"
	}

	essential, err := s.Store.CreateEssential(c.Request().Context(), &store.Essential{
		UserID:       user.ID,
		Name:         request.Name,
		Category:     request.Category,
		CurrentStock: *request.CurrentStock,
		MinThreshold: *request.MinThreshold,
		Unit:         request.Unit,
		Notes:        request.Notes,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create essential").SetInternal(err)
	}
	return c.JSON(http.StatusOK, convertEssential(essential))
}

func (s *APIV1Service) ListEssentials(c echo.Context) error {
	user := currentUser(c)
	essentials, err := s.Store.ListEssentials(c.Request().Context(), &store.FindEssential{UserID: &user.ID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list essentials").SetInternal(err)
	}

	response := make([]*EssentialResponse, 0, len(essentials))
	for _, essential := range essentials {
		response = append(response, convertEssential(essential))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *APIV1Service) UpdateEssential(c echo.Context) error {
	user := currentUser(c)
	id, err := pathID(c)
	if err != nil {
		return err
	}
	request := &UpdateEssentialRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request").SetInternal(err)
	}

	update := &store.UpdateEssential{
		ID:           id,
		UserID:       user.ID,
		Name:         request.Name,
		Category:     request.Category,
		CurrentStock: request.CurrentStock,
		MinThreshold: request.MinThreshold,
		Unit:         request.Unit,
		Notes:        request.Notes,
	}
	if err := s.Store.UpdateEssential(c.Request().Context(), update); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update essential").SetInternal(err)
	}

	essential, err := s.Store.GetEssential(c.Request().Context(), &store.FindEssential{ID: &id, UserID: &user.ID})
	if err != nil || essential == nil {
		return echo.NewHTTPError(http.StatusNotFound, "essential not found")
	}
	return c.JSON(http.StatusOK, convertEssential(essential))
}

func (s *APIV1Service) DeleteEssential(c echo.Context) error {
	user := currentUser(c)
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteEssential(c.Request().Context(), &store.DeleteEssential{ID: id, UserID: user.ID}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete essential").SetInternal(err)
	}
	return c.JSON(http.StatusOK, true)
}
