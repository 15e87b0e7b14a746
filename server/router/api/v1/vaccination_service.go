package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cradlekit/cradle/store"
)

type CreateVaccinationRequest struct {
	Name          string  `json:"name"`
	ScheduledDate string  `json:"scheduledDate"`
	Status        string  `json:"status"`
	Description   *string `json:"description"`
	Notes         *string `json:"notes"`
	AgeMonths     *int32  `json:"ageMonths"`
	IsStandard    bool    `json:"isStandard"`
}

type UpdateVaccinationRequest struct {
	Name          *string `json:"name"`
	ScheduledDate *string `json:"scheduledDate"`
	Status        *string `json:"status"`
	Description   *string `json:"description"`
	CompleteDate  *string `json:"completeDate"`
	Notes         *string `json:"notes"`
}

type VaccinationResponse struct {
	ID            int32   `json:"id"`
	UID           string  `json:"uid"`
	CreatedTs     int64   `json:"createdTs"`
	UpdatedTs     int64   `json:"updatedTs"`
	Name          string  `json:"name"`
	ScheduledDate string  `json:"scheduledDate"`
	Status        string  `json:"status"`
	Description   *string `json:"description,omitempty"`
	CompleteDate  *string `json:"completeDate,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Document      *string `json:"document,omitempty"`
	AgeMonths     *int32  `json:"ageMonths,omitempty"`
	IsStandard    bool    `json:"isStandard"`
}

func convertVaccination(vaccination *store.Vaccination) *VaccinationResponse {
	return &VaccinationResponse{
		ID:            vaccination.ID,
		UID:           vaccination.UID,
		CreatedTs:     vaccination.CreatedTs,
		UpdatedTs:     vaccination.UpdatedTs,
		Name:          vaccination.Name,
		ScheduledDate: vaccination.ScheduledDate,
		Status:        vaccination.Status,
		Description:   vaccination.Description,
		CompleteDate:  vaccination.CompleteDate,
		Notes:         vaccination.Notes,
		Document:      vaccination.Document,
		AgeMonths:     vaccination.AgeMonths,
		IsStandard:    vaccination.IsStandard,
	}
}

func validVaccinationStatus(status string) bool {
	switch status {
	case store.VaccinationScheduled, store.VaccinationCompleted, store.VaccinationOverdue:
		return true
	}
	return false
}

func (s *APIV1Service) CreateVaccination(c echo.Context) error {
	user := currentUser(c)
	request := &CreateVaccinationRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request").SetInternal(err)
	}
	if request.Name == "" || request.ScheduledDate == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "name and scheduledDate are required")
	}
	if request.Status == "" {
		request.Status = store.VaccinationScheduled
	}
	if !validVaccinationStatus(request.Status) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid status")
	}

	vaccination, err := s.Store.CreateVaccination(c.Request().Context(), &store.Vaccination{
		UserID:        user.ID,
		Name:          request.Name,
		ScheduledDate: request.ScheduledDate,
		Status:        request.Status,
		Description:   request.Description,
		Notes:         request.Notes,
		AgeMonths:     request.AgeMonths,
		IsStandard:    request.IsStandard,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create vaccination").SetInternal(err)
	}
	return c.JSON(http.StatusOK, convertVaccination(vaccination))
}

func (s *APIV1Service) ListVaccinations(c echo.Context) error {
	user := currentUser(c)
	find := &store.FindVaccination{UserID: &user.ID}
	if status := c.QueryParam("status"); status != "" {
		find.Status = &status
	}
	vaccinations, err := s.Store.ListVaccinations(c.Request().Context(), find)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list vaccinations").SetInternal(err)
	}

	response := make([]*VaccinationResponse, 0, len(vaccinations))
	for _, vaccination := range vaccinations {
		response = append(response, convertVaccination(vaccination))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *APIV1Service) UpdateVaccination(c echo.Context) error {
	user := currentUser(c)
	id, err := pathID(c)
	if err != nil {
		return err
	}
	request := &UpdateVaccinationRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request").SetInternal(err)
	}
	if request.Status != nil && !validVaccinationStatus(*request.Status) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid status")
	}

	update := &store.UpdateVaccination{
		ID:            id,
		UserID:        user.ID,
		Name:          request.Name,
		ScheduledDate: request.ScheduledDate,
		Status:        request.Status,
		Description:   request.Description,
		CompleteDate:  request.CompleteDate,
		Notes:         request.Notes,
	}
	if err := s.Store.UpdateVaccination(c.Request().Context(), update); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update vaccination").SetInternal(err)
	}

	vaccination, err := s.Store.GetVaccination(c.Request().Context(), &store.FindVaccination{ID: &id, UserID: &user.ID})
	if err != nil || vaccination == nil {
		return echo.NewHTTPError(http.StatusNotFound, "vaccination not found")
	}
	return c.JSON(http.StatusOK, convertVaccination(vaccination))
}

func (s *APIV1Service) DeleteVaccination(c echo.Context) error {
	user := currentUser(c)
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteVaccination(c.Request().Context(), &store.DeleteVaccination{ID: id, UserID: user.ID}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete vaccination").SetInternal(err)
	}
	return c.JSON(http.StatusOK, true)
}
