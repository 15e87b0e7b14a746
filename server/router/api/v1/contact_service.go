package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cradlekit/cradle/store"
)

type CreateContactRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Value       string  `json:"value"`
	Description *string `json:"description"`
}

type ContactResponse struct {
	ID          int32   `json:"id"`
	UID         string  `json:"uid"`
	CreatedTs   int64   `json:"createdTs"`
	UpdatedTs   int64   `json:"updatedTs"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
}

func convertContact(contact *store.Contact) *ContactResponse {
	return &ContactResponse{
		ID:          contact.ID,
		UID:         contact.UID,
		CreatedTs:   contact.CreatedTs,
		UpdatedTs:   contact.UpdatedTs,
		Name:        contact.Name,
		Category:    contact.Category,
		Type:        contact.Type,
		Value:       contact.Value,
		Description: contact.Description,
	}
}

func (s *APIV1Service) CreateContact(c echo.Context) error {
	user := currentUser(c)
	request := &CreateContactRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request").SetInternal(err)
	}
	if request.Name == "" || request.Category == "" || request.Type == "" || request.Value == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "name, category, type and value are required")
	}

	contact, err := s.Store.CreateContact(c.Request().Context(), &store.Contact{
		UserID:      user.ID,
		Name:        request.Name,
		Category:    request.Category,
		Type:        request.Type,
		Value:       request.Value,
		Description: request.Description,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create contact").SetInternal(err)
	}
	return c.JSON(http.StatusOK, convertContact(contact))
}

func (s *APIV1Service) ListContacts(c echo.Context) error {
	user := currentUser(c)
	contacts, err := s.Store.ListContacts(c.Request().Context(), &store.FindContact{UserID: &user.ID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list contacts").SetInternal(err)
	}

	response := make([]*ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		response = append(response, convertContact(contact))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *APIV1Service) DeleteContact(c echo.Context) error {
	user := currentUser(c)
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteContact(c.Request().Context(), &store.DeleteContact{ID: id, UserID: user.ID}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete contact").SetInternal(err)
	}
	return c.JSON(http.StatusOK, true)
}
