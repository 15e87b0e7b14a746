package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cradlekit/cradle/store"
)

type MemoryResponse struct {
	ID          int32   `json:"id"`
	UID         string  `json:"uid"`
	CreatedTs   int64   `json:"createdTs"`
	UpdatedTs   int64   `json:"updatedTs"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	FileURL     string  `json:"fileUrl"`
	Tags        *string `json:"tags,omitempty"`
	IsPublic    bool    `json:"isPublic"`
}

func convertMemory(memory *store.Memory) *MemoryResponse {
	return &MemoryResponse{
		ID:          memory.ID,
		UID:         memory.UID,
		CreatedTs:   memory.CreatedTs,
		UpdatedTs:   memory.UpdatedTs,
		Title:       memory.Title,
		Description: memory.Description,
		Type:        memory.Type,
		FileURL:     memory.FileURL,
		Tags:        memory.Tags,
		IsPublic:    memory.IsPublic,
	}
}

// CreateMemory accepts a multipart form: title, description, optional
// tags/isPublic, plus the media file itself.
func (s *APIV1Service) CreateMemory(c echo.Context) error {
	user := currentUser(c)

	title := c.FormValue("title")
	description := c.FormValue("description")
	if title == "" || description == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "title and description are required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "a media file is required")
	}
	if fileHeader.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}
	blob, err := readMultipartFile(fileHeader)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read file").SetInternal(err)
	}

	upload, err := s.Storage.Upload(c.Request().Context(), fileHeader.Filename, blob)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store file").SetInternal(err)
	}

	create := &store.Memory{
		UserID:      user.ID,
		Title:       title,
		Description: description,
		Type:        upload.Type,
		FileURL:     upload.URL,
		IsPublic:    c.FormValue("isPublic") == "true",
	}
	if tags := c.FormValue("tags"); tags != "" {
		create.Tags = &tags
	}

	memory, err := s.Store.CreateMemory(c.Request().Context(), create)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create memory").SetInternal(err)
	}
	return c.JSON(http.StatusOK, convertMemory(memory))
}

func (s *APIV1Service) ListMemories(c echo.Context) error {
	user := currentUser(c)
	memories, err := s.Store.ListMemories(c.Request().Context(), &store.FindMemory{UserID: &user.ID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list memories").SetInternal(err)
	}

	response := make([]*MemoryResponse, 0, len(memories))
	for _, memory := range memories {
		response = append(response, convertMemory(memory))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *APIV1Service) DeleteMemory(c echo.Context) error {
	user := currentUser(c)
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteMemory(c.Request().Context(), &store.DeleteMemory{ID: id, UserID: user.ID}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete memory").SetInternal(err)
	}
	return c.JSON(http.StatusOK, true)
}
