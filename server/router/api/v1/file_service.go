package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ServeFile streams an uploaded media file by its generated name.
// Thumbnails are addressed with ?thumbnail=true and fall back to the
// original when none was generated.
func (s *APIV1Service) ServeFile(c echo.Context) error {
	name := c.Param("name")

	if c.QueryParam("thumbnail") == "true" {
		if path, err := s.Storage.OpenThumbnail(name); err == nil {
			return c.File(path)
		}
	}

	path, err := s.Storage.Open(name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}
	return c.File(path)
}
