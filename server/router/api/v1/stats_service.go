package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cradlekit/cradle/server/stats"
)

// GetUserStats reports the authenticated user's recent care activity.
func (s *APIV1Service) GetUserStats(c echo.Context) error {
	user := currentUser(c)
	collector := stats.NewCollector(s.Store)
	return c.JSON(http.StatusOK, collector.Collect(c.Request().Context(), user.ID))
}
