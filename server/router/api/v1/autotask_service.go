package v1

import (
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/cradlekit/cradle/server/service/autotask"
	"github.com/cradlekit/cradle/server/timezone"
)

// maxUploadSize caps the attached media blob.
const maxUploadSize = 32 << 20 // 32 MiB

// HandleAutoTask accepts a multipart form with a free-text message, an
// optional media file and an optional client time, runs it through the
// AutoTask pipeline and returns the per-action result descriptors.
func (s *APIV1Service) HandleAutoTask(c echo.Context) error {
	if s.AutoTaskService == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "assistant is not configured")
	}

	req := &autotask.Request{
		Message: c.FormValue("message"),
		Time:    c.FormValue("time"),
	}

	// Clients may send an IANA timezone instead of a preformatted
	// local time.
	if req.Time == "" {
		if tz := c.FormValue("timezone"); tz != "" {
			if loc, err := timezone.ParseTimezone(tz); err == nil {
				req.Time = timezone.ClockString(time.Now(), loc)
			}
		}
	}

	fileHeader, err := c.FormFile("file")
	if err == nil && fileHeader != nil {
		if fileHeader.Size > maxUploadSize {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
		}
		blob, err := readMultipartFile(fileHeader)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "failed to read file").SetInternal(err)
		}
		req.Filename = fileHeader.Filename
		req.File = blob
	}

	result := s.AutoTaskService.Process(c.Request().Context(), currentUser(c), req)
	return c.JSON(result.Status, result.Payload())
}

// GetAutoTaskMetrics reports the pipeline's dispatch counters.
func (s *APIV1Service) GetAutoTaskMetrics(c echo.Context) error {
	if s.AutoTaskService == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "assistant is not configured")
	}
	return c.JSON(http.StatusOK, s.AutoTaskService.Metrics().Snapshot())
}

// GetLLMUsage reports recorded completion token usage and cost
// estimates.
func (s *APIV1Service) GetLLMUsage(c echo.Context) error {
	if s.CostMonitor == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "assistant is not configured")
	}
	return c.JSON(http.StatusOK, s.CostMonitor.Report())
}

func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open multipart file")
	}
	defer src.Close()

	blob, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read multipart file")
	}
	if int64(len(blob)) > maxUploadSize {
		return nil, errors.New("file too large")
	}
	return blob, nil
}
