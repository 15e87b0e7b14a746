package v1

import (
	"net/http"

	"github.com/google/cel-go/cel"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/cradlekit/cradle/store"
)

type CreateNotificationRequest struct {
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	Message      string  `json:"message"`
	Priority     string  `json:"priority"`
	ScheduledFor string  `json:"scheduledFor"`
	Category     string  `json:"category"`
	ActionURL    *string `json:"actionUrl"`
	Metadata     *string `json:"metadata"`
}

type UpdateNotificationRequest struct {
	IsRead *bool `json:"isRead"`
	IsSent *bool `json:"isSent"`
}

type NotificationResponse struct {
	ID           int32   `json:"id"`
	UID          string  `json:"uid"`
	CreatedTs    int64   `json:"createdTs"`
	UpdatedTs    int64   `json:"updatedTs"`
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	Message      string  `json:"message"`
	Priority     string  `json:"priority"`
	ScheduledFor string  `json:"scheduledFor"`
	IsRead       bool    `json:"isRead"`
	IsSent       bool    `json:"isSent"`
	ActionURL    *string `json:"actionUrl,omitempty"`
	Metadata     *string `json:"metadata,omitempty"`
	Category     string  `json:"category"`
}

func convertNotification(notification *store.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:           notification.ID,
		UID:          notification.UID,
		CreatedTs:    notification.CreatedTs,
		UpdatedTs:    notification.UpdatedTs,
		Type:         notification.Type,
		Title:        notification.Title,
		Message:      notification.Message,
		Priority:     notification.Priority,
		ScheduledFor: notification.ScheduledFor,
		IsRead:       notification.IsRead,
		IsSent:       notification.IsSent,
		ActionURL:    notification.ActionURL,
		Metadata:     notification.Metadata,
		Category:     notification.Category,
	}
}

// notificationFilterEnv declares the attributes a list filter expression
// may reference, e.g. `priority == "high" && !is_read`.
var notificationFilterEnv = func() *cel.Env {
	env, err := cel.NewEnv(
		cel.Variable("type", cel.StringType),
		cel.Variable("priority", cel.StringType),
		cel.Variable("category", cel.StringType),
		cel.Variable("is_read", cel.BoolType),
		cel.Variable("is_sent", cel.BoolType),
	)
	if err != nil {
		panic(err)
	}
	return env
}()

func compileNotificationFilter(expression string) (cel.Program, error) {
	ast, issues := notificationFilterEnv.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, errors.Wrap(issues.Err(), "invalid filter")
	}
	if ast.OutputType() != cel.BoolType {
		return nil, errors.New("filter must be a boolean expression")
	}
	program, err := notificationFilterEnv.Program(ast)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build filter program")
	}
	return program, nil
}

func matchNotificationFilter(program cel.Program, notification *store.Notification) (bool, error) {
	out, _, err := program.Eval(map[string]any{
		"type":     notification.Type,
		"priority": notification.Priority,
		"category": notification.Category,
		"is_read":  notification.IsRead,
		"is_sent":  notification.IsSent,
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to evaluate filter")
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, errors.New("filter did not evaluate to a boolean")
	}
	return matched, nil
}

func (s *APIV1Service) CreateNotification(c echo.Context) error {
	user := currentUser(c)
	request := &CreateNotificationRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request").SetInternal(err)
	}
	if request.Title == "" || request.Type == "" || request.Message == "" || request.ScheduledFor == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "title, type, message and scheduledFor are required")
	}
	if request.Priority == "" {
		request.Priority = store.PriorityMedium
	}
	if request.Category == "" {
		request.Category = store.CategoryReminder
	}

	notification, err := s.Store.CreateNotification(c.Request().Context(), &store.Notification{
		UserID:       user.ID,
		Type:         request.Type,
		Title:        request.Title,
		Message:      request.Message,
		Priority:     request.Priority,
		ScheduledFor: request.ScheduledFor,
		Category:     request.Category,
		ActionURL:    request.ActionURL,
		Metadata:     request.Metadata,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create notification").SetInternal(err)
	}
	return c.JSON(http.StatusOK, convertNotification(notification))
}

// ListNotifications lists the user's notifications, newest first. An
// optional `filter` query param narrows the result with a CEL
// expression over type/priority/category/is_read/is_sent.
func (s *APIV1Service) ListNotifications(c echo.Context) error {
	user := currentUser(c)
	notifications, err := s.Store.ListNotifications(c.Request().Context(), &store.FindNotification{UserID: &user.ID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list notifications").SetInternal(err)
	}

	if expression := c.QueryParam("filter"); expression != "" {
		program, err := compileNotificationFilter(expression)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		filtered := make([]*store.Notification, 0, len(notifications))
		for _, notification := range notifications {
			matched, err := matchNotificationFilter(program, notification)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			if matched {
				filtered = append(filtered, notification)
			}
		}
		notifications = filtered
	}

	response := make([]*NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		response = append(response, convertNotification(notification))
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateNotification marks a notification read or sent.
func (s *APIV1Service) UpdateNotification(c echo.Context) error {
	user := currentUser(c)
	id, err := pathID(c)
	if err != nil {
		return err
	}
	request := &UpdateNotificationRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request").SetInternal(err)
	}
	if request.IsRead == nil && request.IsSent == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "nothing to update")
	}

	update := &store.UpdateNotification{
		ID:     id,
		UserID: user.ID,
		IsRead: request.IsRead,
		IsSent: request.IsSent,
	}
	if err := s.Store.UpdateNotification(c.Request().Context(), update); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "notification not found").SetInternal(err)
	}
	return c.JSON(http.StatusOK, true)
}

func (s *APIV1Service) DeleteNotification(c echo.Context) error {
	user := currentUser(c)
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteNotification(c.Request().Context(), &store.DeleteNotification{ID: id, UserID: user.ID}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete notification").SetInternal(err)
	}
	return c.JSON(http.StatusOK, true)
}
