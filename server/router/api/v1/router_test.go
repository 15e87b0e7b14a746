package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/plugin/storage"
	"github.com/cradlekit/cradle/server/auth"
	"github.com/cradlekit/cradle/server/middleware"
	"github.com/cradlekit/cradle/server/service/autotask"
	"github.com/cradlekit/cradle/store"
)

const testSecret = "test-secret"

type routerTestEnv struct {
	echo    *echo.Echo
	service *APIV1Service
	store   *store.Store
	token   string
	user    *store.User
}

func newRouterTestEnv(t *testing.T) *routerTestEnv {
	t.Helper()

	prof := testProfile(t.TempDir())
	st := store.New(newMemDriver(), prof)

	user, err := st.CreateUser(context.Background(), &store.User{Username: "parent", Nickname: "Parent"})
	require.NoError(t, err)

	authenticator := auth.NewAuthenticator(st, testSecret)
	token, err := authenticator.GenerateAccessToken(user.ID, time.Now())
	require.NoError(t, err)

	service := &APIV1Service{
		Secret:        testSecret,
		Profile:       prof,
		Store:         st,
		Storage:       storage.NewLocalStorage(prof.Data),
		authenticator: authenticator,
		rateLimiter:   middleware.NewRateLimiter(100, 100),
	}

	e := echo.New()
	service.RegisterRoutes(e)

	return &routerTestEnv{echo: e, service: service, store: st, token: token, user: user}
}

func (env *routerTestEnv) request(t *testing.T, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+env.token)
	}
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func TestCRUDRequiresAuth(t *testing.T) {
	env := newRouterTestEnv(t)

	for _, path := range []string{"/api/v1/feedings", "/api/v1/sleeps", "/api/v1/notifications"} {
		rec := env.request(t, http.MethodGet, path, "", false)
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestFeedingCRUD(t *testing.T) {
	env := newRouterTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/feedings", `{"time":"10:00 AM","type":"Bottle"}`, true)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/v1/feedings", `{"time":"10:00 AM","type":"Bottle","amount":"4oz"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	created := &FeedingResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), created))
	require.NotZero(t, created.ID)
	require.NotEmpty(t, created.UID)

	rec = env.request(t, http.MethodPost, "/api/v1/feedings", `{"time":"01:00 PM","type":"Breast","amount":"20 min"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/v1/feedings", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []*FeedingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	require.Equal(t, "01:00 PM", list[0].Time, "newest first")

	rec = env.request(t, http.MethodPatch, fmt.Sprintf("/api/v1/feedings/%d", created.ID), `{"amount":"5oz"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := &FeedingResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), updated))
	require.Equal(t, "5oz", updated.Amount)

	rec = env.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/feedings/%d", created.ID), "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/v1/feedings", "", true)
	list = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
}

func TestGrowthEntryValidation(t *testing.T) {
	env := newRouterTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/growth", `{"date":"2025-08-03"}`, true)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/v1/growth", `{"date":"2025-08-03","weight":6.2}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationFilter(t *testing.T) {
	env := newRouterTestEnv(t)

	seed := []string{
		`{"type":"general","title":"a","message":"m","scheduledFor":"2025-08-03","priority":"low","category":"info"}`,
		`{"type":"vaccine_reminder","title":"b","message":"m","scheduledFor":"2025-08-04","priority":"high","category":"reminder"}`,
		`{"type":"general","title":"c","message":"m","scheduledFor":"2025-08-05","priority":"high","category":"alert"}`,
	}
	for _, body := range seed {
		rec := env.request(t, http.MethodPost, "/api/v1/notifications", body, true)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := env.request(t, http.MethodGet, `/api/v1/notifications?filter=`+"priority%20%3D%3D%20%22high%22", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []*NotificationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)

	rec = env.request(t, http.MethodGet, `/api/v1/notifications?filter=`+"type%20%3D%3D%20%22general%22%20%26%26%20priority%20%3D%3D%20%22high%22", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	list = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "c", list[0].Title)

	// Malformed filter is a client error.
	rec = env.request(t, http.MethodGet, `/api/v1/notifications?filter=priority%20%3D%3D`, "", true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Non-boolean filter is rejected at compile time.
	rec = env.request(t, http.MethodGet, `/api/v1/notifications?filter=priority`, "", true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationMarkRead(t *testing.T) {
	env := newRouterTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/notifications",
		`{"type":"general","title":"a","message":"m","scheduledFor":"2025-08-03"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	created := &NotificationResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), created))
	require.False(t, created.IsRead)

	rec = env.request(t, http.MethodPatch, fmt.Sprintf("/api/v1/notifications/%d", created.ID), `{"isRead":true}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, `/api/v1/notifications?filter=is_read`, "", true)
	var list []*NotificationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
}

func TestCompileNotificationFilter(t *testing.T) {
	program, err := compileNotificationFilter(`category == "alert" && !is_read`)
	require.NoError(t, err)

	matched, err := matchNotificationFilter(program, &store.Notification{Category: "alert"})
	require.NoError(t, err)
	require.True(t, matched)

	matched, err = matchNotificationFilter(program, &store.Notification{Category: "alert", IsRead: true})
	require.NoError(t, err)
	require.False(t, matched)

	_, err = compileNotificationFilter(`unknown_attr == 1`)
	require.Error(t, err)
}

func autotaskForm(t *testing.T, message string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("message", message))
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestAutoTaskEndpoint(t *testing.T) {
	env := newRouterTestEnv(t)
	env.service.AutoTaskService = autotask.NewService(env.store, &cannedAgent{
		actions: []*agent.Action{{
			IsAction:   true,
			ActionName: "feeding",
			Date:       "2025-08-03",
			Time:       "10:00 AM",
			Values:     map[string]any{"time": "10:00 AM", "type": "Bottle", "amount": "4oz"},
		}},
	}, env.service.Storage)

	body, contentType := autotaskForm(t, "Baby drank 4oz formula at 10am")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/autotask", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+env.token)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var results []*agent.Action
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	require.Equal(t, agent.RequestAccepted, results[0].Request)

	feedings, err := env.store.ListFeedings(context.Background(), &store.FindFeeding{UserID: &env.user.ID})
	require.NoError(t, err)
	require.Len(t, feedings, 1)
	require.Equal(t, "4oz", feedings[0].Amount)

	notifications, err := env.store.ListNotifications(context.Background(), &store.FindNotification{UserID: &env.user.ID})
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, "Feeding Updated Successfully!", notifications[0].Title)
}

func TestAutoTaskEndpointWithoutToken(t *testing.T) {
	env := newRouterTestEnv(t)
	env.service.AutoTaskService = autotask.NewService(env.store, &cannedAgent{}, env.service.Storage)

	body, contentType := autotaskForm(t, "Baby drank 4oz formula at 10am")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/autotask", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	result := &agent.Action{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), result))
	require.Equal(t, agent.ActionAuthFailed, result.ActionName)
}

func TestAutoTaskEndpointUnconfigured(t *testing.T) {
	env := newRouterTestEnv(t)

	body, contentType := autotaskForm(t, "Baby drank 4oz formula at 10am")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/autotask", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+env.token)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

type cannedAgent struct {
	actions []*agent.Action
}

func (a *cannedAgent) Propose(context.Context, string, time.Time, string) []*agent.Action {
	return a.actions
}
