package autotask

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/plugin/storage"
	"github.com/cradlekit/cradle/store"
)

// MockStore implements Store for testing.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateFeeding(ctx context.Context, create *store.Feeding) (*store.Feeding, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Feeding), args.Error(1)
}

func (m *MockStore) CreateSleep(ctx context.Context, create *store.Sleep) (*store.Sleep, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Sleep), args.Error(1)
}

func (m *MockStore) CreateGrowthEntry(ctx context.Context, create *store.GrowthEntry) (*store.GrowthEntry, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.GrowthEntry), args.Error(1)
}

func (m *MockStore) CreateVaccination(ctx context.Context, create *store.Vaccination) (*store.Vaccination, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Vaccination), args.Error(1)
}

func (m *MockStore) CreateContact(ctx context.Context, create *store.Contact) (*store.Contact, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Contact), args.Error(1)
}

func (m *MockStore) CreateEssential(ctx context.Context, create *store.Essential) (*store.Essential, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Essential), args.Error(1)
}

func (m *MockStore) CreateMemory(ctx context.Context, create *store.Memory) (*store.Memory, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Memory), args.Error(1)
}

func (m *MockStore) CreateNotification(ctx context.Context, create *store.Notification) (*store.Notification, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Notification), args.Error(1)
}

// MockUploader implements storage.Uploader for testing.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, filename string, blob []byte) (*storage.UploadResult, error) {
	args := m.Called(ctx, filename, blob)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResult), args.Error(1)
}

// stubAgent returns canned actions and records whether it was invoked.
type stubAgent struct {
	actions []*agent.Action
	called  bool
}

func (s *stubAgent) Propose(context.Context, string, time.Time, string) []*agent.Action {
	s.called = true
	return s.actions
}

func testUser() *store.User {
	return &store.User{ID: 1, Username: "parent"}
}

func feedingAction() *agent.Action {
	return &agent.Action{
		IsAction:   true,
		ActionName: "feeding",
		Date:       "2025-08-03",
		Time:       "10:00 AM",
		Values: map[string]any{
			"time": "10:00 AM", "type": "Bottle", "amount": "4oz",
		},
	}
}

func TestProcessShortInput(t *testing.T) {
	st := &MockStore{}
	ag := &stubAgent{}
	svc := NewService(st, ag, &MockUploader{})

	result := svc.Process(context.Background(), testUser(), &Request{Message: "short"})

	require.Equal(t, http.StatusOK, result.Status)
	require.NotNil(t, result.Single)
	require.Equal(t, agent.ActionTooFewInfo, result.Single.ActionName)
	require.Equal(t, agent.RequestFailed, result.Single.Request)
	require.False(t, ag.called, "completion must not be invoked for short input")
	st.AssertExpectations(t)
}

func TestProcessUnauthenticated(t *testing.T) {
	st := &MockStore{}
	ag := &stubAgent{actions: []*agent.Action{feedingAction()}}
	svc := NewService(st, ag, &MockUploader{})

	// Identical result on repeated calls, zero persistence side effects.
	for i := 0; i < 2; i++ {
		result := svc.Process(context.Background(), nil, &Request{Message: "baby drank 4oz formula"})
		require.Equal(t, http.StatusUnauthorized, result.Status)
		require.Equal(t, agent.ActionAuthFailed, result.Single.ActionName)
		require.Equal(t, agent.RequestFailed, result.Single.Request)
	}
	require.False(t, ag.called, "no handler or completion on auth failure")
	st.AssertNotCalled(t, "CreateFeeding", mock.Anything, mock.Anything)
	st.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}

func TestProcessValidFeeding(t *testing.T) {
	st := &MockStore{}
	st.On("CreateFeeding", mock.Anything, mock.MatchedBy(func(f *store.Feeding) bool {
		return f.UserID == 1 && f.Time == "10:00 AM" && f.Type == "Bottle" && f.Amount == "4oz"
	})).Return(&store.Feeding{ID: 10}, nil).Once()
	st.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *store.Notification) bool {
		return n.UserID == 1 &&
			n.Title == "Feeding Updated Successfully!" &&
			n.Message == "Feeding updated on 10:00 AM" &&
			n.Priority == store.PriorityLow &&
			n.Type == store.NotificationGeneral &&
			n.ScheduledFor == "2025-08-03"
	})).Return(&store.Notification{ID: 11}, nil).Once()

	svc := NewService(st, &stubAgent{actions: []*agent.Action{feedingAction()}}, &MockUploader{})
	result := svc.Process(context.Background(), testUser(), &Request{Message: "Baby drank 4oz formula at 10am"})

	require.Equal(t, http.StatusOK, result.Status)
	require.Len(t, result.Batch, 1)
	require.Equal(t, agent.RequestAccepted, result.Batch[0].Request)
	require.Equal(t, "feeding", result.Batch[0].ActionName)
	st.AssertExpectations(t)
}

func TestProcessBatchIsolation(t *testing.T) {
	sleepAction := &agent.Action{
		IsAction:   true,
		ActionName: "sleep",
		Date:       "2025-08-03",
		Time:       "01:00 PM",
		Values: map[string]any{
			"babyName": "Your Baby", "time": "01:00 PM", "type": "nap",
			"duration": "2 hours", "date": "2025-08-03",
		},
	}
	unknownAction := &agent.Action{IsAction: true, ActionName: "teleport", Values: map[string]any{}}
	essentialsAction := &agent.Action{
		IsAction:   true,
		ActionName: "essentials",
		Date:       "2025-08-03",
		Time:       "01:00 PM",
		Values: map[string]any{
			"name": "diapers", "currentStock": 12.0, "minThreshold": 5.0,
		},
	}

	st := &MockStore{}
	st.On("CreateSleep", mock.Anything, mock.Anything).Return(&store.Sleep{ID: 1}, nil).Once()
	st.On("CreateEssential", mock.Anything, mock.Anything).Return(&store.Essential{ID: 2}, nil).Once()
	st.On("CreateNotification", mock.Anything, mock.Anything).Return(&store.Notification{}, nil).Twice()

	svc := NewService(st, &stubAgent{actions: []*agent.Action{sleepAction, unknownAction, essentialsAction}}, &MockUploader{})
	result := svc.Process(context.Background(), testUser(), &Request{Message: "baby napped and we are low on diapers"})

	require.Len(t, result.Batch, 3)
	require.Equal(t, agent.RequestAccepted, result.Batch[0].Request)
	require.Equal(t, agent.ActionInvalidKind, result.Batch[1].ActionName)
	require.Equal(t, agent.RequestFailed, result.Batch[1].Request)
	require.Equal(t, agent.RequestAccepted, result.Batch[2].Request)
	st.AssertExpectations(t)
}

func TestProcessMemoryWithoutFile(t *testing.T) {
	memoryAction := &agent.Action{
		IsAction:   true,
		ActionName: "memory",
		Values:     map[string]any{"title": "first steps", "description": "baby walked today"},
	}

	st := &MockStore{}
	up := &MockUploader{}
	svc := NewService(st, &stubAgent{actions: []*agent.Action{memoryAction}}, up)

	result := svc.Process(context.Background(), testUser(), &Request{Message: "remember baby walked today"})

	require.Len(t, result.Batch, 1)
	require.Equal(t, agent.ActionMediaRequired, result.Batch[0].ActionName)
	require.Equal(t, agent.RequestFailed, result.Batch[0].Request)
	up.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	st.AssertNotCalled(t, "CreateMemory", mock.Anything, mock.Anything)
}

func TestProcessMemoryWithFile(t *testing.T) {
	memoryAction := &agent.Action{
		IsAction:   true,
		ActionName: "memory",
		Date:       "2025-08-03",
		Time:       "01:00 PM",
		Values:     map[string]any{"title": "first steps", "description": "baby walked today", "isPublic": false},
	}

	st := &MockStore{}
	st.On("CreateMemory", mock.Anything, mock.MatchedBy(func(m *store.Memory) bool {
		return m.UserID == 1 && m.Type == "image" && m.FileURL == "/file/abc.png"
	})).Return(&store.Memory{ID: 5}, nil).Once()
	st.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *store.Notification) bool {
		return n.Title == "Memories Updated Successfully!"
	})).Return(&store.Notification{}, nil).Once()

	up := &MockUploader{}
	up.On("Upload", mock.Anything, "steps.png", mock.Anything).
		Return(&storage.UploadResult{Type: "image", URL: "/file/abc.png"}, nil).Once()

	svc := NewService(st, &stubAgent{actions: []*agent.Action{memoryAction}}, up)
	result := svc.Process(context.Background(), testUser(), &Request{
		Message:  "remember baby walked today",
		Filename: "steps.png",
		File:     []byte{1, 2, 3},
	})

	require.Len(t, result.Batch, 1)
	require.Equal(t, agent.RequestAccepted, result.Batch[0].Request)
	st.AssertExpectations(t)
	up.AssertExpectations(t)
}

func TestProcessGrowthDataMissing(t *testing.T) {
	// Date present but no measurement at all.
	growthAction := &agent.Action{
		IsAction:   true,
		ActionName: "growth",
		Date:       "2025-08-03",
		Time:       "01:00 PM",
		Values:     map[string]any{"date": "2025-08-03"},
	}

	st := &MockStore{}
	svc := NewService(st, &stubAgent{actions: []*agent.Action{growthAction}}, &MockUploader{})

	result := svc.Process(context.Background(), testUser(), &Request{Message: "baby got measured today"})

	require.Len(t, result.Batch, 1)
	require.Equal(t, "Data Missing in Growth", result.Batch[0].ActionName)
	require.Equal(t, agent.RequestFailed, result.Batch[0].Request)
	st.AssertNotCalled(t, "CreateGrowthEntry", mock.Anything, mock.Anything)
	st.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}

func TestProcessPersistFailure(t *testing.T) {
	st := &MockStore{}
	st.On("CreateFeeding", mock.Anything, mock.Anything).Return(nil, errors.New("disk full")).Once()

	svc := NewService(st, &stubAgent{actions: []*agent.Action{feedingAction()}}, &MockUploader{})
	result := svc.Process(context.Background(), testUser(), &Request{Message: "baby drank 4oz formula"})

	require.Len(t, result.Batch, 1)
	require.Equal(t, "Feeding", result.Batch[0].ActionName)
	require.Equal(t, agent.RequestFailed, result.Batch[0].Request)
	st.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}

func TestProcessHandlerPanicIsolated(t *testing.T) {
	st := &MockStore{}
	st.On("CreateSleep", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("boom")
	}).Return(nil, nil).Once()
	st.On("CreateFeeding", mock.Anything, mock.Anything).Return(&store.Feeding{ID: 1}, nil).Once()
	st.On("CreateNotification", mock.Anything, mock.Anything).Return(&store.Notification{}, nil).Once()

	sleepAction := &agent.Action{
		IsAction:   true,
		ActionName: "sleep",
		Values: map[string]any{
			"babyName": "Your Baby", "time": "01:00 PM", "type": "nap",
			"duration": "2 hours", "date": "2025-08-03",
		},
	}

	svc := NewService(st, &stubAgent{actions: []*agent.Action{sleepAction, feedingAction()}}, &MockUploader{})
	result := svc.Process(context.Background(), testUser(), &Request{Message: "baby napped then drank 4oz"})

	require.Len(t, result.Batch, 2)
	require.Equal(t, "Sleep", result.Batch[0].ActionName)
	require.Equal(t, agent.RequestFailed, result.Batch[0].Request)
	require.Equal(t, agent.RequestAccepted, result.Batch[1].Request)
}

func TestConfirmationFailureSwallowed(t *testing.T) {
	st := &MockStore{}
	st.On("CreateFeeding", mock.Anything, mock.Anything).Return(&store.Feeding{ID: 1}, nil).Once()
	st.On("CreateNotification", mock.Anything, mock.Anything).Return(nil, errors.New("db closed")).Once()

	svc := NewService(st, &stubAgent{actions: []*agent.Action{feedingAction()}}, &MockUploader{})
	result := svc.Process(context.Background(), testUser(), &Request{Message: "baby drank 4oz formula"})

	require.Len(t, result.Batch, 1)
	require.Equal(t, agent.RequestAccepted, result.Batch[0].Request)
	st.AssertExpectations(t)
}

func TestConfirmationSkippedWithoutTimestamp(t *testing.T) {
	action := feedingAction()
	action.Date = "" // no date on the descriptor itself

	st := &MockStore{}
	st.On("CreateFeeding", mock.Anything, mock.Anything).Return(&store.Feeding{ID: 1}, nil).Once()

	svc := NewService(st, &stubAgent{actions: []*agent.Action{action}}, &MockUploader{})
	result := svc.Process(context.Background(), testUser(), &Request{Message: "baby drank 4oz formula"})

	require.Equal(t, agent.RequestAccepted, result.Batch[0].Request)
	st.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}

func TestNotificationDoesNotSelfConfirm(t *testing.T) {
	notificationAction := &agent.Action{
		IsAction:   true,
		ActionName: "notification",
		Date:       "2025-08-03",
		Time:       "01:00 PM",
		Values: map[string]any{
			"type": "general", "title": "Vaccine due", "message": "MMR next week",
			"scheduledFor": "2025-08-10", "priority": "high", "category": "reminder",
		},
	}

	st := &MockStore{}
	st.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *store.Notification) bool {
		return n.Title == "Vaccine due" && n.Priority == store.PriorityHigh
	})).Return(&store.Notification{ID: 1}, nil).Once()

	svc := NewService(st, &stubAgent{actions: []*agent.Action{notificationAction}}, &MockUploader{})
	result := svc.Process(context.Background(), testUser(), &Request{Message: "remind me about the MMR vaccine"})

	require.Equal(t, agent.RequestAccepted, result.Batch[0].Request)
	// Exactly one notification write: the record itself, no confirmation.
	st.AssertNumberOfCalls(t, "CreateNotification", 1)
}

func TestProcessShortMultibyteInput(t *testing.T) {
	st := &MockStore{}
	ag := &stubAgent{actions: []*agent.Action{feedingAction()}}
	svc := NewService(st, ag, &MockUploader{})

	// 5 characters but 15 bytes; the guard counts characters.
	result := svc.Process(context.Background(), testUser(), &Request{Message: "宝宝喝了奶"})

	require.Equal(t, http.StatusOK, result.Status)
	require.Equal(t, agent.ActionTooFewInfo, result.Single.ActionName)
	require.Equal(t, agent.RequestFailed, result.Single.Request)
	require.False(t, ag.called, "completion must not be invoked for a short multibyte message")

	// 9 characters passes the guard.
	st.On("CreateFeeding", mock.Anything, mock.Anything).Return(&store.Feeding{ID: 1}, nil).Once()
	st.On("CreateNotification", mock.Anything, mock.Anything).Return(&store.Notification{}, nil).Once()
	result = svc.Process(context.Background(), testUser(), &Request{Message: "宝宝十点喝了四盎司"})
	require.True(t, ag.called)
	require.Len(t, result.Batch, 1)
	st.AssertExpectations(t)
}

func TestProcessNullElementPassedThrough(t *testing.T) {
	nullElement := &agent.Action{
		IsAction:   false,
		ActionName: "invalid request",
		Request:    agent.RequestNull,
	}

	st := &MockStore{}
	st.On("CreateFeeding", mock.Anything, mock.Anything).Return(&store.Feeding{ID: 1}, nil).Once()
	st.On("CreateNotification", mock.Anything, mock.Anything).Return(&store.Notification{}, nil).Once()

	svc := NewService(st, &stubAgent{actions: []*agent.Action{feedingAction(), nullElement}}, &MockUploader{})
	result := svc.Process(context.Background(), testUser(), &Request{Message: "baby drank 4oz formula"})

	require.Len(t, result.Batch, 2)
	require.Equal(t, agent.RequestAccepted, result.Batch[0].Request)
	// The placeholder is echoed back untouched, not rewritten by dispatch.
	require.Equal(t, "invalid request", result.Batch[1].ActionName)
	require.Equal(t, agent.RequestNull, result.Batch[1].Request)
	st.AssertExpectations(t)
}

func TestProcessSleepTypeClamped(t *testing.T) {
	sleepAction := &agent.Action{
		IsAction:   true,
		ActionName: "sleep",
		Values: map[string]any{
			"babyName": "Your Baby", "time": "01:00 PM", "type": "Nap",
			"duration": "2 hours", "date": "2025-08-03",
		},
	}

	st := &MockStore{}
	st.On("CreateSleep", mock.Anything, mock.MatchedBy(func(s *store.Sleep) bool {
		return s.Type == store.SleepNap
	})).Return(&store.Sleep{ID: 1}, nil).Once()

	svc := NewService(st, &stubAgent{actions: []*agent.Action{sleepAction}}, &MockUploader{})
	result := svc.Process(context.Background(), testUser(), &Request{Message: "baby napped for two hours"})

	require.Equal(t, agent.RequestAccepted, result.Batch[0].Request)
	st.AssertExpectations(t)
}

func TestProcessContactTypeClamped(t *testing.T) {
	contactAction := &agent.Action{
		IsAction:   true,
		ActionName: "doctor_contact",
		Values: map[string]any{
			"name": "Dr. Lee", "category": "pediatrician",
			"type": "Phone", "value": "555-0101",
		},
	}

	st := &MockStore{}
	st.On("CreateContact", mock.Anything, mock.MatchedBy(func(c *store.Contact) bool {
		return c.Type == store.ContactPhone
	})).Return(&store.Contact{ID: 1}, nil).Once()

	svc := NewService(st, &stubAgent{actions: []*agent.Action{contactAction}}, &MockUploader{})
	result := svc.Process(context.Background(), testUser(), &Request{Message: "save Dr. Lee's phone number"})

	require.Equal(t, agent.RequestAccepted, result.Batch[0].Request)
	st.AssertExpectations(t)
}
