package autotask

import (
	"context"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/plugin/storage"
	"github.com/cradlekit/cradle/server/internal/observability"
	"github.com/cradlekit/cradle/store"
)

// minMessageLength rejects instructions too short to carry an intent
// before any completion call is made.
const minMessageLength = 9

// Agent proposes action descriptors for a free-text instruction.
type Agent interface {
	Propose(ctx context.Context, message string, now time.Time, clientTime string) []*agent.Action
}

// Request is one AutoTask submission.
type Request struct {
	Message  string
	Time     string // optional client-supplied time override
	Filename string
	File     []byte
}

// Result is the outcome of one batch: either a single short-circuit
// descriptor or an ordered per-action result list.
type Result struct {
	Status int
	Single *agent.Action
	Batch  []*agent.Action
}

// Payload returns the JSON-serializable response body.
func (r *Result) Payload() any {
	if r.Single != nil {
		return r.Single
	}
	return r.Batch
}

// Service is the batch coordinator: prompt, completion, parse, then
// per-item isolated dispatch through the handler registry.
type Service struct {
	store    Store
	agent    Agent
	uploader storage.Uploader
	registry map[string]Handler
	metrics  *observability.Metrics
}

// NewService creates the AutoTask coordinator.
func NewService(s Store, a Agent, uploader storage.Uploader) *Service {
	return &Service{
		store:    s,
		agent:    a,
		uploader: uploader,
		registry: newRegistry(s),
		metrics:  observability.GlobalMetrics(),
	}
}

// Metrics exposes the pipeline counters.
func (svc *Service) Metrics() *observability.Metrics {
	return svc.metrics
}

// Process runs one instruction through the pipeline. user is nil when
// authentication failed; that short-circuits the whole batch and never
// invokes a handler.
func (svc *Service) Process(ctx context.Context, user *store.User, req *Request) *Result {
	svc.metrics.RecordInstruction()

	if utf8.RuneCountInString(req.Message) < minMessageLength {
		svc.metrics.RecordInstructionFailure()
		return &Result{
			Status: http.StatusOK,
			Single: agent.Failure(agent.ActionTooFewInfo),
		}
	}

	if user == nil {
		svc.metrics.RecordInstructionFailure()
		return &Result{
			Status: http.StatusUnauthorized,
			Single: agent.Failure(agent.ActionAuthFailed),
		}
	}

	reqCtx := observability.NewRequestContext(slog.Default(), "autotask", user.ID)
	reqCtx.Info("processing instruction",
		slog.Int(observability.LogFieldMessageLen, len(req.Message)))

	actions := svc.agent.Propose(ctx, req.Message, time.Now(), req.Time)

	// Actions are independent and touch disjoint records; sequential
	// dispatch keeps results in submission order.
	results := make([]*agent.Action, 0, len(actions))
	for _, action := range actions {
		// Null batch elements are echoed back in place, never dispatched.
		if action != nil && action.Request == agent.RequestNull {
			results = append(results, action)
			continue
		}
		results = append(results, svc.dispatch(ctx, user.ID, action, req))
	}

	if len(results) == 0 {
		results = append(results, agent.Failure(agent.ActionInvalidKind))
	}

	reqCtx.Info("instruction processed",
		slog.Int(observability.LogFieldBatchSize, len(results)),
		slog.Int64(observability.LogFieldDuration, reqCtx.DurationMs()))

	return &Result{
		Status: http.StatusOK,
		Batch:  results,
	}
}

// dispatch runs one descriptor through validate, persist and confirm.
// A panic inside a handler is converted to that item's own failed
// result and never aborts sibling items.
func (svc *Service) dispatch(ctx context.Context, userID int32, action *agent.Action, req *Request) (result *agent.Action) {
	var spec *agent.KindSpec
	start := time.Now()
	defer func() {
		kind := "unknown"
		if spec != nil {
			kind = spec.Kind
		}
		svc.metrics.RecordDispatch(kind, time.Since(start), result != nil && result.Request == agent.RequestFailed)
	}()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("handler panic recovered", "panic", r)
			name := agent.ActionInvalidKind
			if spec != nil {
				name = spec.Display
			}
			result = agent.Failure(name)
		}
	}()

	if action == nil {
		return agent.Failure(agent.ActionInvalidKind)
	}

	spec = agent.LookupKind(action.ActionName)
	if spec == nil {
		return agent.Failure(agent.ActionInvalidKind)
	}

	if spec.NeedsMedia && len(req.File) == 0 {
		return agent.Failure(agent.ActionMediaRequired)
	}

	if !spec.Validate(action.Values) {
		return agent.Failure("Data Missing in " + spec.Display)
	}

	var upload *storage.UploadResult
	if spec.NeedsMedia {
		var err error
		upload, err = svc.uploader.Upload(ctx, req.Filename, req.File)
		if err != nil {
			slog.Warn("media upload failed", "kind", spec.Kind, "error", err)
			return agent.Failure(spec.Display)
		}
	}

	handler := svc.registry[spec.Kind]
	if err := handler.Persist(ctx, action, userID, upload); err != nil {
		slog.Warn("failed to persist action", "kind", spec.Kind, "error", err)
		return agent.Failure(spec.Display)
	}

	// A notification is itself a notification; everything else gets a
	// confirmation.
	if spec.Kind != "notification" {
		emitConfirmation(ctx, svc.store, action, userID, spec.Label)
	}

	action.Request = agent.RequestAccepted
	return action
}
