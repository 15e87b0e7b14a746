package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/cradlekit/cradle/plugin/ai"
)

// TaskAgent turns a free-text instruction into structured action
// descriptors by prompting an LLM and parsing its reply. The model
// output is untrusted input: a provider error or unparseable reply
// collapses into a single Invalid Request descriptor instead of
// surfacing to the caller.
type TaskAgent struct {
	llm ai.LLMService
}

// NewTaskAgent creates a task agent on top of an LLM service.
func NewTaskAgent(llm ai.LLMService) *TaskAgent {
	return &TaskAgent{llm: llm}
}

// Extract asks the model for actions and surfaces typed failures:
// ErrCompletionFailed for provider errors, ErrMalformedResponse for
// unparseable output.
func (a *TaskAgent) Extract(ctx context.Context, message string, now time.Time, clientTime string) ([]*Action, error) {
	system := BuildSystemPrompt()
	user := BuildUserMessage(message, now, clientTime)

	reply, err := a.llm.Complete(ctx, system, user)
	if err != nil {
		return nil, errors.Wrap(ErrCompletionFailed, err.Error())
	}

	return Parse(reply)
}

// Propose is the never-fails form of Extract: the returned slice is
// never empty, with any failure collapsed into a single Invalid Request
// descriptor. clientTime, when set, overrides the server clock in the
// prompt.
func (a *TaskAgent) Propose(ctx context.Context, message string, now time.Time, clientTime string) []*Action {
	actions, err := a.Extract(ctx, message, now, clientTime)
	if err != nil {
		slog.Warn("action extraction failed, treating as invalid request", "error", err)
		return []*Action{InvalidRequest()}
	}
	return actions
}
