package agent

import "github.com/pkg/errors"

// Typed failures of the extraction pipeline. Callers that need the
// distinction use errors.Is; the Propose path collapses both into an
// Invalid Request descriptor.
var (
	ErrCompletionFailed  = errors.New("completion failed")
	ErrMalformedResponse = errors.New("malformed model response")
)
