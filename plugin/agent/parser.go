package agent

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

// Parse turns raw model output into descriptors. It strips markdown
// code fences, parses the remainder as JSON and normalizes single
// objects into one-element slices. Unparseable input yields
// ErrMalformedResponse.
func Parse(raw string) ([]*Action, error) {
	cleaned := stripFences(raw)

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &elements); err != nil {
		// Not an array. Try a single object.
		var single Action
		if err := json.Unmarshal([]byte(cleaned), &single); err != nil {
			return nil, errors.Wrap(ErrMalformedResponse, err.Error())
		}
		return []*Action{&single}, nil
	}

	if len(elements) == 0 {
		return nil, errors.Wrap(ErrMalformedResponse, "empty array")
	}

	actions := make([]*Action, 0, len(elements))
	for _, element := range elements {
		if isJSONNull(element) {
			actions = append(actions, nullPlaceholder())
			continue
		}
		var action Action
		if err := json.Unmarshal(element, &action); err != nil {
			slog.Warn("failed to parse model response element", "error", err)
			actions = append(actions, nullPlaceholder())
			continue
		}
		actions = append(actions, &action)
	}

	return actions, nil
}

// ParseResponse is the never-fails form of Parse: any failure collapses
// into a single Invalid Request descriptor. The returned slice is never
// empty and this function never panics past its boundary.
func ParseResponse(raw string) []*Action {
	actions, err := Parse(raw)
	if err != nil {
		slog.Warn("failed to parse model response", "error", err)
		return []*Action{InvalidRequest()}
	}
	return actions
}

// nullPlaceholder stands in for a null batch element so sibling actions
// keep their positions.
func nullPlaceholder() *Action {
	return &Action{
		IsAction:   false,
		ActionName: "invalid request",
		Request:    RequestNull,
	}
}

// stripFences removes markdown code-fence markers and the fence
// language tag the model tends to wrap its JSON in.
func stripFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```", "")
	cleaned = strings.TrimSpace(cleaned)
	// The fence tag survives fence removal as a bare prefix.
	for _, tag := range []string{"json", "JSON"} {
		if strings.HasPrefix(cleaned, tag) {
			cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, tag))
			break
		}
	}
	return cleaned
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
