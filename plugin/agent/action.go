package agent

import (
	"fmt"
	"strconv"
)

// Request outcome markers set by the dispatch pipeline, never by the model.
const (
	RequestAccepted = "accepted"
	RequestFailed   = "failed"
	// RequestNull marks a placeholder for a null batch element. It is
	// echoed back as-is and never dispatched.
	RequestNull = "null"
)

// Sentinel action names surfaced to the caller instead of a kind.
const (
	ActionInvalidRequest = "Invalid Request" // unparseable model output
	ActionInvalidKind    = "Invalid request" // parsed fine, unknown kind
	ActionTooFewInfo     = "Too Few Information"
	ActionAuthFailed     = "Authentication Failed"
	ActionMediaRequired  = "Media Required"
)

// Action is the structured descriptor the model must emit, one per
// recognized user intent. The same shape is echoed back to the caller
// with Request filled in, so the field names are part of the API.
type Action struct {
	IsAction   bool           `json:"isAction"`
	IsDone     bool           `json:"isDone,omitempty"`
	ActionName string         `json:"actionName"`
	Values     map[string]any `json:"values,omitempty"`
	Request    string         `json:"request,omitempty"`
	Date       string         `json:"date,omitempty"`
	Time       string         `json:"time,omitempty"`
}

// InvalidRequest returns the descriptor used when the model output could
// not be parsed at all.
func InvalidRequest() *Action {
	return &Action{
		IsAction:   false,
		ActionName: ActionInvalidRequest,
		Request:    RequestFailed,
	}
}

// Failure returns a failed result carrying the given action name.
func Failure(name string) *Action {
	return &Action{
		IsAction:   false,
		ActionName: name,
		Request:    RequestFailed,
	}
}

// String reads a values entry as a string. Numbers are rendered rather
// than dropped since the model freely mixes the two.
func (a *Action) String(key string) string {
	v, ok := a.Values[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Float reads a values entry as a float64, tolerating numeric strings.
func (a *Action) Float(key string) (float64, bool) {
	v, ok := a.Values[key]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int reads a values entry as an int32, tolerating numeric strings.
func (a *Action) Int(key string) (int32, bool) {
	f, ok := a.Float(key)
	if !ok {
		return 0, false
	}
	return int32(f), true
}

// Bool reads a values entry as a bool, tolerating "true"/"false" strings.
func (a *Action) Bool(key string) bool {
	v, ok := a.Values[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return false
		}
		return b
	default:
		return false
	}
}
