package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Run("fenced array", func(t *testing.T) {
		raw := "```json\n[{\"isAction\":true,\"actionName\":\"feeding\",\"values\":{\"time\":\"10:00 AM\",\"type\":\"Bottle\",\"amount\":\"4oz\"}}]\n```"
		actions := ParseResponse(raw)
		require.Len(t, actions, 1)
		require.True(t, actions[0].IsAction)
		require.Equal(t, "feeding", actions[0].ActionName)
		require.Equal(t, "Bottle", actions[0].String("type"))
	})

	t.Run("bare single object wraps into slice", func(t *testing.T) {
		raw := `{"isAction":true,"actionName":"sleep","values":{}}`
		actions := ParseResponse(raw)
		require.Len(t, actions, 1)
		require.Equal(t, "sleep", actions[0].ActionName)
	})

	t.Run("multiple actions preserve order", func(t *testing.T) {
		raw := `[
			{"isAction":true,"actionName":"growth","values":{"date":"2025-08-03","height":40}},
			{"isAction":true,"actionName":"memory","values":{"title":"t","description":"d"}}
		]`
		actions := ParseResponse(raw)
		require.Len(t, actions, 2)
		require.Equal(t, "growth", actions[0].ActionName)
		require.Equal(t, "memory", actions[1].ActionName)
	})

	t.Run("null element becomes inline placeholder", func(t *testing.T) {
		raw := `[{"isAction":true,"actionName":"feeding","values":{}}, null]`
		actions := ParseResponse(raw)
		require.Len(t, actions, 2)
		require.Equal(t, "feeding", actions[0].ActionName)
		require.False(t, actions[1].IsAction)
		require.Equal(t, "invalid request", actions[1].ActionName)
		require.Equal(t, RequestNull, actions[1].Request)
	})

	t.Run("non-JSON collapses to invalid request", func(t *testing.T) {
		for _, raw := range []string{
			"Sure! Here is your data.",
			"```json\n{truncated",
			"",
			"[]",
		} {
			actions := ParseResponse(raw)
			require.Len(t, actions, 1, "input: %q", raw)
			require.False(t, actions[0].IsAction)
			require.Equal(t, ActionInvalidRequest, actions[0].ActionName)
			require.Equal(t, RequestFailed, actions[0].Request)
		}
	})

	t.Run("fenced with surrounding prose fails closed", func(t *testing.T) {
		raw := "Here you go:\n```json\n[{\"actionName\":\"feeding\"}]\n```\nLet me know!"
		actions := ParseResponse(raw)
		require.Len(t, actions, 1)
		require.Equal(t, ActionInvalidRequest, actions[0].ActionName)
	})
}

func TestStripFences(t *testing.T) {
	require.Equal(t, `[{"a":1}]`, stripFences("```json\n[{\"a\":1}]\n```"))
	require.Equal(t, `[{"a":1}]`, stripFences("```JSON\n[{\"a\":1}]\n```"))
	require.Equal(t, `[{"a":1}]`, stripFences(`[{"a":1}]`))
}

func TestActionValueCoercion(t *testing.T) {
	a := &Action{Values: map[string]any{
		"time":   "10:00 AM",
		"height": 40.5,
		"stock":  "12",
		"public": true,
		"flag":   "true",
		"empty":  nil,
	}}

	require.Equal(t, "10:00 AM", a.String("time"))
	require.Equal(t, "40.5", a.String("height"))
	require.Equal(t, "", a.String("empty"))
	require.Equal(t, "", a.String("missing"))

	h, ok := a.Float("height")
	require.True(t, ok)
	require.Equal(t, 40.5, h)

	n, ok := a.Int("stock")
	require.True(t, ok)
	require.Equal(t, int32(12), n)

	_, ok = a.Float("time")
	require.False(t, ok)

	require.True(t, a.Bool("public"))
	require.True(t, a.Bool("flag"))
	require.False(t, a.Bool("missing"))
}
