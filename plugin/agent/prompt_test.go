package agent

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt()

	// Every recognized kind and its value documentation must appear.
	for _, name := range Kinds() {
		require.Contains(t, prompt, name)
		require.Contains(t, prompt, LookupKind(name).ValuesDoc)
	}

	require.Contains(t, prompt, "single JSON array")
	require.Contains(t, prompt, `"Invalid Request"`)
	// Both example exchanges are present.
	require.Contains(t, prompt, "baby's height grew")
	require.Contains(t, prompt, "actionName:ERROR")
}

func TestBuildUserMessage(t *testing.T) {
	now := time.Date(2025, 8, 3, 20, 31, 0, 0, time.UTC)

	t.Run("server clock fallback", func(t *testing.T) {
		msg := BuildUserMessage("baby drank 4oz", now, "")
		require.True(t, strings.HasPrefix(msg, "baby drank 4oz. The date is "))
		require.Contains(t, msg, "Sun, 03 Aug 2025")
		require.Contains(t, msg, "and time is 20:31:00 UTC.")
	})

	t.Run("client time override", func(t *testing.T) {
		msg := BuildUserMessage("baby drank 4oz", now, "08:31 PM")
		require.Contains(t, msg, "and time is 08:31 PM.")
	})
}
