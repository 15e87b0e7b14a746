package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKind(t *testing.T) {
	require.NotNil(t, LookupKind("feeding"))
	require.NotNil(t, LookupKind("Feeding"))
	require.NotNil(t, LookupKind(" DOCTOR_CONTACT "))
	require.Nil(t, LookupKind("unknown"))
	require.Nil(t, LookupKind(""))

	for _, name := range Kinds() {
		spec := LookupKind(name)
		require.NotNil(t, spec, "kind %s", name)
		require.Equal(t, name, spec.Kind)
		require.NotEmpty(t, spec.Display)
		require.NotEmpty(t, spec.Label)
		require.NotEmpty(t, spec.ValuesDoc)
	}
}

func TestKindSpecValidate(t *testing.T) {
	t.Run("feeding requires time type amount", func(t *testing.T) {
		spec := LookupKind("feeding")
		require.True(t, spec.Validate(map[string]any{
			"time": "10:00 AM", "type": "Bottle", "amount": "4oz",
		}))
		require.False(t, spec.Validate(map[string]any{
			"time": "10:00 AM", "type": "Bottle",
		}))
		require.False(t, spec.Validate(map[string]any{
			"time": "", "type": "Bottle", "amount": "4oz",
		}))
	})

	t.Run("growth needs date plus one measurement", func(t *testing.T) {
		spec := LookupKind("growth")
		require.True(t, spec.Validate(map[string]any{"date": "2025-08-03", "height": 40.0}))
		require.True(t, spec.Validate(map[string]any{"date": "2025-08-03", "weight": 5.2}))
		require.False(t, spec.Validate(map[string]any{"date": "2025-08-03"}))
		require.False(t, spec.Validate(map[string]any{"height": 40.0}))
		require.False(t, spec.Validate(map[string]any{
			"date": "2025-08-03", "height": nil, "weight": nil, "head": nil,
		}))
	})

	t.Run("memory needs media", func(t *testing.T) {
		spec := LookupKind("memory")
		require.True(t, spec.NeedsMedia)
		require.True(t, spec.Validate(map[string]any{"title": "t", "description": "d"}))
		require.False(t, spec.Validate(map[string]any{"title": "t"}))
	})

	t.Run("no other kind needs media", func(t *testing.T) {
		for _, name := range Kinds() {
			if name == "memory" {
				continue
			}
			require.False(t, LookupKind(name).NeedsMedia, "kind %s", name)
		}
	})

	t.Run("missing fields reported by name", func(t *testing.T) {
		spec := LookupKind("notification")
		missing, anyOfMissing := spec.MissingFields(map[string]any{"title": "t"})
		require.ElementsMatch(t, []string{"type", "message", "scheduledFor"}, missing)
		require.False(t, anyOfMissing)
	})
}
