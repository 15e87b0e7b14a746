package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimezone(t *testing.T) {
	loc, err := ParseTimezone("")
	require.NoError(t, err)
	require.Equal(t, time.UTC, loc)

	loc, err = ParseTimezone("Asia/Shanghai")
	require.NoError(t, err)
	require.Equal(t, "Asia/Shanghai", loc.String())

	loc, err = ParseTimezone("Not/AZone")
	require.Error(t, err)
	require.Equal(t, time.UTC, loc, "falls back to UTC")
}

func TestIsValidTimezone(t *testing.T) {
	require.True(t, IsValidTimezone("UTC"))
	require.True(t, IsValidTimezone("America/New_York"))
	require.False(t, IsValidTimezone("Mars/Olympus"))
}

func TestClockString(t *testing.T) {
	ref := time.Date(2025, 8, 3, 14, 5, 7, 0, time.UTC)

	require.Equal(t, "2:05:07 PM", ClockString(ref, time.UTC))
	require.Equal(t, "2:05:07 PM", ClockString(ref, nil))

	shanghai, err := ParseTimezone("Asia/Shanghai")
	require.NoError(t, err)
	require.Equal(t, "10:05:07 PM", ClockString(ref, shanghai))
}

func TestDateString(t *testing.T) {
	ref := time.Date(2025, 8, 3, 23, 30, 0, 0, time.UTC)

	require.Equal(t, "2025-08-03", DateString(ref, time.UTC))

	shanghai, err := ParseTimezone("Asia/Shanghai")
	require.NoError(t, err)
	require.Equal(t, "2025-08-04", DateString(ref, shanghai), "crosses midnight in the client zone")
}
