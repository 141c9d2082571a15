package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRunDate(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"compact", "20080918", time.Date(2008, 9, 18, 0, 0, 0, 0, loc), false},
		{"iso date", "2008-09-18", time.Date(2008, 9, 18, 0, 0, 0, 0, loc), false},
		{"date and time", "2008-09-18T14:30", time.Date(2008, 9, 18, 14, 30, 0, 0, loc), false},
		{"rfc3339", "2008-09-18T14:30:00Z", time.Date(2008, 9, 18, 14, 30, 0, 0, time.UTC), false},
		{"padded", "  20080918 ", time.Date(2008, 9, 18, 0, 0, 0, 0, loc), false},
		{"words", "next tuesday", time.Time{}, true},
		{"bad compact", "20081340", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRunDate(tt.input, loc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestSessionBadTimezone(t *testing.T) {
	_, err := execute(t, "", "parse", "--tz", "Mars/Olympus", "lunch tomorrow")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown timezone")
}

func TestSessionTimezoneFromConfig(t *testing.T) {
	path := setupConfigTest(t, "timezone: America/New_York\n")

	out, err := execute(t, "", "parse", "--config", path, "--run-date", "2008-09-18T10:00", "--explain", "lunch tomorrow")

	require.NoError(t, err)
	assert.Contains(t, out, "Run date: Thu Sep 18 2008 10:00 EDT")
}

func TestSessionBadRunDate(t *testing.T) {
	_, err := execute(t, "", "parse", "--run-date", "yesterday", "lunch tomorrow")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --run-date")
}
