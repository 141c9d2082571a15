package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    Clock
		wantErr bool
	}{
		{input: "12", want: Clock{12, 0}},
		{input: "0545", want: Clock{5, 45}},
		{input: "000000", want: Clock{0, 0}},
		{input: "2359", want: Clock{23, 59}},
		{input: "24", wantErr: true},
		{input: "0960", wantErr: true},
		{input: "5", wantErr: true},
		{input: "ab", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockAdd(t *testing.T) {
	c, days := Clock{0, 0}.Add(5 * time.Minute)
	assert.Equal(t, Clock{0, 5}, c)
	assert.Equal(t, 0, days)

	c, days = Clock{0, 0}.Add(24 * time.Hour)
	assert.Equal(t, Clock{0, 0}, c)
	assert.Equal(t, 1, days)

	c, days = Clock{22, 30}.Add(3 * time.Hour)
	assert.Equal(t, Clock{1, 30}, c)
	assert.Equal(t, 1, days)

	c, days = Clock{1, 0}.Add(-2 * time.Hour)
	assert.Equal(t, Clock{23, 0}, c)
	assert.Equal(t, -1, days)
}

func TestClockOrdering(t *testing.T) {
	assert.True(t, Clock{9, 0}.Before(Clock{17, 0}))
	assert.False(t, Clock{21, 0}.Before(Clock{5, 0}))
	assert.True(t, Clock{12, 0}.IsPM())
	assert.False(t, Clock{0, 0}.IsPM())
}

func TestClockFormatting(t *testing.T) {
	assert.Equal(t, "05:45", Clock{5, 45}.String())
	assert.Equal(t, "5:45AM", Clock{5, 45}.Kitchen())
	assert.Equal(t, "12PM", Clock{12, 0}.Kitchen())
	assert.Equal(t, "12AM", Clock{0, 0}.Kitchen())
	assert.Equal(t, "9PM", Clock{21, 0}.Kitchen())
	assert.Equal(t, Clock{1, 15}, NewClock(25, 15))
}
