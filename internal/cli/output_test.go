package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copiousfreetime/nickel"
)

func TestNewResultViewExplain(t *testing.T) {
	ref := time.Date(2008, 9, 18, 0, 0, 0, 0, time.UTC)
	res := nickel.Parse("dinner tomorrow at 7pm", ref)

	plainView := newResultView(res, ref, false)
	assert.Empty(t, plainView.Phrases)

	v := newResultView(res, ref, true)
	assert.Equal(t, []phraseView{
		{Text: "tomorrow", Matcher: "relative date"},
		{Text: "at 7pm", Matcher: "time point"},
	}, v.Phrases)
	require.Len(t, v.Occurrences, 1)
	assert.Equal(t, "19:00", v.Occurrences[0].StartTime)
	assert.Contains(t, v.Occurrences[0].RRule, "FREQ=DAILY")
	assert.Contains(t, v.Occurrences[0].RRule, "COUNT=1")
}

func TestNewAgendaViewOneBasedIndex(t *testing.T) {
	v := newAgendaView(testAgenda(2))

	require.Len(t, v.Days, 2)
	assert.Equal(t, "monday", v.Days[0].Weekday)
	assert.Equal(t, []slotView{{AllDay: true, Occurrence: 1}}, v.Days[0].Slots)
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := encode(new(bytes.Buffer), "toml", struct{}{})

	assert.EqualError(t, err, `cannot encode as "toml"`)
}
