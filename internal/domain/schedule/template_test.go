package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	iv, err := ParseInterval("09:00-12:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60, iv.Start)
	assert.Equal(t, 12*60+30, iv.End)
	assert.Equal(t, "09:00-12:30", iv.String())
}

func TestParseIntervalRejectsInvalid(t *testing.T) {
	cases := []string{
		"09:00",
		"9h-10h",
		"10:00-09:00",
		"10:00-10:00",
		"25:00-26:00",
	}
	for _, c := range cases {
		_, err := ParseInterval(c)
		assert.Error(t, err, c)
	}
}

func TestDayIntervalsSorted(t *testing.T) {
	w := WeekTemplate{
		time.Monday: {
			{Start: 14 * 60, End: 18 * 60},
			{Start: 9 * 60, End: 12 * 60},
		},
	}

	ivs := w.DayIntervals(time.Monday)
	require.Len(t, ivs, 2)
	assert.Equal(t, 9*60, ivs[0].Start)
	assert.Equal(t, 14*60, ivs[1].Start)

	assert.Empty(t, w.DayIntervals(time.Sunday))
}

func TestWeekTemplateRoundTrip(t *testing.T) {
	w := WeekTemplate{
		time.Monday:   {{Start: 9 * 60, End: 12 * 60}},
		time.Saturday: {{Start: 8 * 60, End: 13 * 60}},
	}

	v, err := w.Value()
	require.NoError(t, err)

	var got WeekTemplate
	require.NoError(t, got.Scan(v))
	assert.Equal(t, w, got)
}

func TestWeekTemplateScanEmpty(t *testing.T) {
	var w WeekTemplate
	require.NoError(t, w.Scan(nil))
	assert.Empty(t, w)

	require.NoError(t, w.Scan("{}"))
	assert.Empty(t, w)
}

func TestWeekTemplateScanInvalidDay(t *testing.T) {
	var w WeekTemplate
	err := w.Scan(`{"7": [{"inicio": "09:00", "fim": "10:00"}]}`)
	assert.Error(t, err)
}
