package placemark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {

	loc := losAngeles(t)

	tests := []struct {
		input string
		want  time.Time
	}{
		// PDT is UTC-7
		{input: "2012-06-15T14:30:00", want: time.Date(2012, 6, 15, 21, 30, 0, 0, time.UTC)},
		{input: "2012-06-15T14:30", want: time.Date(2012, 6, 15, 21, 30, 0, 0, time.UTC)},
		{input: "2012-06-15 14:30:00", want: time.Date(2012, 6, 15, 21, 30, 0, 0, time.UTC)},
		{input: "2012:06:15 14:30:00", want: time.Date(2012, 6, 15, 21, 30, 0, 0, time.UTC)},
		// PST is UTC-8
		{input: "2012-01-15T14:30:00", want: time.Date(2012, 1, 15, 22, 30, 0, 0, time.UTC)},
		// 01:30 happens twice on 2012-11-04, the PST reading wins
		{input: "2012-11-04T01:30:00", want: time.Date(2012, 11, 4, 9, 30, 0, 0, time.UTC)},
		{input: "2012-06-15T14:30:00Z", want: time.Date(2012, 6, 15, 14, 30, 0, 0, time.UTC)},
		{input: "2012-06-15T14:30:00+02:00", want: time.Date(2012, 6, 15, 12, 30, 0, 0, time.UTC)},
		{input: "2012-06-15T14:30:00-0500", want: time.Date(2012, 6, 15, 19, 30, 0, 0, time.UTC)},
		{input: "2012-06-15T14:30:00.50Z", want: time.Date(2012, 6, 15, 14, 30, 0, 500000000, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input, loc)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), got.String())
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseTimeDefaultsToUTC(t *testing.T) {
	got, err := ParseTime("2012-06-15T14:30:00", nil)
	require.NoError(t, err)
	assert.True(t, time.Date(2012, 6, 15, 14, 30, 0, 0, time.UTC).Equal(got))
}

func TestParseTimeInvalid(t *testing.T) {
	_, err := ParseTime("15/06/2012", nil)
	assert.Error(t, err)
}
