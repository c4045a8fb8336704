package placemark

import (
	"errors"
	"testing"
	"time"

	"github.com/sfomuseum/go-media-placemark/xmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraph(values map[string]string) *xmp.Graph {

	full := make(map[string]string)

	for k, v := range values {
		full[xmp.NS_EXIF+k] = v
	}

	return xmp.NewGraph(map[string]string{"exif": xmp.NS_EXIF}, full)
}

func losAngeles(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	return loc
}

func TestNewRecordComplete(t *testing.T) {

	g := newTestGraph(map[string]string{
		"DateTimeOriginal":   "2012-06-15T14:30:00",
		"GPSLatitude":        "34,6.5N",
		"GPSLongitude":       "118,15.3W",
		"GPSImgDirection":    "-1000/100",
		"GPSImgDirectionRef": "M",
	})

	rec, err := NewRecord(g, &RecordOptions{TimeZone: losAngeles(t)})
	require.NoError(t, err)

	want_t := time.Date(2012, 6, 15, 21, 30, 0, 0, time.UTC)

	min_t, ok := rec.Time(MIN_TIME)
	require.True(t, ok)
	assert.True(t, want_t.Equal(min_t), min_t.String())
	assert.Equal(t, rec[MIN_TIME], rec[MAX_TIME])

	lat, ok := rec.Float(MIN_LAT)
	require.True(t, ok)
	assert.InDelta(t, 34.108333, lat, 1e-6)
	assert.Equal(t, rec[MIN_LAT], rec[MAX_LAT])

	lon, ok := rec.Float(MIN_LON)
	require.True(t, ok)
	assert.InDelta(t, -118.255, lon, 1e-6)
	assert.Equal(t, rec[MIN_LON], rec[MAX_LON])

	yaw, ok := rec.Float(YAW)
	require.True(t, ok)
	assert.InDelta(t, 350, yaw, 1e-9)

	ref, ok := rec.StringValue(YAW_REF)
	require.True(t, ok)
	assert.Equal(t, "M", ref)
}

func TestNewRecordTimeOnly(t *testing.T) {

	g := newTestGraph(map[string]string{
		"DateTimeOriginal": "2012-06-15T14:30:00Z",
	})

	rec, err := NewRecord(g, nil)
	require.NoError(t, err)

	assert.Len(t, rec, 2)
	assert.Contains(t, rec, MIN_TIME)
	assert.Contains(t, rec, MAX_TIME)
}

func TestNewRecordSentinels(t *testing.T) {

	g := newTestGraph(map[string]string{
		"DateTimeOriginal":   "2012-06-15T14:30:00-07:00",
		"GPSLatitude":        "0,0N",
		"GPSLongitude":       "118,15.3W",
		"GPSImgDirection":    "0/1",
		"GPSImgDirectionRef": "T",
	})

	rec, err := NewRecord(g, nil)
	require.NoError(t, err)

	assert.NotContains(t, rec, MIN_LAT)
	assert.NotContains(t, rec, MAX_LAT)
	assert.Contains(t, rec, MIN_LON)
	assert.NotContains(t, rec, YAW)
	assert.NotContains(t, rec, YAW_REF, "reference is discarded with the bearing")
}

func TestNewRecordEmptyReference(t *testing.T) {

	g := newTestGraph(map[string]string{
		"DateTimeOriginal": "2012-06-15T14:30:00Z",
		"GPSImgDirection":  "90",
	})

	rec, err := NewRecord(g, nil)
	require.NoError(t, err)

	assert.Contains(t, rec, YAW)
	assert.NotContains(t, rec, YAW_REF)
}

func TestNewRecordMissingTime(t *testing.T) {

	g := newTestGraph(map[string]string{
		"GPSLatitude": "34,6.5N",
	})

	_, err := NewRecord(g, nil)
	require.Error(t, err)

	var lookup_err *xmp.LookupError
	require.True(t, errors.As(err, &lookup_err))
	assert.Equal(t, FIELD_DATETIME_ORIGINAL, lookup_err.Field)
}

func TestNewRecordInvalidValues(t *testing.T) {

	tests := map[string]map[string]string{
		"bad time":       {"DateTimeOriginal": "yesterday"},
		"bad hemisphere": {"DateTimeOriginal": "2012-06-15T14:30:00Z", "GPSLatitude": "34,6.5E"},
		"bad direction":  {"DateTimeOriginal": "2012-06-15T14:30:00Z", "GPSImgDirection": "north"},
	}

	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewRecord(newTestGraph(values), nil)
			require.Error(t, err)

			var parse_err *xmp.ParseError
			assert.True(t, errors.As(err, &parse_err))
		})
	}
}

func TestNewRecordIdempotent(t *testing.T) {

	g := newTestGraph(map[string]string{
		"DateTimeOriginal":   "2012-06-15T14:30:00",
		"GPSLatitude":        "34,6.5N",
		"GPSImgDirection":    "370",
		"GPSImgDirectionRef": "T",
	})

	opts := &RecordOptions{TimeZone: losAngeles(t)}

	a, err := NewRecord(g, opts)
	require.NoError(t, err)

	b, err := NewRecord(g, opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRecordCopyTo(t *testing.T) {

	rec := Record{
		MIN_LAT: 34.1,
		MAX_LAT: 34.1,
	}

	target := map[string]interface{}{
		MIN_LAT: 1.0,
		MIN_LON: -118.0,
	}

	rec.CopyTo(target)

	assert.Equal(t, 34.1, target[MIN_LAT])
	assert.Equal(t, 34.1, target[MAX_LAT])
	assert.Equal(t, -118.0, target[MIN_LON], "absent keys do not overwrite the target")
}
