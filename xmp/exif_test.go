package xmp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) (*Graph, error) {

	t.Helper()

	path := filepath.Join("fixtures", name)
	fh, err := os.Open(path)
	require.NoError(t, err)

	defer fh.Close()

	return ReadGraph(fh, name)
}

func TestReadGraphExif(t *testing.T) {

	g, err := readFixture(t, "geotagged.jpg")
	require.NoError(t, err)

	dt, err := g.Get("exif:DateTimeOriginal")
	require.NoError(t, err)
	assert.Equal(t, "2014-09-01T15:03:47", dt)

	lat, ok, err := g.GetDegMin("exif:GPSLatitude", Latitude)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 59.332547222, lat, 1e-8)

	lon, ok, err := g.GetDegMin("exif:GPSLongitude", Longitude)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 18.064941667, lon, 1e-8)

	dir, err := g.Get("exif:GPSImgDirection")
	require.NoError(t, err)
	assert.Equal(t, "18329/175", dir)

	deg, ok, err := ParseRational(dir)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 104.737, deg, 1e-3)

	ref, err := g.Get("exif:GPSImgDirectionRef")
	require.NoError(t, err)
	assert.Equal(t, "T", ref)

	str_make, err := g.Get("tiff:Make")
	require.NoError(t, err)
	assert.Equal(t, "Apple", str_make)

	model, err := g.Get("tiff:Model")
	require.NoError(t, err)
	assert.Equal(t, "iPhone 4S", model)
}

func TestReadGraphExifWithEmbeddedXMP(t *testing.T) {

	g, err := readFixture(t, "geotagged_ascii.jpg")
	require.NoError(t, err)

	// from the XMP packet
	v, err := g.Get("GPano:ProjectionType")
	require.NoError(t, err)
	assert.Equal(t, "equirectangular", v)

	// from the EXIF block, where the coordinates are stored as ASCII
	lat, ok, err := g.GetDegMin("exif:GPSLatitude", Latitude)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 52.842781056, lat, 1e-8)

	lon, ok, err := g.GetDegMin("exif:GPSLongitude", Longitude)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 11.182856556, lon, 1e-8)

	dt, err := g.Get("exif:DateTimeOriginal")
	require.NoError(t, err)
	assert.Equal(t, "2014-04-26T19:09:19", dt)
}

func TestReadGraphXMPOverridesExif(t *testing.T) {

	g, err := readFixture(t, "geotagged_xmp.jpg")
	require.NoError(t, err)

	dt, err := g.Get("exif:DateTimeOriginal")
	require.NoError(t, err)
	assert.Equal(t, "2014-09-01T16:10:00", dt)

	dir, err := g.Get("exif:GPSImgDirection")
	require.NoError(t, err)
	assert.Equal(t, "90/1", dir)

	// only present in the EXIF block
	lat, ok, err := g.GetDegMin("exif:GPSLatitude", Latitude)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 59.332547222, lat, 1e-8)

	ref, err := g.Get("exif:GPSImgDirectionRef")
	require.NoError(t, err)
	assert.Equal(t, "T", ref)
}

func TestReadGraphExifInvalidDateTime(t *testing.T) {

	_, err := readFixture(t, "bad_datetime.jpg")
	require.Error(t, err)

	var parse_err *ParseError
	require.True(t, errors.As(err, &parse_err), err.Error())
	assert.Equal(t, "not a date/time....", parse_err.Value)
}

func TestParseDegreesString(t *testing.T) {

	tests := []struct {
		input string
		want  []float64
	}{
		{input: "52,00000,50,00000,34,01180", want: []float64{52, 50, 34.0118}},
		{input: "52,50,34.0118", want: []float64{52, 50, 34.0118}},
		{input: "52 50 34.0118", want: []float64{52, 50, 34.0118}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDegreesString(tt.input)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, got, 1e-9)
		})
	}

	for _, input := range []string{"", "52,50", "a,b,c"} {
		_, err := parseDegreesString(input)
		assert.Error(t, err, input)
	}
}
