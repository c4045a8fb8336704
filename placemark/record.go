package placemark

import (
	"fmt"
	"time"

	"github.com/sfomuseum/go-media-placemark/xmp"
)

// Metadata fields read by NewRecord.
const (
	FIELD_DATETIME_ORIGINAL = "exif:DateTimeOriginal"
	FIELD_LATITUDE          = "exif:GPSLatitude"
	FIELD_LONGITUDE         = "exif:GPSLongitude"
	FIELD_DIRECTION         = "exif:GPSImgDirection"
	FIELD_DIRECTION_REF     = "exif:GPSImgDirectionRef"
)

// Record keys.
const (
	MIN_TIME = "minTime"
	MAX_TIME = "maxTime"
	MIN_LAT  = "minLat"
	MAX_LAT  = "maxLat"
	MIN_LON  = "minLon"
	MAX_LON  = "maxLon"
	YAW      = "yaw"
	YAW_REF  = "yawRef"
)

// Record is a normalized set of time (time.Time, UTC), position (float64), bearing (float64) and bearing
// reference (string) values for a single image. A key is only present if its value is not missing. Each
// min/max pair holds the same value; a single image is a zero-extent bounding box.
type Record map[string]interface{}

// RecordOptions defines options for deriving a Record.
type RecordOptions struct {
	// The time zone used for date times that do not specify a UTC offset. Defaults to UTC.
	TimeZone *time.Location
}

// NewRecord returns a new Record derived from the values in 'g'. It returns an error if the graph has no
// exif:DateTimeOriginal value or if any value that is present can not be parsed.
func NewRecord(g *xmp.Graph, opts *RecordOptions) (Record, error) {

	var loc *time.Location

	if opts != nil {
		loc = opts.TimeZone
	}

	str_dt, err := g.Get(FIELD_DATETIME_ORIGINAL)

	if err != nil {
		return nil, fmt.Errorf("Failed to derive timestamp, %w", err)
	}

	t, err := ParseTime(str_dt, loc)

	if err != nil {
		return nil, fmt.Errorf("Failed to parse %s, %w", FIELD_DATETIME_ORIGINAL, err)
	}

	lat, lat_ok, err := g.GetDegMin(FIELD_LATITUDE, xmp.Latitude)

	if err != nil {
		return nil, fmt.Errorf("Failed to derive latitude, %w", err)
	}

	lon, lon_ok, err := g.GetDegMin(FIELD_LONGITUDE, xmp.Longitude)

	if err != nil {
		return nil, fmt.Errorf("Failed to derive longitude, %w", err)
	}

	var yaw interface{}

	str_yaw, yaw_ok, err := g.Lookup(FIELD_DIRECTION)

	if err != nil {
		return nil, fmt.Errorf("Failed to derive yaw, %w", err)
	}

	if yaw_ok {
		yaw = str_yaw
	}

	yaw_ref, err := g.GetDefault(FIELD_DIRECTION_REF, "")

	if err != nil {
		return nil, fmt.Errorf("Failed to derive yaw reference, %w", err)
	}

	y, err := xmp.NormalizeYaw(yaw, yaw_ref)

	if err != nil {
		return nil, fmt.Errorf("Failed to normalize yaw, %w", err)
	}

	candidates := map[string]interface{}{
		MIN_TIME: t,
		MAX_TIME: t,
	}

	if lat_ok {
		candidates[MIN_LAT] = lat
		candidates[MAX_LAT] = lat
	}

	if lon_ok {
		candidates[MIN_LON] = lon
		candidates[MAX_LON] = lon
	}

	if y != nil {
		candidates[YAW] = y.Degrees
		candidates[YAW_REF] = y.Ref
	}

	rec := make(Record)

	for k, v := range candidates {

		if xmp.CheckMissing(v) != nil {
			rec[k] = v
		}
	}

	return rec, nil
}

// CopyTo copies each key in 'rec' to 'target'. Keys absent from 'rec' are left untouched in 'target'.
func (rec Record) CopyTo(target map[string]interface{}) {

	for k, v := range rec {
		target[k] = v
	}
}

// Time returns the time.Time value for 'k' and a boolean flag signaling whether it is present.
func (rec Record) Time(k string) (time.Time, bool) {
	t, ok := rec[k].(time.Time)
	return t, ok
}

// Float returns the float64 value for 'k' and a boolean flag signaling whether it is present.
func (rec Record) Float(k string) (float64, bool) {
	f, ok := rec[k].(float64)
	return f, ok
}

// StringValue returns the string value for 'k' and a boolean flag signaling whether it is present.
func (rec Record) StringValue(k string) (string, bool) {
	s, ok := rec[k].(string)
	return s, ok
}
