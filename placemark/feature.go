package placemark

import (
	"fmt"
	"sort"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// FeatureProperties maps Record keys to the GeoJSON Feature paths they are assigned to.
var FeatureProperties = map[string][]string{
	MIN_TIME: {"properties.geotag:min_time"},
	MAX_TIME: {"properties.geotag:max_time"},
	MIN_LAT:  {"properties.mz:min_latitude"},
	MAX_LAT:  {"properties.mz:max_latitude"},
	MIN_LON:  {"properties.mz:min_longitude"},
	MAX_LON:  {"properties.mz:max_longitude"},
	YAW:      {"properties.geotag:yaw"},
	YAW_REF:  {"properties.geotag:yaw_ref"},
}

// ApplyToFeature copies the values in 'rec' on to the GeoJSON Feature in 'body'. Only keys present in 'rec'
// are written; existing properties are never replaced with absent values. If the record has both a latitude
// and a longitude the Feature's geometry is replaced with a Point and mz:is_approximate is set to 0.
func ApplyToFeature(body []byte, rec Record) ([]byte, error) {

	if !gjson.GetBytes(body, "type").Exists() {
		return nil, fmt.Errorf("Invalid GeoJSON Feature, missing type")
	}

	keys := make([]string, 0, len(rec))

	for k := range rec {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var err error

	for _, k := range keys {

		paths, ok := FeatureProperties[k]

		if !ok {
			continue
		}

		v := rec[k]

		if t, ok := v.(time.Time); ok {
			v = t.Format(time.RFC3339)
		}

		for _, path := range paths {

			body, err = sjson.SetBytes(body, path, v)

			if err != nil {
				return nil, fmt.Errorf("Failed to assign %s property, %w", path, err)
			}
		}
	}

	t, ok := rec.Time(MIN_TIME)

	if ok {

		body, err = sjson.SetBytes(body, "properties.media:created", t.Unix())

		if err != nil {
			return nil, fmt.Errorf("Failed to assign media:created property, %w", err)
		}
	}

	lat, lat_ok := rec.Float(MIN_LAT)
	lon, lon_ok := rec.Float(MIN_LON)

	if lat_ok && lon_ok {

		updates := map[string]interface{}{
			"geometry.type":                "Point",
			"geometry.coordinates":         []float64{lon, lat},
			"properties.mz:is_approximate": 0,
		}

		for path, value := range updates {

			body, err = sjson.SetBytes(body, path, value)

			if err != nil {
				return nil, fmt.Errorf("Failed to assign %s, %w", path, err)
			}
		}
	}

	return body, nil
}
