package xmp

import (
	"fmt"
)

// Yaw is a compass bearing, in degrees clockwise from north, and its reference label (typically "M"
// for magnetic north or "T" for true north).
type Yaw struct {
	Degrees float64
	Ref     string
}

// NormalizeYaw normalizes 'yaw', which may be nil, a number or a string, and its reference label. It returns
// nil if the bearing is absent or missing, in which case the reference label is discarded too. Values below
// zero or above 360 are wrapped once; values outside (-360, 720) are not wrapped further.
//
// Magnetic declination is not corrected for; the reference label is passed through as-is.
func NormalizeYaw(yaw interface{}, yaw_ref string) (*Yaw, error) {

	var degrees float64

	switch v := yaw.(type) {
	case nil:
		return nil, nil
	case float64:
		degrees = v
	case float32:
		degrees = float64(v)
	case int:
		degrees = float64(v)
	case int64:
		degrees = float64(v)
	case string:

		f, ok, err := ParseRational(v)

		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, nil
		}

		degrees = f

	default:
		return nil, &ParseError{Value: fmt.Sprintf("%v", yaw), Reason: "unsupported yaw type"}
	}

	if IsMissing(degrees) {
		return nil, nil
	}

	if IsMissing(yaw_ref) {
		yaw_ref = ""
	}

	if degrees < 0 {
		degrees = degrees + 360
	} else if degrees > 360 {
		degrees = degrees - 360
	}

	y := &Yaw{
		Degrees: degrees,
		Ref:     yaw_ref,
	}

	return y, nil
}
