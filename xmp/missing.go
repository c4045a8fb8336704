package xmp

// MissingSentinel is the in-band numeric value used to mean "no value".
const MissingSentinel = -999

// IsMissing reports whether 'v' is one of the values that stand in for "no value": numeric 0, numeric
// -999 or the empty string. A nil value is not considered missing; callers treat nil as absent.
func IsMissing(v interface{}) bool {

	switch t := v.(type) {
	case string:
		return t == ""
	case float64:
		return t == 0 || t == MissingSentinel
	case float32:
		return t == 0 || t == MissingSentinel
	case int:
		return t == 0 || t == MissingSentinel
	case int64:
		return t == 0 || t == MissingSentinel
	case int32:
		return t == 0 || t == MissingSentinel
	default:
		return false
	}
}

// CheckMissing returns nil if 'v' is missing (as defined by IsMissing) and 'v' otherwise.
func CheckMissing(v interface{}) interface{} {

	if IsMissing(v) {
		return nil
	}

	return v
}
