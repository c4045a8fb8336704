package deployment

import (
	"time"
)

// PreferStandardTime returns the standard time reading of 't' when its wall clock falls inside the repeated
// hour of a daylight saving fall-back transition. Otherwise 't' is returned unchanged.
func PreferStandardTime(t time.Time) time.Time {

	alt := t.Add(time.Hour)

	if alt.Hour() != t.Hour() || alt.Minute() != t.Minute() {
		return t
	}

	_, offset := t.Zone()
	_, alt_offset := alt.Zone()

	if alt_offset == offset {
		return t
	}

	return alt
}
