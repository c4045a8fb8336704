package placemark

import (
	"strings"
	"time"

	"github.com/sfomuseum/go-media-placemark/deployment"
	"github.com/sfomuseum/go-media-placemark/xmp"
)

// remember these are Go's reference time layouts, not strftime patterns

var zoned_layouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
}

var local_layouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006:01:02 15:04:05",
	"2006-01-02",
}

// ParseTime parses an ISO-8601 date time string. If the string does not carry a UTC offset it is
// interpreted in 'loc', with standard time preferred for ambiguous local times. The result is returned in UTC.
func ParseTime(str_dt string, loc *time.Location) (time.Time, error) {

	str_dt = strings.TrimSpace(str_dt)

	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range zoned_layouts {

		t, err := time.Parse(layout, str_dt)

		if err == nil {
			return t.UTC(), nil
		}
	}

	for _, layout := range local_layouts {

		t, err := time.ParseInLocation(layout, str_dt, loc)

		if err == nil {
			return deployment.PreferStandardTime(t).UTC(), nil
		}
	}

	return time.Time{}, &xmp.ParseError{Value: str_dt, Reason: "not an ISO-8601 date time"}
}
