package xmp

import (
	"regexp"
	"strconv"
	"strings"
)

var re_rational = regexp.MustCompile(`(-?\d+)/(-?\d+)`)

// ParseRational parses 's' as either a "numerator/denominator" fraction or a plain float. The boolean
// return value is false if 's' is a fraction with a zero denominator, which is treated as "no value" rather
// than an error.
func ParseRational(s string) (float64, bool, error) {

	m := re_rational.FindStringSubmatch(s)

	if m != nil {

		num, err := strconv.ParseFloat(m[1], 64)

		if err != nil {
			return 0, false, &ParseError{Value: s, Reason: "invalid numerator", Err: err}
		}

		denom, err := strconv.ParseFloat(m[2], 64)

		if err != nil {
			return 0, false, &ParseError{Value: s, Reason: "invalid denominator", Err: err}
		}

		if denom == 0 {
			return 0, false, nil
		}

		return num / denom, true, nil
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)

	if err != nil {
		return 0, false, &ParseError{Value: s, Reason: "not a rational or float", Err: err}
	}

	return f, true, nil
}
