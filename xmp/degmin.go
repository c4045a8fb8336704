package xmp

import (
	"fmt"
	"strconv"
	"strings"
)

// Hemispheres defines the pair of letters used to sign a degree-minute coordinate.
type Hemispheres struct {
	// The letter for positive values (N or E)
	Positive string
	// The letter for negative values (S or W)
	Negative string
}

// Latitude is the Hemispheres pair for latitudes.
var Latitude = Hemispheres{Positive: "N", Negative: "S"}

// Longitude is the Hemispheres pair for longitudes.
var Longitude = Hemispheres{Positive: "E", Negative: "W"}

// ParseDegMin converts a string of the form "<degrees>,<minutes><hemisphere>" (for example "34,6.5N") in
// to signed decimal degrees.
func ParseDegMin(s string, h Hemispheres) (float64, error) {

	if s == "" {
		return 0, &ParseError{Value: s, Reason: "empty degree-minute string"}
	}

	deg_min := s[:len(s)-1]
	hemisphere := s[len(s)-1:]

	parts := strings.Split(deg_min, ",")

	if len(parts) != 2 {
		return 0, &ParseError{Value: s, Reason: "expected <degrees>,<minutes>"}
	}

	deg, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)

	if err != nil {
		return 0, &ParseError{Value: s, Reason: "invalid degrees", Err: err}
	}

	min, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)

	if err != nil {
		return 0, &ParseError{Value: s, Reason: "invalid minutes", Err: err}
	}

	var sign float64

	switch hemisphere {
	case h.Positive:
		sign = 1
	case h.Negative:
		sign = -1
	default:
		reason := fmt.Sprintf("unexpected hemisphere letter, expected %s or %s", h.Positive, h.Negative)
		return 0, &ParseError{Value: s, Reason: reason}
	}

	return sign * (deg + min/60.0), nil
}
