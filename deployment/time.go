package deployment

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DIRNAME_LAYOUT is the layout of the local time encoded at the start of a deployment directory (or file) name.
const DIRNAME_LAYOUT = "20060102_1504"

// ParseError is returned when a deployment directory name does not start with a DIRNAME_LAYOUT time.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse local time from '%s', %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Resolver derives UTC times from deployment directory names.
type Resolver struct {
	table Table
}

// NewResolver returns a new Resolver for 'tb'. The table is validated first.
func NewResolver(tb Table) (*Resolver, error) {

	err := tb.Validate()

	if err != nil {
		return nil, err
	}

	r := &Resolver{
		table: tb,
	}

	return r, nil
}

// Prefix returns the deployment prefix for 'deployment_id': its first 3 characters, up to the first "_".
func Prefix(deployment_id string) string {

	prefix := deployment_id

	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	prefix, _, _ = strings.Cut(prefix, "_")
	return prefix
}

// LocalTime returns the (zone-less) local time encoded in the first 13 characters of the base name of 'name'.
func LocalTime(name string) (time.Time, error) {

	base := filepath.Base(name)

	if len(base) < len(DIRNAME_LAYOUT) {
		return time.Time{}, &ParseError{Name: name, Err: fmt.Errorf("name is shorter than %s", DIRNAME_LAYOUT)}
	}

	t, err := time.Parse(DIRNAME_LAYOUT, base[:len(DIRNAME_LAYOUT)])

	if err != nil {
		return time.Time{}, &ParseError{Name: name, Err: err}
	}

	return t, nil
}

// TimeZone returns the time zone for 'deployment_id'.
func (r *Resolver) TimeZone(deployment_id string) (*time.Location, error) {

	e, err := r.table.Match(Prefix(deployment_id))

	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(e.TimeZone)

	if err != nil {
		return nil, fmt.Errorf("Failed to load time zone '%s', %w", e.TimeZone, err)
	}

	return loc, nil
}

// UTCTimeFromDeploymentName returns the UTC time for the local time encoded in 'name' (for example
// "20120615_1430_somefile") in the time zone of the deployment identified by 'deployment_id'. The UTC offset
// is resolved for that specific local time. Local times in the repeated hour of a fall-back transition resolve
// to standard time.
func (r *Resolver) UTCTimeFromDeploymentName(deployment_id string, name string) (time.Time, error) {

	local, err := LocalTime(name)

	if err != nil {
		return time.Time{}, err
	}

	loc, err := r.TimeZone(deployment_id)

	if err != nil {
		return time.Time{}, err
	}

	t := time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), 0, 0, loc)
	t = PreferStandardTime(t)

	return t.UTC(), nil
}
