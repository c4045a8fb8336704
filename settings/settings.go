// Package settings loads the process-wide settings used when deriving placemark records: the default time
// zone for date times without a UTC offset and the table of deployment time zones.
package settings

import (
	"fmt"
	"os"
	"time"

	"github.com/sfomuseum/go-media-placemark/deployment"
	"gopkg.in/yaml.v3"
)

// DEFAULT_TIME_ZONE is the time zone used when a settings file does not specify one.
const DEFAULT_TIME_ZONE = "UTC"

// Settings maps directly to the structure of a settings YAML file:
//
//	time_zone: America/Los_Angeles
//	deployment_time_zones:
//	  - prefix: AMS
//	    time_zone: America/Los_Angeles
type Settings struct {
	TimeZone            string           `yaml:"time_zone" json:"time_zone"`
	DeploymentTimeZones deployment.Table `yaml:"deployment_time_zones" json:"deployment_time_zones"`
	location            *time.Location
}

// Load reads and parses the settings file at 'path'.
func Load(path string) (*Settings, error) {

	body, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("Failed to read settings file %s, %w", path, err)
	}

	s, err := Parse(body)

	if err != nil {
		return nil, fmt.Errorf("Failed to parse settings file %s, %w", path, err)
	}

	return s, nil
}

// Parse parses 'body' as settings YAML and validates every time zone it names.
func Parse(body []byte) (*Settings, error) {

	var s *Settings

	err := yaml.Unmarshal(body, &s)

	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal settings, %w", err)
	}

	if s == nil {
		s = new(Settings)
	}

	if s.TimeZone == "" {
		s.TimeZone = DEFAULT_TIME_ZONE
	}

	loc, err := time.LoadLocation(s.TimeZone)

	if err != nil {
		return nil, fmt.Errorf("Invalid time zone '%s', %w", s.TimeZone, err)
	}

	s.location = loc

	err = s.DeploymentTimeZones.Validate()

	if err != nil {
		return nil, err
	}

	return s, nil
}

// Default returns Settings with the DEFAULT_TIME_ZONE and no deployment time zones.
func Default() *Settings {

	s := &Settings{
		TimeZone: DEFAULT_TIME_ZONE,
		location: time.UTC,
	}

	return s
}

// Location returns the *time.Location for the default time zone.
func (s *Settings) Location() *time.Location {

	if s.location == nil {
		return time.UTC
	}

	return s.location
}

// Resolver returns a new *deployment.Resolver for the deployment time zones table.
func (s *Settings) Resolver() (*deployment.Resolver, error) {
	return deployment.NewResolver(s.DeploymentTimeZones)
}
