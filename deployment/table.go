package deployment

import (
	"fmt"
	"strings"
	"time"
)

// Entry maps a deployment prefix to the name of a time zone in the IANA database.
type Entry struct {
	Prefix   string `yaml:"prefix" json:"prefix"`
	TimeZone string `yaml:"time_zone" json:"time_zone"`
}

// Table is an ordered list of Entry instances. It is read-only once loaded and safe for concurrent use.
type Table []Entry

// ConfigurationError is returned when a deployment prefix matches zero, or more than one, entries in a Table.
type ConfigurationError struct {
	Prefix  string
	Matches int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("Can't infer time zone for deployment %s (%d matching entries), the deployment time zones table must have exactly 1 matching entry", e.Prefix, e.Matches)
}

// Match returns the single Entry whose prefix is a prefix of 'deployment_prefix', or a *ConfigurationError.
func (tb Table) Match(deployment_prefix string) (Entry, error) {

	matches := make([]Entry, 0)

	for _, e := range tb {

		if strings.HasPrefix(deployment_prefix, e.Prefix) {
			matches = append(matches, e)
		}
	}

	if len(matches) != 1 {
		return Entry{}, &ConfigurationError{Prefix: deployment_prefix, Matches: len(matches)}
	}

	return matches[0], nil
}

// Validate ensures that every time zone in the table can be loaded.
func (tb Table) Validate() error {

	for _, e := range tb {

		_, err := time.LoadLocation(e.TimeZone)

		if err != nil {
			return fmt.Errorf("Invalid time zone '%s' for deployment prefix '%s', %w", e.TimeZone, e.Prefix, err)
		}
	}

	return nil
}
