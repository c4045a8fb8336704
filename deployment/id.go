package deployment

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var re_attempt = regexp.MustCompile(`_\d+$`)

// IdSuffix returns the last "_"-delimited token of 'request_id', ignoring a trailing "_<digits>" attempt number.
func IdSuffix(request_id string) string {

	request_id = re_attempt.ReplaceAllString(request_id, "")

	parts := strings.Split(request_id, "_")
	return parts[len(parts)-1]
}

// NewUUID returns a new random (version 4) UUID string.
func NewUUID() string {
	return uuid.NewString()
}
