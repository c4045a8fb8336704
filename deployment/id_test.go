package deployment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdSuffix(t *testing.T) {

	tests := map[string]string{
		"AMS001_dp0042_3":   "dp0042",
		"AMS001_dp0042":     "dp0042",
		"dp0042":            "dp0042",
		"AMS001_dp0042_3a":  "3a",
		"AMS001_dp0042_3_4": "3",
	}

	for input, want := range tests {
		assert.Equal(t, want, IdSuffix(input), input)
	}
}

func TestNewUUID(t *testing.T) {

	a := NewUUID()
	b := NewUUID()

	assert.NotEqual(t, a, b)

	u, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), u.Version())
}
