package xmp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDegMin(t *testing.T) {

	tests := []struct {
		name  string
		input string
		h     Hemispheres
		want  float64
	}{
		{name: "north", input: "34,6.5N", h: Latitude, want: 34.108333333},
		{name: "south", input: "34,6.5S", h: Latitude, want: -34.108333333},
		{name: "east", input: "122,24.6E", h: Longitude, want: 122.41},
		{name: "west", input: "122,24.6W", h: Longitude, want: -122.41},
		{name: "zero", input: "0,0N", h: Latitude, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDegMin(tt.input, tt.h)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestParseDegMinInvalid(t *testing.T) {

	tests := []struct {
		name  string
		input string
		h     Hemispheres
	}{
		{name: "unexpected hemisphere", input: "34,6.5X", h: Latitude},
		{name: "longitude letter for latitude", input: "34,6.5E", h: Latitude},
		{name: "no minutes", input: "34N", h: Latitude},
		{name: "bad degrees", input: "abc,6.5N", h: Latitude},
		{name: "empty", input: "", h: Latitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDegMin(tt.input, tt.h)
			require.Error(t, err)

			var parse_err *ParseError
			assert.True(t, errors.As(err, &parse_err))
		})
	}
}
