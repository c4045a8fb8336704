package xmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeYaw(t *testing.T) {

	tests := []struct {
		name    string
		yaw     interface{}
		ref     string
		want    *Yaw
		wantNil bool
	}{
		{name: "negative wraps", yaw: -10.0, ref: "M", want: &Yaw{Degrees: 350, Ref: "M"}},
		{name: "over 360 wraps", yaw: 370.0, ref: "T", want: &Yaw{Degrees: 10, Ref: "T"}},
		{name: "zero is missing", yaw: 0.0, ref: "M", wantNil: true},
		{name: "sentinel is missing", yaw: -999.0, ref: "M", wantNil: true},
		{name: "absent", yaw: nil, ref: "M", wantNil: true},
		{name: "rational string", yaw: "27150/100", ref: "T", want: &Yaw{Degrees: 271.5, Ref: "T"}},
		{name: "zero denominator", yaw: "10/0", ref: "T", wantNil: true},
		{name: "empty reference", yaw: 45.0, ref: "", want: &Yaw{Degrees: 45, Ref: ""}},
		{name: "int", yaw: 90, ref: "M", want: &Yaw{Degrees: 90, Ref: "M"}},
		{name: "exactly 360", yaw: 360.0, ref: "T", want: &Yaw{Degrees: 360, Ref: "T"}},
		{name: "single step only below", yaw: -400.0, ref: "T", want: &Yaw{Degrees: -40, Ref: "T"}},
		{name: "single step only above", yaw: 800.0, ref: "T", want: &Yaw{Degrees: 440, Ref: "T"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeYaw(tt.yaw, tt.ref)
			require.NoError(t, err)

			if tt.wantNil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.InDelta(t, tt.want.Degrees, got.Degrees, 1e-9)
			assert.Equal(t, tt.want.Ref, got.Ref)
		})
	}
}

func TestNormalizeYawInvalid(t *testing.T) {

	_, err := NormalizeYaw("south-ish", "M")
	assert.Error(t, err)

	_, err = NormalizeYaw(true, "M")
	assert.Error(t, err)
}
