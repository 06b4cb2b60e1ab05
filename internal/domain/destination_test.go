package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStayLimits_Validate(t *testing.T) {
	tests := []struct {
		name    string
		limits  StayLimits
		wantErr bool
	}{
		{name: "ordered", limits: StayLimits{Minimum: 2, Optimum: 3, Maximum: 4}},
		{name: "all equal", limits: StayLimits{Minimum: 3, Optimum: 3, Maximum: 3}},
		{name: "all zero", limits: StayLimits{}},
		{name: "negative minimum", limits: StayLimits{Minimum: -1, Optimum: 0, Maximum: 1}, wantErr: true},
		{name: "optimum below minimum", limits: StayLimits{Minimum: 3, Optimum: 2, Maximum: 4}, wantErr: true},
		{name: "optimum above maximum", limits: StayLimits{Minimum: 1, Optimum: 5, Maximum: 4}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.limits.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidStayLimits))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStayLimits_Allows(t *testing.T) {
	limits := StayLimits{Minimum: 2, Optimum: 3, Maximum: 5}

	tests := []struct {
		stay int
		want bool
	}{
		{stay: 1, want: false},
		{stay: 2, want: true},
		{stay: 3, want: true},
		{stay: 5, want: true},
		{stay: 6, want: false},
		{stay: 7, want: false},
		{stay: -2, want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, limits.Allows(tt.stay), "stay %d", tt.stay)
	}
}

func TestStayLimits_Deviation(t *testing.T) {
	limits := StayLimits{Minimum: 2, Optimum: 3, Maximum: 5}

	assert.Equal(t, 0, limits.Deviation(3))
	assert.Equal(t, 1, limits.Deviation(2))
	assert.Equal(t, 2, limits.Deviation(5))
	assert.Equal(t, 5, limits.Deviation(-2))
}

func TestStayRecord_Limits(t *testing.T) {
	rec := StayRecord{Name: "Rome", Minimum: 2, Optimum: 3, Maximum: 4}
	assert.Equal(t, StayLimits{Minimum: 2, Optimum: 3, Maximum: 4}, rec.Limits())
}

func TestDestination_String(t *testing.T) {
	d := rome()
	assert.Equal(t, "Rome: night 20, flights 2, stay 2/3/4", d.String())
}
