package eew

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tt := []struct {
		value     string
		expected  string
		latitude  float64
		longitude float64
		unset     bool
		invalid   bool
	}{
		{value: "N370 E1408", expected: "N37.0 E140.8", latitude: 37.0, longitude: 140.8},
		{value: "S350 W1403", expected: "S35.0 W140.3", latitude: -35.0, longitude: -140.3},
		{value: "N005 E0091", expected: "N00.5 E009.1", latitude: 0.5, longitude: 9.1},
		{value: "S000 W0000", expected: "S00.0 W000.0"},
		{value: "//// /////", expected: UnspecifiedLabel, unset: true},
		{value: "N37 E1408", invalid: true},
		{value: "X370 E1408", invalid: true},
		{value: "N370 N1408", invalid: true},
		{value: "N370E14080", invalid: true},
	}
	for _, tc := range tt {
		t.Run(tc.value, func(t *testing.T) {
			actual, err := ParsePosition(tc.value)
			if tc.invalid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual.String())
			position, ok := actual.Get()
			assert.Equal(t, !tc.unset, ok)
			if ok {
				assert.InDelta(t, tc.latitude, position.Latitude(), 1e-9)
				assert.InDelta(t, tc.longitude, position.Longitude(), 1e-9)
			}
		})
	}
}

func TestPosition_MarshalJSON(t *testing.T) {
	position, err := ParsePosition("N370 E1408")
	require.NoError(t, err)

	actual, err := json.Marshal(position)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lat": 37.0, "lon": 140.8}`, string(actual))
}
