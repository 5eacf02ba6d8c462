package eew

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntensity(t *testing.T) {
	tt := []struct {
		value    string
		expected Value[Intensity]
		label    string
		invalid  bool
	}{
		{value: "01", expected: Specified(Intensity1), label: "1"},
		{value: "04", expected: Specified(Intensity4), label: "4"},
		{value: "5-", expected: Specified(Intensity5Lower), label: "5弱"},
		{value: "5+", expected: Specified(Intensity5Upper), label: "5強"},
		{value: "6-", expected: Specified(Intensity6Lower), label: "6弱"},
		{value: "6+", expected: Specified(Intensity6Upper), label: "6強"},
		{value: "07", expected: Specified(Intensity7), label: "7"},
		{value: "//", expected: Unspecified[Intensity](), label: UnspecifiedLabel},
		{value: "05", invalid: true},
		{value: "00", invalid: true},
		{value: "7", invalid: true},
	}
	for _, tc := range tt {
		t.Run(tc.value, func(t *testing.T) {
			actual, err := ParseIntensity(tc.value)
			if tc.invalid {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, tc.label, actual.String())
		})
	}
}

func TestIntensity_Order(t *testing.T) {
	assert.Less(t, Intensity4, Intensity5Lower)
	assert.Less(t, Intensity5Upper, Intensity6Lower)
	assert.Less(t, Intensity6Upper, Intensity7)
}

func TestParseIntensityRange(t *testing.T) {
	tt := []struct {
		desc     string
		ee       string
		ff       string
		expected string
		open     bool
		single   bool
	}{
		{desc: "single class", ee: "04", ff: "04", expected: "4", single: true},
		{desc: "range", ee: "6+", ff: "6-", expected: "6弱から6強"},
		{desc: "open range", ee: "5+", ff: "//", expected: "5強以上", open: true},
		{desc: "both unset", ee: "//", ff: "//", expected: UnspecifiedLabel, single: true},
		{desc: "first sub-field unset", ee: "//", ff: "04", expected: "4から" + UnspecifiedLabel},
		{desc: "second sub-field unset", ee: "04", ff: "//", expected: "4以上", open: true},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := parseIntensityRange(tc.ee, tc.ff)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual.String())
			assert.Equal(t, tc.open, actual.IsOpen())
			assert.Equal(t, tc.single, actual.IsSingle())
		})
	}
}

func TestIntensityRange_MarshalJSON(t *testing.T) {
	actual, err := json.Marshal(IntensityRange{From: Specified(Intensity6Lower), To: Specified(Intensity6Upper)})
	require.NoError(t, err)
	assert.Equal(t, `"6弱から6強"`, string(actual))
}
