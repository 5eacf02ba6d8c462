package eew

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	tt := []struct {
		value    string
		expected int
	}{
		{"", 0},
		{"abc", 3},
		{"東京", 4},
		{"東京都２３区", 12},
		{"6弱から6強", 10},
		{"ｶﾀｶﾅ", 4},
	}
	for _, tc := range tt {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.expected, DisplayWidth(tc.value))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "東京  ", PadRight("東京", 6))
	assert.Equal(t, "4   ", PadRight("4", 4))
	assert.Equal(t, "福島県浜通り", PadRight("福島県浜通り", 4))
}
