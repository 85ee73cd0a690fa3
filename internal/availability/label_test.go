package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLabel_Ordinals(t *testing.T) {
	testCases := []struct {
		day      int
		expected string
	}{
		{1, "June 1st, 2025"},
		{2, "June 2nd, 2025"},
		{3, "June 3rd, 2025"},
		{4, "June 4th, 2025"},
		{11, "June 11th, 2025"},
		{12, "June 12th, 2025"},
		{13, "June 13th, 2025"},
		{21, "June 21st, 2025"},
		{22, "June 22nd, 2025"},
		{23, "June 23rd, 2025"},
		{30, "June 30th, 2025"},
	}

	for _, tc := range testCases {
		d := time.Date(2025, time.June, tc.day, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tc.expected, FormatLabel(d, 999), "day %d", tc.day)
	}
}

func TestFormatLabel_RemainingSuffix(t *testing.T) {
	d := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "June 15th, 2025 (5 places remaining)", FormatLabel(d, 5))
	assert.Equal(t, "June 15th, 2025 (1 place remaining)", FormatLabel(d, 1))
	assert.Equal(t, "June 15th, 2025 (998 places remaining)", FormatLabel(d, 998))
	// 999 и выше считается неограниченной вместимостью
	assert.Equal(t, "June 15th, 2025", FormatLabel(d, 999))
	assert.Equal(t, "June 15th, 2025", FormatLabel(d, 1500))
}
