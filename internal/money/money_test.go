package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"₸18", 1800},
		{"$24", 2400},
		{"24", 2400},
		{"24.50", 2450},
		{"24,50", 2450},
		{"  ₸12.05 ", 1205},
		{"", 0},
		{"abc", 0},
		{"₸", 0},
		{"1.2.3", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToMinorUnits(tt.input), "input %q", tt.input)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "₸12", Format(MinorUnits(1200)))
	assert.Equal(t, "₸12.50", Format(MinorUnits(1250)))
	assert.Equal(t, "₸48", Format(DisplayString("$48")))
	assert.Equal(t, "₸48.50", Format(DisplayString("48,50")))
	assert.Equal(t, "₸48.50", Format(MajorUnits(48.5)))
	assert.Equal(t, "₸0", Format(MinorUnits(0)))
}

func TestFormatMinorNegative(t *testing.T) {
	// Negative amounts never occur through the modeled flows, but a
	// hand-edited price_cents column reaches FormatMinor via the stores.
	assert.Equal(t, "₸-1.50", FormatMinor(-150))
	assert.Equal(t, "₸-12", FormatMinor(-1200))
	assert.Equal(t, "₸-0.05", FormatMinor(-5))
}

func TestFormatNilIsPlaceholder(t *testing.T) {
	// An absent price must stay distinguishable from a free item.
	assert.Equal(t, "—", Format(nil))
	assert.NotEqual(t, Format(nil), Format(MinorUnits(0)))
}

func TestRoundTrip(t *testing.T) {
	// Whole and two-decimal amounts survive a format/parse cycle.
	for c := int64(0); c < 10000; c++ {
		assert.Equal(t, c, ToMinorUnits(FormatMinor(c)), "minor units %d", c)
	}
	assert.Equal(t, int64(123456789), ToMinorUnits(FormatMinor(123456789)))
}
