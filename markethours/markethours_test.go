package markethours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ist(day, hour, min int) time.Time {
	// January 2024: the 1st is a Monday.
	return time.Date(2024, 1, day, hour, min, 0, 0, IST)
}

func TestIsOpen(t *testing.T) {
	t.Parallel()

	p := Default()

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"mid_session", ist(2, 11, 0), true},
		{"open_boundary", ist(2, 9, 15), true},
		{"close_boundary", ist(2, 15, 15), true},
		{"minute_before_open", ist(2, 9, 14), false},
		{"minute_after_close", ist(2, 15, 16), false},
		{"saturday", ist(6, 11, 0), false},
		{"sunday", ist(7, 11, 0), false},
		{"evening", ist(2, 18, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsOpen(tt.at))
		})
	}
}

func TestIsOpenConvertsToPolicyZone(t *testing.T) {
	t.Parallel()

	p := Default()

	// 05:30 UTC is 11:00 IST on the same Tuesday.
	utc := time.Date(2024, 1, 2, 5, 30, 0, 0, time.UTC)
	assert.True(t, p.IsOpen(utc))
}

func TestAllow(t *testing.T) {
	t.Parallel()

	p := Default()
	assert.NoError(t, p.Allow(ist(2, 11, 0)))

	err := p.Allow(ist(2, 18, 0))
	assert.ErrorIs(t, err, ErrMarketClosed)
	assert.Contains(t, err.Error(), "09:15-15:15")
}

func TestAllowBypass(t *testing.T) {
	t.Parallel()

	p := Default()
	p.Bypass = true
	assert.NoError(t, p.Allow(ist(2, 18, 0)))
	assert.NoError(t, p.Allow(ist(6, 11, 0)))
}
