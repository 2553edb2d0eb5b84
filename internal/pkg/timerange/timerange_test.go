package timerange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		start   string
		end     string
		wantErr error
	}{
		{"valid range", "2025-06-10", "09:00", "10:00", nil},
		{"malformed date", "2025/06/10", "09:00", "10:00", ErrInvalidDate},
		{"month out of range", "2025-13-10", "09:00", "10:00", ErrInvalidDate},
		{"malformed start", "2025-06-10", "9am", "10:00", ErrInvalidClock},
		{"malformed end", "2025-06-10", "09:00", "25:00", ErrInvalidClock},
		{"start equals end", "2025-06-10", "10:00", "10:00", ErrStartNotBeforeEnd},
		{"start after end", "2025-06-10", "11:00", "10:00", ErrStartNotBeforeEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := New(tt.date, tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.date, rng.Date)
			assert.Equal(t, tt.start, rng.Start)
			assert.Equal(t, tt.end, rng.End)
		})
	}
}

func TestOverlaps(t *testing.T) {
	mk := func(date, start, end string) TimeRange {
		rng, err := New(date, start, end)
		require.NoError(t, err)
		return rng
	}

	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{"identical", mk("2025-06-10", "10:00", "12:00"), mk("2025-06-10", "10:00", "12:00"), true},
		{"partial overlap", mk("2025-06-10", "10:00", "12:00"), mk("2025-06-10", "11:00", "13:00"), true},
		{"containment", mk("2025-06-10", "10:00", "14:00"), mk("2025-06-10", "11:00", "12:00"), true},
		{"back to back", mk("2025-06-10", "09:00", "10:00"), mk("2025-06-10", "10:00", "11:00"), false},
		{"disjoint", mk("2025-06-10", "09:00", "10:00"), mk("2025-06-10", "14:00", "15:00"), false},
		{"different dates", mk("2025-06-10", "10:00", "12:00"), mk("2025-06-11", "10:00", "12:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap must be symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRoundTrip(t *testing.T) {
	loc := time.UTC
	rng, err := New("2025-06-10", "09:30", "11:00")
	require.NoError(t, err)

	start := rng.StartTime(loc)
	end := rng.EndTime(loc)
	assert.Equal(t, time.Date(2025, 6, 10, 9, 30, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 6, 10, 11, 0, 0, 0, loc), end)

	assert.Equal(t, rng, FromTimes(start, end, loc))
}
