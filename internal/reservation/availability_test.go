package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, time.UTC)
	require.NoError(t, err)
	return parsed
}

func TestBuildSlotGridEmpty(t *testing.T) {
	slots := BuildSlotGrid("2025-06-10", nil, time.UTC)

	require.Len(t, slots, 17)
	assert.Equal(t, "05:00", slots[0].Start)
	assert.Equal(t, "06:00", slots[0].End)
	assert.Equal(t, "21:00", slots[16].Start)
	assert.Equal(t, "22:00", slots[16].End)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s should be free", s.Start)
		assert.Empty(t, s.OccupiedBy)
	}
}

func TestBuildSlotGridProjection(t *testing.T) {
	active := []*Reservation{
		{
			StartTime:     ts(t, "2025-06-10 10:00"),
			EndTime:       ts(t, "2025-06-10 12:00"),
			Status:        StatusApproved,
			RequesterName: "Dimas Kresna",
			Purpose:       "Robotics club meetup",
		},
	}

	slots := BuildSlotGrid("2025-06-10", active, time.UTC)
	require.Len(t, slots, 17)

	byStart := map[string]Slot{}
	for _, s := range slots {
		byStart[s.Start] = s
	}

	// The reservation spans the 10:00 and 11:00 slots, nothing else.
	assert.False(t, byStart["10:00"].Available)
	assert.False(t, byStart["11:00"].Available)
	assert.Equal(t, "Dimas Kresna - Robotics club meetup", byStart["10:00"].OccupiedBy)

	assert.True(t, byStart["09:00"].Available)
	assert.True(t, byStart["12:00"].Available, "slot starting at the reservation end must be free")
}

func TestBuildSlotGridPartialSlotOverlap(t *testing.T) {
	// 10:30-11:30 touches both the 10:00 and 11:00 slots.
	active := []*Reservation{
		{
			StartTime:     ts(t, "2025-06-10 10:30"),
			EndTime:       ts(t, "2025-06-10 11:30"),
			Status:        StatusPending,
			RequesterName: "Siti Rahma",
			Purpose:       "Thesis defense rehearsal",
		},
	}

	slots := BuildSlotGrid("2025-06-10", active, time.UTC)

	byStart := map[string]Slot{}
	for _, s := range slots {
		byStart[s.Start] = s
	}

	assert.False(t, byStart["10:00"].Available)
	assert.False(t, byStart["11:00"].Available)
	assert.True(t, byStart["12:00"].Available)
	assert.True(t, byStart["09:00"].Available)
}
