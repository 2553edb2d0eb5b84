package reservation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQueryDateWindowIsHalfOpen(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	sql, args, err := listQuery(Filter{DateFrom: &from, DateTo: &to}).ToSql()
	require.NoError(t, err)
	assert.Len(t, args, 2)

	// Lower bound keeps reservations still running on the first day.
	assert.Contains(t, sql, "r.end_time >= ")

	// Upper bound is exclusive: a reservation starting exactly at the
	// next-day midnight the handler passes stays out of the window.
	assert.Contains(t, sql, "r.start_time < ")
	assert.False(t, strings.Contains(sql, "r.start_time <= "), "date_to bound must be strict")
}

func TestListQueryDefaultsPaging(t *testing.T) {
	sql, _, err := listQuery(Filter{}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "LIMIT 20")
	assert.Contains(t, sql, "OFFSET 0")
}
