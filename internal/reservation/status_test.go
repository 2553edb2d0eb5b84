package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{"APPROVED", StatusApproved, false},
		{"Rejected", StatusRejected, false},
		{" canceled ", StatusCanceled, false},
		{"cancelled", "", true},
		{"confirmed", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransitionTable(t *testing.T) {
	all := []Status{StatusPending, StatusApproved, StatusRejected, StatusCanceled}

	allowed := map[Status][]Status{
		StatusPending:  {StatusApproved, StatusRejected, StatusCanceled},
		StatusApproved: {StatusCanceled},
		StatusRejected: {},
		StatusCanceled: {},
	}

	for from, nexts := range allowed {
		permitted := map[Status]bool{}
		for _, n := range nexts {
			permitted[n] = true
		}
		for _, to := range all {
			assert.Equal(t, permitted[to], from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusApproved.IsActive())
	assert.False(t, StatusRejected.IsActive())
	assert.False(t, StatusCanceled.IsActive())

	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
}
