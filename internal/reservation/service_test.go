package reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaskresna/campus-booking-backend/internal/facility"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/clock"
)

// memoryRepo mimics the storage contract: the overlap check and the write
// happen under one lock, so concurrent submissions see a deterministic
// winner exactly like the serializable transaction in the real repository.
type memoryRepo struct {
	mu    sync.Mutex
	seq   int64
	items map[int64]*Reservation
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: map[int64]*Reservation{}}
}

func (m *memoryRepo) overlapsLocked(facilityID int64, start, end time.Time, excludeID int64) bool {
	for _, r := range m.items {
		if r.FacilityID != facilityID || r.ID == excludeID || !r.Status.IsActive() {
			continue
		}
		if r.StartTime.Before(end) && r.EndTime.After(start) {
			return true
		}
	}
	return false
}

func (m *memoryRepo) Create(ctx context.Context, res *Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.overlapsLocked(res.FacilityID, res.StartTime, res.EndTime, 0) {
		return ErrConflict
	}

	m.seq++
	res.ID = m.seq
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	cp := *res
	m.items[res.ID] = &cp
	return nil
}

func (m *memoryRepo) Reschedule(ctx context.Context, res *Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.items[res.ID]
	if !ok {
		return ErrNotFound
	}
	if m.overlapsLocked(res.FacilityID, res.StartTime, res.EndTime, res.ID) {
		return ErrConflict
	}

	stored.Purpose = res.Purpose
	stored.Attendees = res.Attendees
	stored.ProposalURL = res.ProposalURL
	stored.StartTime = res.StartTime
	stored.EndTime = res.EndTime
	stored.UpdatedAt = time.Now()
	return nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id int64) (*Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memoryRepo) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*Reservation
	for _, r := range m.items {
		if filter.RequesterID > 0 && r.RequesterID != filter.RequesterID {
			continue
		}
		if filter.FacilityID > 0 && r.FacilityID != filter.FacilityID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		cp := *r
		result = append(result, &cp)
	}
	return result, len(result), nil
}

func (m *memoryRepo) FindActiveByFacilityRange(ctx context.Context, facilityID int64, start, end time.Time) ([]*Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*Reservation
	for _, r := range m.items {
		if r.FacilityID != facilityID || !r.Status.IsActive() {
			continue
		}
		if r.StartTime.Before(end) && r.EndTime.After(start) {
			cp := *r
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (m *memoryRepo) UpdateStatus(ctx context.Context, id int64, status Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.items[id]
	if !ok {
		return ErrNotFound
	}
	r.Status = status
	return nil
}

type memoryFacilities struct {
	byID map[int64]*facility.Facility
}

func (m *memoryFacilities) GetByID(ctx context.Context, id int64) (*facility.Facility, error) {
	f, ok := m.byID[id]
	if !ok {
		return nil, facility.ErrNotFound
	}
	cp := *f
	return &cp, nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	titles []string
}

func (n *recordingNotifier) Notify(ctx context.Context, userID int64, title, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.titles = append(n.titles, title)
	return nil
}

type fixture struct {
	svc      Service
	repo     *memoryRepo
	notifier *recordingNotifier
}

// newFixture freezes "today" at 2025-06-01 with a 3-day lead time and one
// facility of capacity 50.
func newFixture(t *testing.T, mutate func(*facility.Facility)) *fixture {
	t.Helper()

	f := &facility.Facility{ID: 1, Capacity: 50, IsActive: true, Name: "Hall A"}
	if mutate != nil {
		mutate(f)
	}

	repo := newMemoryRepo()
	notifier := &recordingNotifier{}
	clk := clock.Fixed(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	svc := NewService(repo, &memoryFacilities{byID: map[int64]*facility.Facility{1: f}}, notifier, clk, time.UTC, 3)
	return &fixture{svc: svc, repo: repo, notifier: notifier}
}

func validRequest() CreateRequest {
	return CreateRequest{
		RequesterID: 7,
		FacilityID:  1,
		Date:        "2025-06-10",
		StartTime:   "10:00",
		EndTime:     "12:00",
		Purpose:     "Department seminar on distributed systems",
		Attendees:   20,
	}
}

func TestCreateHappyPath(t *testing.T) {
	fx := newFixture(t, nil)

	res, err := fx.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, StatusPending, res.Status)
	assert.NotZero(t, res.ID)
	assert.Equal(t, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC), res.StartTime)
	assert.Equal(t, time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC), res.EndTime)
	assert.Equal(t, []string{"Reservation submitted"}, fx.notifier.titles)
}

func TestCreateValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"bad date", func(r *CreateRequest) { r.Date = "10-06-2025" }, nil},
		{"start after end", func(r *CreateRequest) { r.StartTime = "13:00" }, nil},
		{"short purpose", func(r *CreateRequest) { r.Purpose = "gym" }, ErrPurposeTooShort},
		{"zero attendees", func(r *CreateRequest) { r.Attendees = 0 }, ErrInvalidAttendees},
		{"unknown facility", func(r *CreateRequest) { r.FacilityID = 99 }, facility.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t, nil)
			req := validRequest()
			tt.mutate(&req)

			_, err := fx.svc.Create(context.Background(), req)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCreateCapacityBoundary(t *testing.T) {
	fx := newFixture(t, nil)

	// Exactly at capacity succeeds.
	req := validRequest()
	req.Attendees = 50
	_, err := fx.svc.Create(context.Background(), req)
	require.NoError(t, err)

	// One above capacity fails, and the error names the limit.
	req2 := validRequest()
	req2.Attendees = 51
	req2.StartTime = "13:00"
	req2.EndTime = "14:00"
	_, err = fx.svc.Create(context.Background(), req2)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "50")
}

func TestCreateMaintenanceBlackout(t *testing.T) {
	until := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	reason := "roof repairs"
	fx := newFixture(t, func(f *facility.Facility) {
		f.MaintenanceUntil = &until
		f.MaintenanceReason = &reason
	})

	req := validRequest()
	req.Date = "2025-06-20"
	_, err := fx.svc.Create(context.Background(), req)

	require.ErrorIs(t, err, ErrMaintenance)
	assert.Contains(t, err.Error(), "roof repairs")
	assert.Contains(t, err.Error(), "2025-07-01")
}

func TestCreateExpiredMaintenanceWindowIgnored(t *testing.T) {
	until := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	fx := newFixture(t, func(f *facility.Facility) {
		f.MaintenanceUntil = &until
	})

	_, err := fx.svc.Create(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestCreateLeadTimeRule(t *testing.T) {
	fx := newFixture(t, nil)

	// Two days out is too soon.
	req := validRequest()
	req.Date = "2025-06-03"
	_, err := fx.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrLeadTime)

	// Exactly three days out is accepted, regardless of time of day.
	req.Date = "2025-06-04"
	_, err = fx.svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateLeadTimeAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Clocks spring forward on 2026-03-08, so only 71 hours separate the
	// midnights of 03-06 and 03-09. The lead time counts calendar days,
	// not hours, so three days ahead must still be accepted.
	f := &facility.Facility{ID: 1, Capacity: 50, IsActive: true, Name: "Hall A"}
	repo := newMemoryRepo()
	clk := clock.Fixed(time.Date(2026, 3, 6, 10, 0, 0, 0, loc))
	svc := NewService(repo, &memoryFacilities{byID: map[int64]*facility.Facility{1: f}}, &recordingNotifier{}, clk, loc, 3)

	req := validRequest()
	req.Date = "2026-03-09"
	_, err = svc.Create(context.Background(), req)
	require.NoError(t, err)

	// Two days out still fails on the other side of the transition.
	tooSoon := validRequest()
	tooSoon.Date = "2026-03-08"
	tooSoon.StartTime = "13:00"
	tooSoon.EndTime = "14:00"
	_, err = svc.Create(context.Background(), tooSoon)
	assert.ErrorIs(t, err, ErrLeadTime)
}

func TestCreateConflictScenarios(t *testing.T) {
	fx := newFixture(t, nil)

	// Existing approved reservation 10:00-12:00.
	first, err := fx.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.NoError(t, fx.repo.UpdateStatus(context.Background(), first.ID, StatusApproved))

	// Overlapping request is rejected.
	overlapping := validRequest()
	overlapping.RequesterID = 8
	overlapping.StartTime = "11:00"
	overlapping.EndTime = "13:00"
	_, err = fx.svc.Create(context.Background(), overlapping)
	assert.ErrorIs(t, err, ErrConflict)

	// Back-to-back request starting at the other's end is accepted.
	adjacent := validRequest()
	adjacent.RequesterID = 8
	adjacent.StartTime = "12:00"
	adjacent.EndTime = "13:00"
	_, err = fx.svc.Create(context.Background(), adjacent)
	assert.NoError(t, err)

	// A canceled reservation frees its slot.
	_, err = fx.svc.Cancel(context.Background(), first.ID, 7)
	require.NoError(t, err)

	retry := validRequest()
	retry.RequesterID = 9
	_, err = fx.svc.Create(context.Background(), retry)
	assert.NoError(t, err)
}

func TestConcurrentSubmissionsSingleWinner(t *testing.T) {
	fx := newFixture(t, nil)

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.RequesterID = int64(100 + i)
			_, errs[i] = fx.svc.Create(context.Background(), req)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrConflict)
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent submission must win the slot")
}

func TestEditRules(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	res, err := fx.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	// Only the owner may edit.
	newEnd := "13:00"
	_, err = fx.svc.Edit(ctx, res.ID, EditRequest{EndTime: &newEnd}, 999)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// Shifting within the reservation's own window must not conflict with itself.
	updated, err := fx.svc.Edit(ctx, res.ID, EditRequest{EndTime: &newEnd}, 7)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC), updated.EndTime)

	// The lead-time rule applies to the new requested date.
	tooSoon := "2025-06-02"
	_, err = fx.svc.Edit(ctx, res.ID, EditRequest{Date: &tooSoon}, 7)
	assert.ErrorIs(t, err, ErrLeadTime)

	// Approved reservations are frozen.
	require.NoError(t, fx.repo.UpdateStatus(ctx, res.ID, StatusApproved))
	_, err = fx.svc.Edit(ctx, res.ID, EditRequest{EndTime: &newEnd}, 7)
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestEditConflictsWithOtherReservation(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	first, err := fx.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.RequesterID = 8
	second.StartTime = "13:00"
	second.EndTime = "14:00"
	secondRes, err := fx.svc.Create(ctx, second)
	require.NoError(t, err)

	// Moving the second onto the first is rejected.
	newStart, newEnd := "11:00", "12:30"
	_, err = fx.svc.Edit(ctx, secondRes.ID, EditRequest{StartTime: &newStart, EndTime: &newEnd}, 8)
	assert.ErrorIs(t, err, ErrConflict)

	_ = first
}

func TestCancelRules(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	res, err := fx.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	// Non-owner cannot cancel.
	_, err = fx.svc.Cancel(ctx, res.ID, 999)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// Owner cancels a pending reservation.
	canceled, err := fx.svc.Cancel(ctx, res.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, StatusCanceled, canceled.Status)

	// Cancelling again is an invalid transition, not a no-op.
	_, err = fx.svc.Cancel(ctx, res.ID, 7)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelAfterEndTime(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	res, err := fx.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	// Rebuild the service with a clock past the reservation's end.
	late := clock.Fixed(time.Date(2025, 6, 10, 12, 30, 0, 0, time.UTC))
	svc := NewService(fx.repo, &memoryFacilities{byID: map[int64]*facility.Facility{1: {ID: 1, Capacity: 50, IsActive: true}}}, fx.notifier, late, time.UTC, 3)

	_, err = svc.Cancel(ctx, res.ID, 7)
	assert.ErrorIs(t, err, ErrAlreadyEnded)
}

func TestDecideTransitions(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	res, err := fx.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	// Approve a pending reservation; requester is notified.
	approved, err := fx.svc.Decide(ctx, res.ID, StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)
	assert.Contains(t, fx.notifier.titles, "Reservation approved")

	// Approved cannot be rejected afterwards.
	_, err = fx.svc.Decide(ctx, res.ID, StatusRejected)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// The status endpoint only accepts approve/reject.
	_, err = fx.svc.Decide(ctx, res.ID, StatusCanceled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDecideRejectedIsTerminal(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	res, err := fx.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = fx.svc.Decide(ctx, res.ID, StatusRejected)
	require.NoError(t, err)

	// Approving an already rejected reservation fails loudly.
	_, err = fx.svc.Decide(ctx, res.ID, StatusApproved)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// A rejected reservation no longer blocks the slot.
	retry := validRequest()
	retry.RequesterID = 8
	_, err = fx.svc.Create(ctx, retry)
	assert.NoError(t, err)
}

func TestAvailabilityEndToEnd(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	_, err := fx.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	slots, err := fx.svc.Availability(ctx, 1, "2025-06-10")
	require.NoError(t, err)
	require.Len(t, slots, 17)

	booked := 0
	for _, s := range slots {
		if !s.Available {
			booked++
		}
	}
	assert.Equal(t, 2, booked, "a 10:00-12:00 reservation occupies two hourly slots")

	// Unknown facility and malformed date both fail.
	_, err = fx.svc.Availability(ctx, 42, "2025-06-10")
	assert.ErrorIs(t, err, facility.ErrNotFound)
	_, err = fx.svc.Availability(ctx, 1, "June 10")
	assert.Error(t, err)
}
