package facility

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaskresna/campus-booking-backend/internal/pkg/clock"
)

type memoryRepo struct {
	seq  int64
	byID map[int64]*Facility
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: map[int64]*Facility{}}
}

func (m *memoryRepo) Create(ctx context.Context, f *Facility) error {
	m.seq++
	f.ID = m.seq
	cp := *f
	m.byID[f.ID] = &cp
	return nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id int64) (*Facility, error) {
	f, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (m *memoryRepo) List(ctx context.Context, filter Filter) ([]*Facility, int, error) {
	var result []*Facility
	for _, f := range m.byID {
		cp := *f
		result = append(result, &cp)
	}
	return result, len(result), nil
}

func (m *memoryRepo) Update(ctx context.Context, f *Facility) error {
	if _, ok := m.byID[f.ID]; !ok {
		return ErrNotFound
	}
	cp := *f
	m.byID[f.ID] = &cp
	return nil
}

func (m *memoryRepo) SetMaintenance(ctx context.Context, id int64, until *time.Time, reason *string) error {
	f, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	f.MaintenanceUntil = until
	f.MaintenanceReason = reason
	return nil
}

func (m *memoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService() (Service, *memoryRepo) {
	repo := newMemoryRepo()
	return NewService(repo, clock.Fixed(testNow)), repo
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Name: "  ", Capacity: 10, TypeID: 1, BuildingID: 1})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, CreateRequest{Name: "Hall A", Capacity: 0, TypeID: 1, BuildingID: 1})
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	f, err := svc.Create(ctx, CreateRequest{Name: " Hall A ", Capacity: 80, TypeID: 1, BuildingID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Hall A", f.Name)
	assert.True(t, f.IsActive)
}

func TestSetMaintenanceWindow(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	f, err := svc.Create(ctx, CreateRequest{Name: "Hall A", Capacity: 80, TypeID: 1, BuildingID: 1})
	require.NoError(t, err)

	// A window ending in the past is rejected.
	past := testNow.Add(-time.Hour)
	_, err = svc.SetMaintenance(ctx, f.ID, MaintenanceRequest{Until: &past})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	// A future window is stored with its reason.
	future := testNow.AddDate(0, 1, 0)
	reason := "roof repairs"
	updated, err := svc.SetMaintenance(ctx, f.ID, MaintenanceRequest{Until: &future, Reason: &reason})
	require.NoError(t, err)
	require.NotNil(t, updated.MaintenanceUntil)
	assert.True(t, updated.UnderMaintenance(testNow))
	assert.False(t, updated.UnderMaintenance(future.Add(time.Minute)))

	// A nil Until clears the window and its reason.
	cleared, err := svc.SetMaintenance(ctx, f.ID, MaintenanceRequest{})
	require.NoError(t, err)
	assert.Nil(t, cleared.MaintenanceUntil)
	assert.Nil(t, cleared.MaintenanceReason)

	stored, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.MaintenanceUntil)
}

func TestUpdatePartialFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	f, err := svc.Create(ctx, CreateRequest{Name: "Hall A", Capacity: 80, TypeID: 1, BuildingID: 1})
	require.NoError(t, err)

	capacity := 120
	inactive := false
	updated, err := svc.Update(ctx, f.ID, UpdateRequest{Capacity: &capacity, IsActive: &inactive})
	require.NoError(t, err)

	assert.Equal(t, 120, updated.Capacity)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Hall A", updated.Name)

	bad := 0
	_, err = svc.Update(ctx, f.ID, UpdateRequest{Capacity: &bad})
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = svc.Update(ctx, 999, UpdateRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}
