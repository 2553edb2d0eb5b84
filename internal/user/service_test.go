package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaskresna/campus-booking-backend/internal/auth"
)

type memoryRepo struct {
	seq   int64
	byID  map[int64]*User
	names map[string]int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: map[int64]*User{}, names: map[string]int64{}}
}

func (m *memoryRepo) Create(ctx context.Context, u *User) error {
	if _, ok := m.names[u.Username]; ok {
		return ErrUsernameTaken
	}
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return ErrEmailAlreadyUsed
		}
	}
	m.seq++
	u.ID = m.seq
	cp := *u
	m.byID[u.ID] = &cp
	m.names[u.Username] = u.ID
	return nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memoryRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	id, ok := m.names[username]
	if !ok {
		return nil, ErrNotFound
	}
	return m.GetByID(ctx, id)
}

func (m *memoryRepo) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	var result []*User
	for _, u := range m.byID {
		cp := *u
		result = append(result, &cp)
	}
	return result, len(result), nil
}

func (m *memoryRepo) SetSuspended(ctx context.Context, id int64, suspended bool) error {
	u, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.IsSuspended = suspended
	return nil
}

func (m *memoryRepo) TouchLastLogin(ctx context.Context, id int64) error {
	return nil
}

// plainHasher avoids bcrypt cost in unit tests.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hash:" + plain, nil }

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hash:"+plain {
		return fmt.Errorf("mismatch")
	}
	return nil
}

func newTestService() (Service, *memoryRepo) {
	repo := newMemoryRepo()
	return NewService(repo, plainHasher{}), repo
}

func TestRegisterNormalizesInput(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), RegisterRequest{
		Username: "  DimasK ",
		FullName: " Dimas Kresna ",
		Email:    "Dimas@Campus.AC.ID",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "dimask", u.Username)
	assert.Equal(t, "Dimas Kresna", u.FullName)
	assert.Equal(t, "dimas@campus.ac.id", u.Email)
	assert.Equal(t, auth.RoleUser, u.Role)
	assert.False(t, u.IsSuspended)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "dimask",
		Email:    "dimas@campus.ac.id",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := RegisterRequest{Username: "dimask", Email: "a@campus.ac.id", Password: "supersecret"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	req.Email = "b@campus.ac.id"
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterRequest{
		Username: "dimask",
		Email:    "dimas@campus.ac.id",
		Password: "supersecret",
	})
	require.NoError(t, err)

	// Username matching is case-insensitive.
	u, err := svc.Login(ctx, "DimasK", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	// Wrong password and unknown user both yield the same error.
	_, err = svc.Login(ctx, "dimask", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "ghost", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Suspended accounts cannot log in even with valid credentials.
	require.NoError(t, repo.SetSuspended(ctx, registered.ID, true))
	_, err = svc.Login(ctx, "dimask", "supersecret")
	assert.ErrorIs(t, err, ErrSuspended)
}

func TestSuspendRules(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterRequest{
		Username: "student",
		Email:    "student@campus.ac.id",
		Password: "supersecret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Suspend(ctx, u.ID))
	stored, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsSuspended)

	require.NoError(t, svc.Unsuspend(ctx, u.ID))
	stored, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsSuspended)

	// Admins cannot be suspended.
	repo.byID[u.ID].Role = auth.RoleAdmin
	assert.ErrorIs(t, svc.Suspend(ctx, u.ID), ErrCannotSuspendAdmin)

	assert.ErrorIs(t, svc.Suspend(ctx, 999), ErrNotFound)
}
