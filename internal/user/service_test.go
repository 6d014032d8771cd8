package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhive/interview-booking-backend/internal/auth"
)

type fakeRepo struct {
	byEmail map[string]*User
	byID    map[string]*User
	seq     int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]*User{}, byID: map[string]*User{}}
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	f.seq++
	u.ID = "user-fake"
	u.CreatedAt = time.Now()
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeRepo) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	if u, ok := f.byID[id]; ok {
		u.LastLoginAt = &t
	}
	return nil
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*User, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) Update(_ context.Context, u *User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return ErrNotFound
	}
	f.byID[u.ID] = u
	return nil
}

func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, auth.NewBcryptPasswordHasherWithCost(4)), repo
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService()

	t.Run("valid enterprise account", func(t *testing.T) {
		u, err := svc.Register(context.Background(), RegisterRequest{
			Email:       "  Recruiter@Example.COM ",
			Password:    "correct-horse",
			DisplayName: "Sam",
			Role:        "enterprise",
		})
		require.NoError(t, err)
		assert.Equal(t, "recruiter@example.com", u.Email)
		assert.Equal(t, RoleEnterprise, u.Role)
		assert.True(t, u.IsActive)
		assert.NotEqual(t, "correct-horse", u.PasswordHash)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(context.Background(), RegisterRequest{
			Email:    "recruiter@example.com",
			Password: "another-pass",
			Role:     "enterprise",
		})
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Register(context.Background(), RegisterRequest{
			Email:    "short@example.com",
			Password: "tiny",
			Role:     "provider",
		})
		assert.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.Register(context.Background(), RegisterRequest{
			Email:    "who@example.com",
			Password: "correct-horse",
			Role:     "sysadmin",
		})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "recruiter@example.com",
		Password: "correct-horse",
		Role:     "enterprise",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		u, err := svc.Login(context.Background(), "recruiter@example.com", "correct-horse")
		require.NoError(t, err)
		assert.NotNil(t, u.LastLoginAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "recruiter@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		inactive := false
		_, err := svc.Update(context.Background(), "user-fake", UpdateRequest{IsActive: &inactive})
		require.NoError(t, err)

		_, err = svc.Login(context.Background(), "recruiter@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrInactiveUser)
	})
}
