package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amberoven/bakehouse-backend/internal/config"
	"github.com/amberoven/bakehouse-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeDirectory struct {
	roles   map[string]string
	failErr error
	lookups int
}

func (f *fakeDirectory) RoleNameByEmail(_ context.Context, email string) (string, error) {
	f.lookups++
	if f.failErr != nil {
		return "", f.failErr
	}
	role, ok := f.roles[email]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return role, nil
}

type fakeUsers struct {
	byEmail map[string]*model.AdminUser
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.AdminUser, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int) (*model.AdminUser, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeSessions struct {
	created []*model.Session
	deleted []string
	failErr error
}

func (f *fakeSessions) Create(_ context.Context, s *model.Session) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSessions) DeleteByID(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

func newTestAuthService(dir *fakeDirectory, users *fakeUsers, sessions *fakeSessions) *AuthService {
	return NewAuthService(testConfig(), dir, users, sessions, zerolog.Nop())
}

func TestIsAllowedEmail(t *testing.T) {
	t.Run("email on the allow-list", func(t *testing.T) {
		dir := &fakeDirectory{roles: map[string]string{"owner@bakehouse.test": "admin"}}
		svc := newTestAuthService(dir, nil, nil)

		ok, err := svc.IsAllowedEmail(context.Background(), "owner@bakehouse.test")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("email not on the allow-list", func(t *testing.T) {
		dir := &fakeDirectory{roles: map[string]string{}}
		svc := newTestAuthService(dir, nil, nil)

		ok, err := svc.IsAllowedEmail(context.Background(), "stranger@example.com")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty email skips the store", func(t *testing.T) {
		dir := &fakeDirectory{roles: map[string]string{}}
		svc := newTestAuthService(dir, nil, nil)

		ok, err := svc.IsAllowedEmail(context.Background(), "")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, dir.lookups)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		dir := &fakeDirectory{failErr: errors.New("connection refused")}
		svc := newTestAuthService(dir, nil, nil)

		ok, err := svc.IsAllowedEmail(context.Background(), "owner@bakehouse.test")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestRoleNameByEmail(t *testing.T) {
	t.Run("returns the stored role", func(t *testing.T) {
		dir := &fakeDirectory{roles: map[string]string{"baker@bakehouse.test": "homepage"}}
		svc := newTestAuthService(dir, nil, nil)

		role, err := svc.RoleNameByEmail(context.Background(), "baker@bakehouse.test")
		require.NoError(t, err)
		assert.Equal(t, "homepage", role)
	})

	t.Run("unknown email returns empty role", func(t *testing.T) {
		dir := &fakeDirectory{roles: map[string]string{}}
		svc := newTestAuthService(dir, nil, nil)

		role, err := svc.RoleNameByEmail(context.Background(), "stranger@example.com")
		require.NoError(t, err)
		assert.Empty(t, role)
	})

	t.Run("empty email skips the store", func(t *testing.T) {
		dir := &fakeDirectory{roles: map[string]string{}}
		svc := newTestAuthService(dir, nil, nil)

		role, err := svc.RoleNameByEmail(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, role)
		assert.Zero(t, dir.lookups)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		dir := &fakeDirectory{failErr: errors.New("connection refused")}
		svc := newTestAuthService(dir, nil, nil)

		_, err := svc.RoleNameByEmail(context.Background(), "baker@bakehouse.test")
		assert.Error(t, err)
	})
}

func TestSignIn(t *testing.T) {
	const password = "correct-horse"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	newUsers := func() *fakeUsers {
		return &fakeUsers{byEmail: map[string]*model.AdminUser{
			"owner@bakehouse.test": {
				ID:           7,
				Email:        "owner@bakehouse.test",
				Name:         "Owner",
				PasswordHash: string(hash),
			},
		}}
	}

	t.Run("successful sign-in issues token and records session", func(t *testing.T) {
		dir := &fakeDirectory{roles: map[string]string{"owner@bakehouse.test": "admin"}}
		sessions := &fakeSessions{}
		svc := newTestAuthService(dir, newUsers(), sessions)

		token, user, role, err := svc.SignIn(context.Background(), "owner@bakehouse.test", password)
		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
		assert.Equal(t, "admin", role)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "owner@bakehouse.test", claims.Email)
		assert.Equal(t, "admin", claims.RoleName)

		require.Len(t, sessions.created, 1)
		assert.Equal(t, claims.ID, sessions.created[0].ID)
		assert.Equal(t, 7, sessions.created[0].UserID)
		assert.WithinDuration(t, time.Now().Add(time.Hour), sessions.created[0].Expires, time.Minute)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		dir := &fakeDirectory{roles: map[string]string{"owner@bakehouse.test": "admin"}}
		sessions := &fakeSessions{}
		svc := newTestAuthService(dir, newUsers(), sessions)

		_, _, _, err := svc.SignIn(context.Background(), "owner@bakehouse.test", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, sessions.created)
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		dir := &fakeDirectory{roles: map[string]string{}}
		svc := newTestAuthService(dir, newUsers(), &fakeSessions{})

		_, _, _, err := svc.SignIn(context.Background(), "stranger@example.com", password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("valid credentials off the allow-list are denied", func(t *testing.T) {
		dir := &fakeDirectory{roles: map[string]string{}}
		sessions := &fakeSessions{}
		svc := newTestAuthService(dir, newUsers(), sessions)

		_, _, _, err := svc.SignIn(context.Background(), "owner@bakehouse.test", password)
		assert.ErrorIs(t, err, ErrEmailNotAllowed)
		assert.Empty(t, sessions.created)
	})

	t.Run("directory failure denies the login", func(t *testing.T) {
		dir := &fakeDirectory{failErr: errors.New("connection refused")}
		sessions := &fakeSessions{}
		svc := newTestAuthService(dir, newUsers(), sessions)

		_, _, _, err := svc.SignIn(context.Background(), "owner@bakehouse.test", password)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, sessions.created)
	})
}

func TestValidateToken(t *testing.T) {
	svc := newTestAuthService(&fakeDirectory{}, nil, nil)

	t.Run("round-trips its own tokens", func(t *testing.T) {
		token, jti, _, err := svc.GenerateToken(3, "baker@bakehouse.test", "shop")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jti, claims.ID)
		assert.Equal(t, 3, claims.UserID)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		other := NewAuthService(&config.Config{JWTSecret: "other", JWTExpiry: time.Hour}, &fakeDirectory{}, nil, nil, zerolog.Nop())
		token, _, _, err := other.GenerateToken(3, "baker@bakehouse.test", "shop")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})
}
