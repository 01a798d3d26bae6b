package service

import (
	"context"
	"testing"
	"time"

	"gametracker/internal/config"
	"gametracker/internal/db"
	"gametracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	queries := db.New(openTestDB(t))
	cfg := &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}
	return NewAuthService(repository.NewUserRepository(queries, zerolog.Nop()), cfg, zerolog.Nop())
}

func TestRegisterIssuesValidToken(t *testing.T) {
	svc := newAuthService(t)

	user, token, err := svc.Register(context.Background(), "Player@Example.com", "hunter2hunter2", "Player")

	require.NoError(t, err)
	assert.Equal(t, "player@example.com", user.Email)
	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, user.ID, sub)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "player@example.com", "hunter2hunter2", "Player")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "PLAYER@example.com", "hunter2hunter2", "Imposter")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register(context.Background(), "player@example.com", "short", "Player")

	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "player@example.com", "hunter2hunter2", "Player")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "player@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "player@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "player@example.com", "hunter2hunter2", "Player")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, user.ID, ProfileUpdate{Name: "Renamed", Country: "DE"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	fresh, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fresh.Name)
	assert.Equal(t, "DE", fresh.Country)
}
