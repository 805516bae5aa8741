package services_test

import (
	"context"
	"testing"
	"time"

	"sponsorly_backend/internal/auth"
	"sponsorly_backend/internal/config"
	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories"
	"sponsorly_backend/internal/repositories/memory"
	"sponsorly_backend/internal/repositories/repotest"
	"sponsorly_backend/internal/services"

	"github.com/stretchr/testify/require"
)

// stepClock отдает монотонно растущее время с шагом в секунду
type stepClock struct {
	t time.Time
}

func newStepClock() *stepClock {
	return &stepClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type fixture struct {
	store    *repositories.Store
	services *services.ServiceContainer
	clock    *stepClock
	tokens   *auth.TokenManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.Default()
	store := memory.NewStore()
	clock := newStepClock()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return &fixture{
		store:    store,
		services: services.NewServiceContainer(cfg, store, tokens, services.WithClock(clock.Now)),
		clock:    clock,
		tokens:   tokens,
	}
}

func (f *fixture) user(t *testing.T, email string, role models.UserRole) *models.User {
	t.Helper()
	return repotest.NewUser(t, f.store, email, role)
}

func (f *fixture) send(t *testing.T, from, to, content string) {
	t.Helper()
	_, err := f.services.MessageService.SendMessage(context.Background(), from, to, content)
	require.NoError(t, err)
}
