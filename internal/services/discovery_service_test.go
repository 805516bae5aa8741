package services_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"sponsorly_backend/internal/config"
	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories/memory"
	"sponsorly_backend/internal/repositories/repotest"
	"sponsorly_backend/internal/services"
	"sponsorly_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverSame_Pagination(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "a@x.com", models.UserRoleCreator)
	for i := 1; i <= 5; i++ {
		f.user(t, fmt.Sprintf("creator%d@x.com", i), models.UserRoleCreator)
	}
	f.user(t, "sponsor@x.com", models.UserRoleSponsor)

	page, err := f.services.DiscoveryService.DiscoverSame(ctx, "creator", "a@x.com", 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Users, 2)
	assert.Equal(t, "creator3@x.com", page.Users[0].Email)
	assert.Equal(t, "creator4@x.com", page.Users[1].Email)
	assert.EqualValues(t, 5, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 3, page.TotalPages)

	t.Run("defaults", func(t *testing.T) {
		page, err := f.services.DiscoveryService.DiscoverSame(ctx, "all", "a@x.com", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 9, page.Limit)
		assert.EqualValues(t, 6, page.Total)
		for _, u := range page.Users {
			assert.NotEqual(t, "a@x.com", u.Email)
		}
	})

	t.Run("limit is capped", func(t *testing.T) {
		page, err := f.services.DiscoveryService.DiscoverSame(ctx, "", "", 1, 1000)
		require.NoError(t, err)
		assert.Equal(t, 100, page.Limit)
		assert.EqualValues(t, 7, page.Total)
	})

	t.Run("huge page is empty", func(t *testing.T) {
		page, err := f.services.DiscoveryService.DiscoverSame(ctx, "creator", "", math.MaxInt/50, 100)
		require.NoError(t, err)
		assert.Empty(t, page.Users)
		assert.EqualValues(t, 6, page.Total)
		assert.Equal(t, math.MaxInt/100+1, page.Page)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := f.services.DiscoveryService.DiscoverSame(ctx, "admin", "", 1, 10)
		assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
	})
}

func TestDiscover_Policies(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repotest.NewUser(t, store, "c1@x.com", models.UserRoleCreator)
	repotest.NewUser(t, store, "c2@x.com", models.UserRoleCreator)
	repotest.NewUser(t, store, "s1@x.com", models.UserRoleSponsor)

	t.Run("opposite", func(t *testing.T) {
		svc := services.NewDiscoveryService(store.Users, services.DiscoveryOptions{Policy: config.PolicyOpposite})

		users, err := svc.Discover(ctx, "creator", "")
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "s1@x.com", users[0].Email)

		users, err = svc.Discover(ctx, "sponsor", "")
		require.NoError(t, err)
		assert.Len(t, users, 2)
		for _, u := range users {
			assert.Equal(t, models.UserRoleCreator, u.Role)
		}
	})

	t.Run("explicit", func(t *testing.T) {
		svc := services.NewDiscoveryService(store.Users, services.DiscoveryOptions{Policy: config.PolicyExplicit})

		users, err := svc.Discover(ctx, "creator", "")
		require.NoError(t, err)
		assert.Len(t, users, 2)

		users, err = svc.Discover(ctx, "all", "")
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("requester excluded", func(t *testing.T) {
		svc := services.NewDiscoveryService(store.Users, services.DiscoveryOptions{Policy: config.PolicyExplicit})

		users, err := svc.Discover(ctx, "all", "C1@x.com")
		require.NoError(t, err)
		assert.Len(t, users, 2)
		users, err = svc.Discover(ctx, "creator", "c1@x.com")
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "c2@x.com", users[0].Email)
	})

	t.Run("limit", func(t *testing.T) {
		svc := services.NewDiscoveryService(store.Users, services.DiscoveryOptions{Policy: config.PolicyExplicit, Limit: 2})
		users, err := svc.Discover(ctx, "all", "")
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("invalid role", func(t *testing.T) {
		svc := services.NewDiscoveryService(store.Users, services.DiscoveryOptions{})
		_, err := svc.Discover(ctx, "admin", "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
	})
}
