package seed

import (
	"context"
	"testing"

	"sponsorly_backend/internal/auth"
	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_Deterministic(t *testing.T) {
	a, b := Users(), Users()
	require.Len(t, a, 50)
	assert.Equal(t, a, b)

	creators := 0
	emails := make(map[string]struct{})
	for _, u := range a {
		if u.Role == models.UserRoleCreator {
			creators++
		}
		emails[u.Email] = struct{}{}
		assert.NotEmpty(t, u.Location)
	}
	assert.Equal(t, 25, creators)
	assert.Len(t, emails, 50, "emails must be unique")
	assert.Equal(t, "priya.sharma@creator.com", a[0].Email)
	assert.Equal(t, "amit.shah@sponsor.com", a[25].Email)
}

func TestRun_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	res, err := Run(ctx, store.Users)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Created)

	res, err = Run(ctx, store.Users)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 50, res.Skipped)

	u, err := store.Users.FindByEmail(ctx, "amit.shah@sponsor.com")
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash(DefaultPassword, u.PasswordHash))
	assert.Equal(t, "TechVista Solutions", u.CompanyName)
}
