package services_test

import (
	"context"
	"testing"

	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/services/dto"
	"sponsorly_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProfileService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.user(t, "brand@x.com", models.UserRoleSponsor)

	got, err := f.services.ProfileService.GetProfile(ctx, "BRAND@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = f.services.ProfileService.GetProfile(ctx, "missing@x.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	req := &dto.UpdateProfileRequest{
		FirstName: strPtr("  Nike  "),
		ProfileFields: dto.ProfileFields{
			CompanyName: strPtr("Nike India"),
			Budget:      strPtr("₹5L - ₹10L"),
			Links:       []dto.LinkDTO{{Label: "Site", URL: "https://nike.in"}},
			DOB:         strPtr("1990-02-03"),
		},
	}
	updated, err := f.services.ProfileService.UpdateProfile(ctx, "brand@x.com", req)
	require.NoError(t, err)
	assert.Equal(t, "Nike", updated.FirstName)
	assert.Equal(t, "Last", updated.LastName)
	assert.Equal(t, "Nike India", updated.CompanyName)
	require.Len(t, updated.Links, 1)
	assert.Equal(t, "https://nike.in", updated.Links[0].URL)
	require.NotNil(t, updated.DOB)
	assert.Equal(t, 1990, updated.DOB.Year())

	// email, роль и пароль не меняются
	assert.Equal(t, "brand@x.com", updated.Email)
	assert.Equal(t, models.UserRoleSponsor, updated.Role)
	assert.Equal(t, "hash", updated.PasswordHash)

	same, err := f.services.ProfileService.UpdateProfile(ctx, "brand@x.com", &dto.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Nike", same.FirstName)

	_, err = f.services.ProfileService.UpdateProfile(ctx, "missing@x.com", req)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSupportService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ticket, err := f.services.SupportService.CreateTicket(ctx, &dto.CreateTicketRequest{
		Name: "Rahul", Email: "Rahul@X.com", Message: "Cannot upload avatar",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusOpen, ticket.Status)
	assert.Equal(t, "rahul@x.com", ticket.Email)

	_, err = f.services.SupportService.CreateTicket(ctx, &dto.CreateTicketRequest{Name: " ", Email: "r@x.com", Message: "x"})
	assert.Error(t, err)

	list, err := f.services.SupportService.ListTickets(ctx, "RAHUL@x.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ticket.ID, list[0].ID)
}
