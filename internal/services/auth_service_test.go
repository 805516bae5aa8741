package services_test

import (
	"context"
	"testing"

	"sponsorly_backend/internal/services/dto"
	"sponsorly_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest() *dto.RegisterRequest {
	location := "Pune, India"
	return &dto.RegisterRequest{
		FirstName:       "Priya",
		LastName:        "Sharma",
		Email:           "Priya@Creator.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Role:            "creator",
		ProfileFields:   dto.ProfileFields{Location: &location},
	}
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.services.AuthService.Register(ctx, registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "priya@creator.com", resp.User.Email)
	assert.Equal(t, "Pune, India", resp.User.Location)

	stored, err := f.store.Users.FindByEmail(ctx, "priya@creator.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)

	_, err = f.services.AuthService.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	login, err := f.services.AuthService.Login(ctx, &dto.LoginRequest{Email: "PRIYA@creator.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", login.TokenType)
	assert.Equal(t, stored.ID, login.User.ID)

	claims, err := f.tokens.ParseToken(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, "priya@creator.com", claims.Email)
	assert.Equal(t, "creator", claims.Role)

	_, err = f.services.AuthService.Login(ctx, &dto.LoginRequest{Email: "priya@creator.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = f.services.AuthService.Login(ctx, &dto.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_RegisterRejects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	mismatch := registerRequest()
	mismatch.ConfirmPassword = "other11"
	_, err := f.services.AuthService.Register(ctx, mismatch)
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)

	badRole := registerRequest()
	badRole.Role = "admin"
	_, err = f.services.AuthService.Register(ctx, badRole)
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)

	short := registerRequest()
	short.Password, short.ConfirmPassword = "abc", "abc"
	_, err = f.services.AuthService.Register(ctx, short)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	badDOB := registerRequest()
	dob := "yesterday"
	badDOB.DOB = &dob
	_, err = f.services.AuthService.Register(ctx, badDOB)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}
