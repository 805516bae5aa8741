package helpers

import (
	"net/http"
	"testing"

	"sponsorly_backend/internal/models"

	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// RegisterUser регистрирует пользователя через API
func RegisterUser(t *testing.T, ts *TestServer, firstName, email string, role models.UserRole) {
	t.Helper()
	body := map[string]interface{}{
		"firstName":       firstName,
		"lastName":        "Test",
		"email":           email,
		"password":        DefaultPassword,
		"confirmPassword": DefaultPassword,
		"role":            role,
		"location":        "Mumbai, India",
	}
	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Регистрация должна быть успешной. Ответ: "+resBody)
}

// Login логинит пользователя и возвращает access token
func Login(t *testing.T, ts *TestServer, email string) string {
	t.Helper()
	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": DefaultPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+resBody)

	var loginResponse struct {
		AccessToken string `json:"accessToken"`
	}
	DecodeJSON(t, resBody, &loginResponse)
	require.NotEmpty(t, loginResponse.AccessToken, "Токен не должен быть пустым")
	return loginResponse.AccessToken
}

// CreateAndLoginUser регистрирует пользователя и возвращает его токен
func CreateAndLoginUser(t *testing.T, ts *TestServer, firstName, email string, role models.UserRole) string {
	t.Helper()
	RegisterUser(t, ts, firstName, email, role)
	return Login(t, ts, email)
}
