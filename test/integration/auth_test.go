package integration_test

import (
	"net/http"
	"testing"

	"sponsorly_backend/internal/models"
	"sponsorly_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	registerBody := map[string]interface{}{
		"firstName":       "Priya",
		"lastName":        "Sharma",
		"email":           "Priya@Creator.com",
		"password":        "super_password123",
		"confirmPassword": "super_password123",
		"role":            "creator",
		"platform":        "Instagram",
		"followers":       12000,
	}
	regRes, regBody := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, regRes.StatusCode, regBody)
	assert.Contains(t, regBody, "priya@creator.com")
	assert.NotContains(t, regBody, "super_password123")
	t.Logf("РЕГИСТРАЦИЯ: Успешно. Ответ: %s", regBody)

	logRes, logBody := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "priya@creator.com",
		"password": "super_password123",
	})
	require.Equal(t, http.StatusOK, logRes.StatusCode, logBody)

	var login struct {
		AccessToken string `json:"accessToken"`
		User        struct {
			FirstName string          `json:"firstName"`
			Email     string          `json:"email"`
			Role      models.UserRole `json:"role"`
		} `json:"user"`
	}
	helpers.DecodeJSON(t, logBody, &login)
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, "Priya", login.User.FirstName)
	assert.Equal(t, models.UserRoleCreator, login.User.Role)

	profRes, profBody := ts.SendRequest(t, http.MethodGet, "/api/auth/profile", login.AccessToken, nil)
	assert.Equal(t, http.StatusOK, profRes.StatusCode)
	assert.Contains(t, profBody, `"platform":"Instagram"`)
	assert.NotContains(t, profBody, "password")
}

func TestRegister_Rejects(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	helpers.RegisterUser(t, ts, "Rahul", "rahul@x.com", models.UserRoleCreator)

	cases := []struct {
		name   string
		body   map[string]interface{}
		status int
	}{
		{
			name: "duplicate email",
			body: map[string]interface{}{
				"firstName": "R", "lastName": "K", "email": "RAHUL@x.com",
				"password": "secret1", "confirmPassword": "secret1", "role": "creator",
			},
			status: http.StatusConflict,
		},
		{
			name: "password mismatch",
			body: map[string]interface{}{
				"firstName": "R", "lastName": "K", "email": "new@x.com",
				"password": "secret1", "confirmPassword": "secret2", "role": "creator",
			},
			status: http.StatusBadRequest,
		},
		{
			name: "unknown role",
			body: map[string]interface{}{
				"firstName": "R", "lastName": "K", "email": "new@x.com",
				"password": "secret1", "confirmPassword": "secret1", "role": "admin",
			},
			status: http.StatusBadRequest,
		},
		{
			name: "short password",
			body: map[string]interface{}{
				"firstName": "R", "lastName": "K", "email": "new@x.com",
				"password": "abc", "confirmPassword": "abc", "role": "sponsor",
			},
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", tc.body)
			assert.Equal(t, tc.status, res.StatusCode, body)
			assert.Contains(t, body, `"error"`)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	helpers.RegisterUser(t, ts, "Nike", "brand@x.com", models.UserRoleSponsor)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "brand@x.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "INVALID_CREDENTIALS")
	t.Logf("ЛОГИН (НЕВЕРНЫЙ ПАРОЛЬ): Успешно провалился (401). Ответ: %s", body)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	for _, path := range []string{"/api/messages/conversations", "/api/messages/unread-count", "/api/auth/profile"} {
		res, _ := ts.SendRequest(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, path)
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/messages/send", "not-a-token", map[string]string{
		"receiverEmail": "x@x.com", "content": "hi",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"ok","driver":"memory"}`, body)
}
