package integration_test

import (
	"net/http"
	"testing"

	"sponsorly_backend/internal/models"
	"sponsorly_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile_AllowList(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.CreateAndLoginUser(t, ts, "Nike", "brand@x.com", models.UserRoleSponsor)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/auth/profile", token, map[string]interface{}{
		"companyName": "Nike India",
		"budget":      "₹5L - ₹10L",
		"links":       []map[string]string{{"label": "Site", "url": "https://nike.in"}},
		"email":       "hijack@x.com",
		"role":        "creator",
		"password":    "changed",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}
	helpers.DecodeJSON(t, body, &resp)
	assert.Equal(t, "Nike India", resp.User.CompanyName)
	assert.Equal(t, "brand@x.com", resp.User.Email)
	assert.Equal(t, models.UserRoleSponsor, resp.User.Role)
	require.Len(t, resp.User.Links, 1)

	// старый пароль продолжает работать
	helpers.Login(t, ts, "brand@x.com")

	res, body = ts.SendRequest(t, http.MethodPut, "/api/auth/profile", token, map[string]interface{}{
		"dob": "not-a-date",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestGetProfileByEmail(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.CreateAndLoginUser(t, ts, "Aarav", "aarav@x.com", models.UserRoleCreator)
	helpers.RegisterUser(t, ts, "Nike", "brand@x.com", models.UserRoleSponsor)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/profile", token, map[string]string{"email": "brand@x.com"})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"firstName":"Nike"`)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/profile", token, map[string]string{"email": "nobody@x.com"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/profile", token, map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
