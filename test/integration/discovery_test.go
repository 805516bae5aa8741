package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/services/dto"
	"sponsorly_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover_OppositeRole(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.CreateAndLoginUser(t, ts, "Aarav", "a@x.com", models.UserRoleCreator)
	helpers.RegisterUser(t, ts, "Creator", "c2@x.com", models.UserRoleCreator)
	helpers.RegisterUser(t, ts, "Nike", "s1@x.com", models.UserRoleSponsor)
	helpers.RegisterUser(t, ts, "Adidas", "s2@x.com", models.UserRoleSponsor)

	// без тела роль берется из токена
	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/discover", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var resp dto.DiscoverResponse
	helpers.DecodeJSON(t, body, &resp)
	require.Len(t, resp.Users, 2)
	for _, u := range resp.Users {
		assert.Equal(t, models.UserRoleSponsor, u.Role)
	}

	res, body = ts.SendRequest(t, http.MethodPost, "/api/auth/discover", token, map[string]string{"role": "sponsor"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	helpers.DecodeJSON(t, body, &resp)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, models.UserRoleCreator, resp.Users[0].Role)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/discover", token, map[string]string{"role": "admin"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestDiscoverSame_Pagination(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.CreateAndLoginUser(t, ts, "Aarav", "a@x.com", models.UserRoleCreator)
	for i := 1; i <= 5; i++ {
		helpers.RegisterUser(t, ts, fmt.Sprintf("Creator%d", i), fmt.Sprintf("creator%d@x.com", i), models.UserRoleCreator)
	}
	helpers.RegisterUser(t, ts, "Nike", "s1@x.com", models.UserRoleSponsor)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/discover-same", token, map[string]interface{}{
		"role":  "creator",
		"email": "a@x.com",
		"page":  2,
		"limit": 2,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var page dto.DiscoverPage
	helpers.DecodeJSON(t, body, &page)
	require.Len(t, page.Users, 2)
	assert.Equal(t, "creator3@x.com", page.Users[0].Email)
	assert.Equal(t, "creator4@x.com", page.Users[1].Email)
	assert.EqualValues(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPages)

	// role=all и email из токена
	res, body = ts.SendRequest(t, http.MethodPost, "/api/auth/discover-same", token, map[string]interface{}{"role": "all"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	helpers.DecodeJSON(t, body, &page)
	assert.EqualValues(t, 6, page.Total)
	assert.Equal(t, 9, page.Limit)
	for _, u := range page.Users {
		assert.NotEqual(t, "a@x.com", u.Email)
	}
}
