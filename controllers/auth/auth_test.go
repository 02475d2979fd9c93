package authControllers_test

import (
	"net/http"
	"testing"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	r, db := testutil.SetupRouter(t)

	w := testutil.DoJSON(t, r, http.MethodPost, "/auth/register", map[string]string{
		"name":             "Ravi",
		"email":            "ravi@example.com",
		"password":         "secret12",
		"confirm_password": "secret12",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "ravi@example.com").First(&user).Error)
	assert.NotEqual(t, "secret12", user.PasswordHash, "raw password must never be stored")
	assert.False(t, user.IsAdmin)

	w = testutil.DoJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "ravi@example.com",
		"password": "secret12",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := testutil.Body(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	w = testutil.DoJSON(t, r, http.MethodGet, "/auth/me", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	r, db := testutil.SetupRouter(t)

	w := testutil.DoJSON(t, r, http.MethodPost, "/auth/register", map[string]string{
		"name":             "Ravi",
		"email":            "ravi@example.com",
		"password":         "secret12",
		"confirm_password": "different",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	existing := testutil.CreateUser(t, db, "ravi@example.com", false)

	w := testutil.DoJSON(t, r, http.MethodPost, "/auth/register", map[string]string{
		"name":             "Imposter",
		"email":            "ravi@example.com",
		"password":         "secret12",
		"confirm_password": "secret12",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// the existing row is untouched
	var user models.User
	require.NoError(t, db.First(&user, existing.ID).Error)
	assert.Equal(t, existing.Name, user.Name)
	assert.Equal(t, existing.PasswordHash, user.PasswordHash)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLoginWrongPassword(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	testutil.CreateUser(t, db, "ravi@example.com", false)

	w := testutil.DoJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "ravi@example.com",
		"password": "wrong-password",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	body := testutil.Body(t, w)
	_, hasToken := body["token"]
	assert.False(t, hasToken, "no session may be established on a bad password")
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	r, _ := testutil.SetupRouter(t)

	w := testutil.DoJSON(t, r, http.MethodGet, "/cart", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
