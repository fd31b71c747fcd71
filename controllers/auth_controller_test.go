package controllers_test

import (
	"net/http"
	"testing"

	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registrationBody(username, email, userType string) map[string]interface{} {
	return map[string]interface{}{
		"username":          username,
		"email":             email,
		"password":          "secret123",
		"repeated_password": "secret123",
		"type":              userType,
	}
}

func TestRegisterUser(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/registration", "",
		registrationBody("new_seller", "new_seller@example.com", models.UserTypeBusiness))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := responseData(t, w)
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "new_seller", data["username"])
	assert.Equal(t, "business", data["type"])
	assert.Equal(t, false, data["is_guest"])

	// An empty profile is created alongside the account
	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", uint(data["user_id"].(float64))).First(&profile).Error)

	// The stored password is hashed, never the plaintext
	var user models.User
	require.NoError(t, db.Where("username = ?", "new_seller").First(&user).Error)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestRegisterUserValidation(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	cases := []struct {
		name string
		body map[string]interface{}
		want int
	}{
		{"short username", registrationBody("ab", "ab@example.com", "customer"), http.StatusBadRequest},
		{"bad email", registrationBody("valid_name", "not-an-email", "customer"), http.StatusBadRequest},
		{"bad type", registrationBody("valid_name", "valid@example.com", "vendor"), http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/registration", "", tc.body)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}

	t.Run("password mismatch", func(t *testing.T) {
		body := registrationBody("valid_name", "valid@example.com", "customer")
		body["repeated_password"] = "different"
		w := doRequest(t, router, http.MethodPost, "/api/registration", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegisterUserDuplicates(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	createTestUser(t, "taken_name", models.UserTypeCustomer)

	w := doRequest(t, router, http.MethodPost, "/api/registration", "",
		registrationBody("taken_name", "fresh@example.com", "customer"))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/registration", "",
		registrationBody("fresh_name", "taken_name@example.com", "customer"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterGuest(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/registration", "", map[string]interface{}{
		"is_guest": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := responseData(t, w)
	assert.Equal(t, "Guest_1", first["username"])
	assert.Equal(t, true, first["is_guest"])
	assert.Equal(t, "customer", first["type"])

	// The guest sequence continues from the latest guest account
	w = doRequest(t, router, http.MethodPost, "/api/registration", "", map[string]interface{}{
		"is_guest": true,
		"type":     "business",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	second := responseData(t, w)
	assert.Equal(t, "Guest_2", second["username"])
	assert.Equal(t, "business", second["type"])
}

func TestLoginUser(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "login_user", models.UserTypeCustomer)

	w := doRequest(t, router, http.MethodPost, "/api/login", "", map[string]interface{}{
		"username": "login_user",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := responseData(t, w)
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, float64(user.ID), data["user_id"])

	w = doRequest(t, router, http.MethodPost, "/api/login", "", map[string]interface{}{
		"username": "login_user",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/login", "", map[string]interface{}{
		"username": "no_such_user",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "inactive_user", models.UserTypeCustomer)
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	w := doRequest(t, router, http.MethodPost, "/api/login", "", map[string]interface{}{
		"username": "inactive_user",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "logout_user", models.UserTypeCustomer)
	auth := authHeader(t, user)

	// The token works before logout
	w := doRequest(t, router, http.MethodGet, "/api/orders", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/logout", auth, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// And is rejected afterwards
	w = doRequest(t, router, http.MethodGet, "/api/orders", auth, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/orders", "Bearer not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
