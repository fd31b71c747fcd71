package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "prof_user", models.UserTypeBusiness)
	viewer := createTestUser(t, "prof_viewer", models.UserTypeCustomer)

	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{
			"first_name": "Mia",
			"location":   "Berlin",
		}).Error)

	// Any authenticated user may read any profile
	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/profile/%d", user.ID), authHeader(t, viewer), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := responseData(t, w)
	assert.Equal(t, float64(user.ID), data["user"])
	assert.Equal(t, "prof_user", data["username"])
	assert.Equal(t, "Mia", data["first_name"])
	assert.Equal(t, "Berlin", data["location"])
	assert.Equal(t, "business", data["type"])

	w = doRequest(t, router, http.MethodGet, "/api/profile/9999", authHeader(t, viewer), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/profile/%d", user.ID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "patch_user", models.UserTypeBusiness)

	path := fmt.Sprintf("/api/profile/%d", user.ID)
	w := doRequest(t, router, http.MethodPatch, path, authHeader(t, user), map[string]interface{}{
		"first_name":    "Jonas",
		"working_hours": "9-17",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := responseData(t, w)
	assert.Equal(t, "Jonas", data["first_name"])
	assert.Equal(t, "9-17", data["working_hours"])

	// Absent fields keep their value
	w = doRequest(t, router, http.MethodPatch, path, authHeader(t, user), map[string]interface{}{
		"last_name": "Weber",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data = responseData(t, w)
	assert.Equal(t, "Jonas", data["first_name"])
	assert.Equal(t, "Weber", data["last_name"])
}

func TestUpdateProfileOwnerOnly(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "own_user", models.UserTypeCustomer)
	intruder := createTestUser(t, "own_intruder", models.UserTypeCustomer)

	w := doRequest(t, router, http.MethodPatch, fmt.Sprintf("/api/profile/%d", owner.ID), authHeader(t, intruder), map[string]interface{}{
		"first_name": "Hacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateProfileEmail(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "mail_user", models.UserTypeCustomer)
	createTestUser(t, "mail_other", models.UserTypeCustomer)

	path := fmt.Sprintf("/api/profile/%d", user.ID)

	// Changing to an address another account holds is rejected
	w := doRequest(t, router, http.MethodPatch, path, authHeader(t, user), map[string]interface{}{
		"email": "mail_other@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPatch, path, authHeader(t, user), map[string]interface{}{
		"email": "renamed@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "renamed@example.com", responseData(t, w)["email"])

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "renamed@example.com", stored.Email)
}

func TestListProfilesByType(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	bizA := createTestUser(t, "lst_biz_a", models.UserTypeBusiness)
	createTestUser(t, "lst_biz_b", models.UserTypeBusiness)
	createTestUser(t, "lst_cust", models.UserTypeCustomer)

	list := func(path string) []interface{} {
		w := doRequest(t, router, http.MethodGet, path, authHeader(t, bizA), nil)
		require.Equal(t, http.StatusOK, w.Code)
		data, ok := decodeBody(t, w)["data"].([]interface{})
		require.True(t, ok)
		return data
	}

	businesses := list("/api/profiles/business")
	require.Len(t, businesses, 2)
	first := businesses[0].(map[string]interface{})
	assert.Equal(t, "lst_biz_a", first["username"])
	assert.Equal(t, "business", first["type"])
	// The business summary carries the contact fields
	assert.Contains(t, first, "location")
	assert.Contains(t, first, "working_hours")

	customers := list("/api/profiles/customer")
	require.Len(t, customers, 1)
	second := customers[0].(map[string]interface{})
	assert.Equal(t, "lst_cust", second["username"])
	// The customer summary does not
	assert.NotContains(t, second, "location")
}
