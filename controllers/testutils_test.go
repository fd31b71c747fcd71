package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/routes"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

// setupTestDB opens a fresh in-memory database, migrates the schema and
// installs it as the global handle for the duration of the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, config.MigrateDB(db))

	config.DB = db
	return db
}

func newTestRouter() *gin.Engine {
	return routes.SetupRouter()
}

func createTestUser(t *testing.T, username, userType string) *models.User {
	t.Helper()

	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hashed,
		Type:     userType,
		IsActive: true,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	profile := models.Profile{UserID: user.ID}
	require.NoError(t, config.DB.Create(&profile).Error)

	return &user
}

func createTestAdmin(t *testing.T, username string) *models.User {
	t.Helper()

	user := createTestUser(t, username, models.UserTypeCustomer)
	user.IsAdmin = true
	require.NoError(t, config.DB.Save(user).Error)
	return user
}

func authHeader(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := utils.GenerateToken(user)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, router *gin.Engine, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func responseData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func createTestOffer(t *testing.T, router *gin.Engine, owner *models.User, title string, prices []float64, deliveryDays []int) map[string]interface{} {
	t.Helper()

	types := []string{models.OfferTypeBasic, models.OfferTypeStandard, models.OfferTypePremium}
	details := make([]map[string]interface{}, 0, len(types))
	for i, offerType := range types {
		details = append(details, map[string]interface{}{
			"title":                 fmt.Sprintf("%s %s", title, offerType),
			"revisions":             i + 1,
			"delivery_time_in_days": deliveryDays[i],
			"price":                 prices[i],
			"features":              []string{"feature A", "feature B"},
			"offer_type":            offerType,
		})
	}

	w := doRequest(t, router, http.MethodPost, "/api/offers", authHeader(t, owner), map[string]interface{}{
		"title":       title,
		"description": "test offer " + title,
		"details":     details,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return responseData(t, w)
}
