package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/mhoffmann-dev/GigSphere/controllers"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseInfoEmptyPlatform(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/base-info", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := responseData(t, w)
	assert.Equal(t, 0.0, data["review_count"])
	assert.Equal(t, 0.0, data["average_rating"])
	assert.Equal(t, 0.0, data["business_profile_count"])
	assert.Equal(t, 0.0, data["offer_count"])
}

func TestBaseInfoAggregates(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	business := createTestUser(t, "info_biz", models.UserTypeBusiness)
	custA := createTestUser(t, "info_cust_a", models.UserTypeCustomer)
	custB := createTestUser(t, "info_cust_b", models.UserTypeCustomer)

	createTestOffer(t, router, business, "Logo design", []float64{50, 100, 200}, []int{7, 5, 2})
	createTestOffer(t, router, business, "Web design", []float64{80, 150, 300}, []int{10, 7, 4})

	for _, review := range []struct {
		reviewer *models.User
		rating   int
	}{{custA, 4}, {custB, 2}} {
		w := doRequest(t, router, http.MethodPost, "/api/reviews", authHeader(t, review.reviewer), map[string]interface{}{
			"business_user": business.ID,
			"rating":        review.rating,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	info, err := controllers.ComputeBaseInfo()
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.ReviewCount)
	assert.Equal(t, 3.0, info.AverageRating)
	assert.Equal(t, int64(1), info.BusinessProfileCount)
	assert.Equal(t, int64(2), info.OfferCount)

	// The endpoint is public, no token needed
	w := doRequest(t, router, http.MethodGet, "/api/base-info", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3.0, responseData(t, w)["average_rating"])
}

func TestBaseInfoRoundsHalfAwayFromZero(t *testing.T) {
	db := setupTestDB(t)

	business := createTestUser(t, "round_biz", models.UserTypeBusiness)
	for i, rating := range []int{4, 4, 3} { // avg 3.666... -> 3.7
		reviewer := createTestUser(t, fmt.Sprintf("round_cust_%d", i), models.UserTypeCustomer)
		require.NoError(t, db.Create(&models.Review{
			BusinessUserID: business.ID,
			ReviewerID:     reviewer.ID,
			Rating:         rating,
		}).Error)
	}

	info, err := controllers.ComputeBaseInfo()
	require.NoError(t, err)
	assert.Equal(t, 3.7, info.AverageRating)

	// 3.45 rounds up, not to even
	extra := createTestUser(t, "round_cust_d", models.UserTypeCustomer)
	require.NoError(t, db.Create(&models.Review{
		BusinessUserID: business.ID,
		ReviewerID:     extra.ID,
		Rating:         3,
	}).Error)
	// ratings 4,4,3,3 -> avg 3.5, stays 3.5 after rounding
	info, err = controllers.ComputeBaseInfo()
	require.NoError(t, err)
	assert.Equal(t, 3.5, info.AverageRating)
}
