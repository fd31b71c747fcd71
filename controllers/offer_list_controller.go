package controllers

import (
	"strconv"
	"strings"

	"github.com/mhoffmann-dev/GigSphere/config"
	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"github.com/gin-gonic/gin"
)

// minPriceClause orders offers by their cheapest tier. Offers without any
// tier sort first on NULL.
const minPriceClause = "(SELECT MIN(price) FROM offer_details WHERE offer_details.offer_id = offers.id)"

// orderingWhitelist maps the ordering query parameter to a SQL order clause.
// Anything else falls back to ascending id.
var orderingWhitelist = map[string]string{
	"id":          "id",
	"created_at":  "created_at",
	"-created_at": "created_at desc",
	"updated_at":  "updated_at",
	"-updated_at": "updated_at desc",
	"min_price":   minPriceClause,
	"-min_price":  minPriceClause + " desc",
}

// GetOffers handles listing offers with filtering, search, ordering and
// pagination. An offer matches min_price / max_delivery_time when any of its
// tiers satisfies the threshold; min_price and min_delivery_time on each
// result reflect the tier set at query time.
func GetOffers(c *gin.Context) {
	utils.LogInfo("GetOffers called with query params: %v", c.Request.URL.Query())

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Offer{})

	if creatorID := c.Query("creator_id"); creatorID != "" {
		if id, err := strconv.ParseUint(creatorID, 10, 32); err == nil {
			utils.LogDebug("Filtering by creator_id: %d", id)
			query = query.Where("user_id = ?", uint(id))
		}
	}

	if minPrice := c.Query("min_price"); minPrice != "" {
		if price, err := strconv.ParseFloat(minPrice, 64); err == nil {
			utils.LogDebug("Filtering by min_price: %f", price)
			query = query.Where("id IN (?)",
				config.DB.Model(&models.OfferDetail{}).Select("offer_id").Where("price >= ?", price))
		}
	}

	if maxDelivery := c.Query("max_delivery_time"); maxDelivery != "" {
		if days, err := strconv.Atoi(maxDelivery); err == nil {
			utils.LogDebug("Filtering by max_delivery_time: %d", days)
			query = query.Where("id IN (?)",
				config.DB.Model(&models.OfferDetail{}).Select("offer_id").Where("delivery_time_in_days <= ?", days))
		}
	}

	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		utils.LogDebug("Filtering by search term: %s", search)
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count offers: %v", err)
		utils.InternalServerError(c, "Failed to fetch offers", nil)
		return
	}
	pagination.SetTotal(total)

	orderClause, ok := orderingWhitelist[c.DefaultQuery("ordering", "id")]
	if !ok {
		orderClause = "id"
	}

	var offers []models.Offer
	if err := query.Preload("Details").
		Order(orderClause).
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&offers).Error; err != nil {
		utils.LogError("Failed to fetch offers: %v", err)
		utils.InternalServerError(c, "Failed to fetch offers", nil)
		return
	}

	responses := make([]OfferResponse, 0, len(offers))
	for i := range offers {
		responses = append(responses, offerResponse(&offers[i]))
	}

	utils.LogInfo("Successfully fetched %d offers (total %d)", len(responses), total)
	utils.SuccessWithPagination(c, "Offers retrieved successfully", responses, total, pagination.Page, pagination.Limit)
}
