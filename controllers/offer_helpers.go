package controllers

import (
	"fmt"

	"github.com/mhoffmann-dev/GigSphere/models"
	"github.com/mhoffmann-dev/GigSphere/utils"
	"gorm.io/gorm"
)

// RequiredDetailCount is the number of pricing tiers a new offer must carry
const RequiredDetailCount = 3

// OfferDetailRequest represents one tier in an offer create/update payload.
// Any client-supplied id is ignored; on update, tiers are matched by type.
type OfferDetailRequest struct {
	ID                 uint     `json:"id"`
	Title              string   `json:"title" binding:"required"`
	Revisions          int      `json:"revisions" binding:"min=0"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days" binding:"required,min=1"`
	Price              float64  `json:"price" binding:"min=0"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type" binding:"required,oneof=basic standard premium"`
}

// ValidateDetailCount enforces the tier-count rule for offer creation: the
// submitted list must contain exactly three tiers. Only the cardinality is
// checked, matching the established creation contract.
func ValidateDetailCount(details []OfferDetailRequest) *utils.AppError {
	if len(details) != RequiredDetailCount {
		return utils.BadRequestError(
			fmt.Sprintf("An offer must be created with exactly %d details, got %d.", RequiredDetailCount, len(details)),
			nil,
		)
	}
	return nil
}

// MinPrice returns the lowest price among the given tiers, or nil when the
// offer has no tiers. Computed fresh on every read, never stored.
func MinPrice(details []models.OfferDetail) *float64 {
	if len(details) == 0 {
		return nil
	}
	min := details[0].Price
	for _, d := range details[1:] {
		if d.Price < min {
			min = d.Price
		}
	}
	return &min
}

// MinDeliveryTime returns the shortest delivery time in days among the given
// tiers, or nil when the offer has no tiers.
func MinDeliveryTime(details []models.OfferDetail) *int {
	if len(details) == 0 {
		return nil
	}
	min := details[0].DeliveryTimeInDays
	for _, d := range details[1:] {
		if d.DeliveryTimeInDays < min {
			min = d.DeliveryTimeInDays
		}
	}
	return &min
}

// UpsertOfferDetails applies incoming tier payloads to an offer: a payload
// whose offer_type matches an existing tier overwrites that tier's fields in
// place (the row id is preserved), any other payload appends a new tier.
func UpsertOfferDetails(tx *gorm.DB, offer *models.Offer, payloads []OfferDetailRequest) ([]models.OfferDetail, error) {
	var existing []models.OfferDetail
	if err := tx.Where("offer_id = ?", offer.ID).Find(&existing).Error; err != nil {
		return nil, err
	}

	byType := make(map[string]*models.OfferDetail, len(existing))
	for i := range existing {
		byType[existing[i].OfferType] = &existing[i]
	}

	for _, payload := range payloads {
		features := payload.Features
		if features == nil {
			features = []string{}
		}

		if detail, ok := byType[payload.OfferType]; ok {
			detail.Title = payload.Title
			detail.Revisions = payload.Revisions
			detail.DeliveryTimeInDays = payload.DeliveryTimeInDays
			detail.Price = payload.Price
			detail.Features = features
			if err := tx.Save(detail).Error; err != nil {
				return nil, err
			}
			continue
		}

		detail := models.OfferDetail{
			OfferID:            offer.ID,
			Title:              payload.Title,
			Revisions:          payload.Revisions,
			DeliveryTimeInDays: payload.DeliveryTimeInDays,
			Price:              payload.Price,
			Features:           features,
			OfferType:          payload.OfferType,
		}
		if err := tx.Create(&detail).Error; err != nil {
			return nil, err
		}
		byType[detail.OfferType] = &detail
	}

	var result []models.OfferDetail
	if err := tx.Where("offer_id = ?", offer.ID).Order("id").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}
