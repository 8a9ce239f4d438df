package promoControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/Lacoustre/food-delivery-app-sub001/promo"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ValidatePromoRequest struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal"`
}

type PromotionInput struct {
	Code           string    `json:"code" binding:"required"`
	Description    string    `json:"description"`
	DiscountType   string    `json:"discount_type" binding:"required"`
	Value          float64   `json:"value" binding:"required"`
	MinOrderAmount float64   `json:"min_order_amount"`
	StartsAt       time.Time `json:"starts_at" binding:"required"`
	ExpiresAt      time.Time `json:"expires_at" binding:"required"`
	UsageLimit     int       `json:"usage_limit"`
	Active         *bool     `json:"active"`
}

// POST /user/promo/validate
// Validation failures are part of the response shape, not HTTP errors: the
// storefront shows them inline next to the code field.
func ValidatePromo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ValidatePromoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := promo.Validate(db, req.Code, req.Subtotal)
		if err != nil {
			switch {
			case errors.Is(err, promo.ErrCodeNotFound),
				errors.Is(err, promo.ErrNotActive),
				errors.Is(err, promo.ErrBelowMinimum),
				errors.Is(err, promo.ErrExhausted),
				errors.Is(err, promo.ErrBadSubtotal):
				c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate promo code"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"valid":     true,
			"promotion": result.Promotion,
			"discount":  result.Discount,
		})
	}
}

// POST /admin/promotions
func CreatePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PromotionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		discountType := models.DiscountType(input.DiscountType)
		if discountType != models.DiscountTypePercent && discountType != models.DiscountTypeFlat {
			c.JSON(http.StatusBadRequest, gin.H{"error": "discount_type must be percent or flat"})
			return
		}
		if input.Value <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "value must be positive"})
			return
		}
		if discountType == models.DiscountTypePercent && input.Value > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "percent value cannot exceed 100"})
			return
		}
		if !input.ExpiresAt.After(input.StartsAt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expires_at must be after starts_at"})
			return
		}

		active := true
		if input.Active != nil {
			active = *input.Active
		}

		p := models.Promotion{
			Code:           promo.NormalizeCode(input.Code),
			Description:    input.Description,
			DiscountType:   discountType,
			Value:          input.Value,
			MinOrderAmount: input.MinOrderAmount,
			StartsAt:       input.StartsAt,
			ExpiresAt:      input.ExpiresAt,
			UsageLimit:     input.UsageLimit,
			Active:         active,
		}

		if err := db.Create(&p).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promotion"})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// GET /admin/promotions
func GetAllPromotions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var promotions []models.Promotion
		if err := db.Order("created_at DESC").Find(&promotions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotions"})
			return
		}
		c.JSON(http.StatusOK, promotions)
	}
}

// PUT /admin/promotions/:id
func UpdatePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var p models.Promotion
		if err := db.First(&p, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
			return
		}

		var input struct {
			Description    *string    `json:"description"`
			Value          *float64   `json:"value"`
			MinOrderAmount *float64   `json:"min_order_amount"`
			StartsAt       *time.Time `json:"starts_at"`
			ExpiresAt      *time.Time `json:"expires_at"`
			UsageLimit     *int       `json:"usage_limit"`
			Active         *bool      `json:"active"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Value != nil {
			updates["value"] = *input.Value
		}
		if input.MinOrderAmount != nil {
			updates["min_order_amount"] = *input.MinOrderAmount
		}
		if input.StartsAt != nil {
			updates["starts_at"] = *input.StartsAt
		}
		if input.ExpiresAt != nil {
			updates["expires_at"] = *input.ExpiresAt
		}
		if input.UsageLimit != nil {
			updates["usage_limit"] = *input.UsageLimit
		}
		if input.Active != nil {
			updates["active"] = *input.Active
		}

		if len(updates) > 0 {
			if err := db.Model(&p).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update promotion"})
				return
			}
		}
		c.JSON(http.StatusOK, p)
	}
}

// DELETE /admin/promotions/:id
func DeletePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		result := db.Delete(&models.Promotion{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promotion"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted"})
	}
}
