package cartControllers

import (
	"net/http"
	"time"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Guest carts mirror the account cart for anonymous sessions, so a browser
// keeps its cart before sign-in. The guest id arrives from the session token.

// POST /guest/cart
func AddGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, exists := guestIDFrom(c)
		if !exists {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity <= 0 {
			input.Quantity = 1
		}

		var meal models.Meal
		if err := db.Preload("Extras").First(&meal, "id = ?", input.MealID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate meal"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Meal does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).FirstOrCreate(&cart, models.GuestCart{GuestID: guestID}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load guest cart"})
			return
		}

		var item models.GuestCartItem
		err := db.Where("cart_id = ? AND meal_id = ?", cart.CartID, input.MealID).First(&item).Error
		if err == gorm.ErrRecordNotFound {
			extras, extrasPrice, err := snapshotExtras(meal, input.ExtraIDs)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode extras"})
				return
			}
			newItem := models.GuestCartItem{
				CartID:      cart.CartID,
				MealID:      meal.ID,
				MealName:    meal.Name,
				MealImage:   meal.Image,
				MealPrice:   meal.Price,
				ExtrasPrice: extrasPrice,
				Extras:      extras,
				Quantity:    input.Quantity,
				AddedAt:     time.Now(),
			}
			if err := db.Create(&newItem).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to guest cart"})
				return
			}
			c.JSON(http.StatusCreated, newItem)
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart item"})
			return
		}

		item.Quantity += input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// GET /guest/cart
func GetGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, exists := guestIDFrom(c)
		if !exists {
			return
		}

		var cart models.GuestCart
		if err := db.Preload("Items").Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"items": []models.GuestCartItem{}, "total": 0})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": cart.Items,
			"total": models.GuestCartTotal(cart.Items),
		})
	}
}

// DELETE /guest/cart/:meal_id
func DeleteGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, exists := guestIDFrom(c)
		if !exists {
			return
		}
		mealID := c.Param("meal_id")

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND meal_id = ?", cart.CartID, mealID).Delete(&models.GuestCartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /guest/cart
func ClearGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, exists := guestIDFrom(c)
		if !exists {
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Guest cart cleared"})
	}
}

func guestIDFrom(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userIDVal.(string), true
}
