package cartControllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddItemInput struct {
	MealID   uint   `json:"meal_id" binding:"required"`
	Quantity int    `json:"quantity"`
	ExtraIDs []uint `json:"extra_ids"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// snapshotExtras resolves the chosen extra ids against the meal's own extras
// and returns the serialized selection plus its price.
func snapshotExtras(meal models.Meal, extraIDs []uint) ([]byte, float64, error) {
	var selected []models.SelectedExtra
	var price float64
	for _, id := range extraIDs {
		for _, e := range meal.Extras {
			if e.ID == id {
				selected = append(selected, models.SelectedExtra{Name: e.Name, Price: e.Price})
				price += e.Price
				break
			}
		}
	}
	if selected == nil {
		return []byte("[]"), 0, nil
	}
	data, err := json.Marshal(selected)
	if err != nil {
		return nil, 0, err
	}
	return data, price, nil
}

// POST /user/cart
// Adding a meal already in the cart accumulates quantity on the existing
// line. Extras are snapshotted on first add only; picking different extras
// for the same meal does not open a second line.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

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
		if !meal.Available {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Meal is currently unavailable"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).FirstOrCreate(&cart, models.Cart{UserID: userID}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		var item models.CartItem
		err := db.Where("cart_id = ? AND meal_id = ?", cart.CartID, input.MealID).First(&item).Error
		if err == gorm.ErrRecordNotFound {
			extras, extrasPrice, err := snapshotExtras(meal, input.ExtraIDs)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode extras"})
				return
			}
			newItem := models.CartItem{
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
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			c.JSON(http.StatusCreated, newItem)
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item.Quantity += input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// PUT /user/cart/:meal_id
// A non-positive quantity removes the line.
func SetCartItemQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		mealID := c.Param("meal_id")

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
			return
		}

		if input.Quantity <= 0 {
			result := db.Where("cart_id = ? AND meal_id = ?", cart.CartID, mealID).Delete(&models.CartItem{})
			if result.Error != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
				return
			}
			if result.RowsAffected == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ? AND meal_id = ?", cart.CartID, mealID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		item.Quantity = input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:meal_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		mealID := c.Param("meal_id")

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND meal_id = ?", cart.CartID, mealID).Delete(&models.CartItem{})
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

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart
// The total is derived from the lines on every read.
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "total": 0})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": cart.Items,
			"total": models.CartTotal(cart.Items),
		})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": cart.Items,
			"total": models.CartTotal(cart.Items),
		})
	}
}
