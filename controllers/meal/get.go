package mealController

import (
	"net/http"
	"strconv"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMealByID returns a single meal (with its category and extras).
// URL param: /meals/:id
func GetMealByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		if idParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Meal ID is required"})
			return
		}

		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal ID"})
			return
		}

		var meal models.Meal
		if err := db.Preload("Category").Preload("Extras").First(&meal, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve meal"})
			}
			return
		}
		c.JSON(http.StatusOK, meal)
	}
}
