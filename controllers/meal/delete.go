package mealController

import (
	"net/http"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteMeal soft-deletes the meal and removes its extras. Existing order
// lines keep their snapshots, so history is unaffected.
func DeleteMeal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Meal ID is required"})
			return
		}

		var meal models.Meal
		if err := db.First(&meal, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.Extra{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal extras"})
			return
		}

		if err := tx.Delete(&meal).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit meal deletion"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
	}
}
