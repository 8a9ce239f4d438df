package mealController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateMeal updates the fields present in the form; absent fields keep
// their value. A new image replaces the old URL, extras replace wholesale.
func UpdateMeal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Meal ID is required"})
			return
		}

		var meal models.Meal
		if err := db.Preload("Extras").First(&meal, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}

		updates := make(map[string]interface{})

		if name := c.PostForm("name"); name != "" {
			updates["name"] = name
		}
		if desc, ok := c.GetPostForm("description"); ok {
			updates["description"] = desc
		}
		if priceStr := c.PostForm("price"); priceStr != "" {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			updates["price"] = price
		}
		if categoryIDStr := c.PostForm("category_id"); categoryIDStr != "" {
			categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, uint(categoryID)).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			updates["category_id"] = uint(categoryID)
		}
		if available, ok := c.GetPostForm("available"); ok {
			updates["available"] = available == "true"
		}
		if featured, ok := c.GetPostForm("featured"); ok {
			updates["featured"] = featured == "true"
		}

		if imageURL, err := SaveImage(c, "image", "meals"); err == nil {
			updates["image"] = imageURL
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		if len(updates) > 0 {
			if err := tx.Model(&meal).Updates(updates).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal"})
				return
			}
		}

		if extrasStr, ok := c.GetPostForm("extras"); ok {
			if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.Extra{}).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace extras"})
				return
			}
			for _, tok := range strings.Split(extrasStr, ",") {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				parts := strings.SplitN(tok, ":", 2)
				if len(parts) != 2 {
					tx.Rollback()
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid extras format, expected name:price"})
					return
				}
				extraPrice, err := strconv.ParseFloat(parts[1], 64)
				if err != nil {
					tx.Rollback()
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid extras format, expected name:price"})
					return
				}
				if err := tx.Create(&models.Extra{MealID: meal.ID, Name: parts[0], Price: extraPrice}).Error; err != nil {
					tx.Rollback()
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save extras"})
					return
				}
			}
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit meal update"})
			return
		}

		db.Preload("Category").Preload("Extras").First(&meal, meal.ID)
		c.JSON(http.StatusOK, meal)
	}
}
