package mealController

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UploadsDir is where meal/review/banner images land; served under /uploads.
func UploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// SaveImage stores one uploaded file under the given subfolder and returns
// the public URL path.
func SaveImage(c *gin.Context, fieldName, subfolder string) (string, error) {
	file, err := c.FormFile(fieldName)
	if err != nil {
		return "", err
	}
	return SaveUpload(c, file, subfolder)
}

// SaveUpload writes an already-parsed multipart file; used where a form
// carries several files under one field.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, subfolder string) (string, error) {
	filename := strings.ReplaceAll(file.Filename, " ", "_")

	saveDir := filepath.Join(UploadsDir(), subfolder)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %v", err)
	}
	savePath := filepath.Join(saveDir, filename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", fmt.Errorf("failed to save image: %v", err)
	}
	return fmt.Sprintf("/uploads/%s/%s", subfolder, filename), nil
}

// CreateMeal creates a new meal with category, extras, and an image upload.
func CreateMeal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		categoryIDStr := c.PostForm("category_id")
		if name == "" || priceStr == "" || categoryIDStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and category_id are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
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

		// Optional extras as "name:price" pairs, comma separated
		var extras []models.Extra
		if extrasStr := c.PostForm("extras"); extrasStr != "" {
			for _, tok := range strings.Split(extrasStr, ",") {
				parts := strings.SplitN(strings.TrimSpace(tok), ":", 2)
				if len(parts) != 2 {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid extras format, expected name:price"})
					return
				}
				extraPrice, err := strconv.ParseFloat(parts[1], 64)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid extras format, expected name:price"})
					return
				}
				extras = append(extras, models.Extra{Name: parts[0], Price: extraPrice})
			}
		}

		imageURL, err := SaveImage(c, "image", "meals")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		newMeal := models.Meal{
			Name:        name,
			Description: c.PostForm("description"),
			Price:       price,
			Image:       imageURL,
			CategoryID:  uint(categoryID),
			Extras:      extras,
			Available:   c.DefaultPostForm("available", "true") == "true",
			Featured:    c.PostForm("featured") == "true",
		}

		if err := db.Create(&newMeal).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
			return
		}

		c.JSON(http.StatusCreated, newMeal)
	}
}
