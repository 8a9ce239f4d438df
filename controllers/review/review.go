package reviewControllers

import (
	"encoding/json"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	mealController "github.com/Lacoustre/food-delivery-app-sub001/controllers/meal"
	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const maxReviewImages = 3

// hasOrderedMeal reports whether the user has a delivered or completed
// order containing the meal. Reviews are gated on this.
func hasOrderedMeal(db *gorm.DB, userID string, mealID uint) (bool, error) {
	var count int64
	err := db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.meal_id = ? AND orders.status IN ?",
			userID, mealID, []models.OrderStatus{models.OrderStatusDelivered, models.OrderStatusCompleted}).
		Count(&count).Error
	return count > 0, err
}

// SubmitReview handles POST /user/meals/:meal_id/reviews (multipart form).
// Rating is validated before any image work so a bad rating never costs an
// upload. Image save failures degrade the review to text-only rather than
// failing the submission.
func SubmitReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		mealID64, err := strconv.ParseUint(c.Param("meal_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal ID"})
			return
		}
		mealID := uint(mealID64)

		rating, err := strconv.Atoi(c.PostForm("rating"))
		if err != nil || rating < 1 || rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
			return
		}

		// Reject oversized submissions before any DB or disk work.
		var files []*multipart.FileHeader
		if form, err := c.MultipartForm(); err == nil && form != nil {
			files = form.File["images"]
		}
		if len(files) > maxReviewImages {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A review can have at most 3 images"})
			return
		}

		var target models.Meal
		if err := db.First(&target, mealID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}

		eligible, err := hasOrderedMeal(db, userID, mealID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify order history"})
			return
		}
		if !eligible {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only review meals from delivered orders"})
			return
		}

		var user models.User
		userName := "Customer"
		if err := db.First(&user, "id = ?", userID).Error; err == nil && user.Name != "" {
			userName = user.Name
		}

		// Image save failures degrade the review to text-only; the warning
		// travels back in the response so the client can tell the user.
		var imageURLs []string
		var warning string
		for _, file := range files {
			url, err := mealController.SaveUpload(c, file, "reviews")
			if err != nil {
				log.Printf("⚠️ Review image upload failed, continuing without images: %v", err)
				imageURLs = nil
				warning = "Images could not be saved, review submitted without them"
				break
			}
			imageURLs = append(imageURLs, url)
		}

		imagesJSON, err := json.Marshal(imageURLs)
		if err != nil {
			imagesJSON = []byte("[]")
		}

		review := models.Review{
			MealID:   mealID,
			UserID:   userID,
			UserName: userName,
			Rating:   rating,
			Comment:  c.PostForm("comment"),
			Images:   datatypes.JSON(imagesJSON),
		}

		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}

		log.Printf("📝 Review created for meal %d by user %s (rating %d)", mealID, userID, rating)
		resp := gin.H{"review": review}
		if warning != "" {
			resp["warning"] = warning
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// GetMealReviews handles GET /meals/:id/reviews. Returns the reviews
// newest first plus the average rating (0 when there are none).
func GetMealReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		mealID := c.Param("id")

		var reviews []models.Review
		if err := db.Where("meal_id = ?", mealID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"reviews": reviews,
			"count":   len(reviews),
			"average": AverageRating(reviews),
		})
	}
}

// AverageRating returns the mean rating rounded to one decimal, or 0 for an
// empty slice.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return float64(int(avg*10+0.5)) / 10
}

// DeleteReview handles DELETE /admin/reviews/:id.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		result := db.Delete(&models.Review{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
