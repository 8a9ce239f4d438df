package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/Lacoustre/food-delivery-app-sub001/notify"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// GoogleUserLoginHandler verifies the Firebase ID token, upserts the user,
// merges any guest cart into the account cart, and issues a local JWT. A
// first-time login also gets the welcome email.
func GoogleUserLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB, dispatcher *notify.Dispatcher) {
	var req struct {
		IDToken string `json:"idToken"`
		GuestID string `json:"guest_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	// Verify Firebase token
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
	if err != nil {
		http.Error(w, "Invalid Firebase ID token", http.StatusUnauthorized)
		return
	}

	if token.Audience != projectID {
		http.Error(w, "Invalid token audience", http.StatusUnauthorized)
		return
	}

	// Extract user info
	email := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	firebaseUserID := token.UID

	var user models.User
	err = db.Preload("Cart.Items").Where("id = ?", firebaseUserID).First(&user).Error

	if err == gorm.ErrRecordNotFound {
		// User does not exist, create
		user = models.User{
			ID:       firebaseUserID,
			Email:    email,
			Name:     name,
			Picture:  picture,
			Provider: "google",
			Cart:     models.Cart{UserID: firebaseUserID},
		}

		if err := db.Create(&user).Error; err != nil {
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

		if dispatcher != nil {
			go dispatcher.SendWelcome(context.Background(), notify.WelcomeEmailData{
				Name:  name,
				Email: email,
			})
		}

	} else if err == nil {
		// User already exists, refresh profile
		db.Model(&user).Updates(models.User{
			Name:    name,
			Picture: picture,
		})
	} else {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	mergeStatus := "no-guest-cart"

	if req.GuestID != "" {
		merged, err := mergeGuestCartIntoUserCart(db, req.GuestID, user.ID)
		if err != nil {
			mergeStatus = "merge-failed"
		} else if merged {
			mergeStatus = "merged-success"
		} else {
			mergeStatus = "guest-cart-empty"
		}
	}

	resp := map[string]interface{}{
		"message":      "Login successful",
		"merge_status": mergeStatus,
		"user":         user,
		"firebase_id":  firebaseUserID,
		"token":        issueJWT(email, "user", firebaseUserID, name, picture),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// mergeGuestCartIntoUserCart folds the guest cart lines into the user cart.
// Matching lines (same meal and same extras snapshot) accumulate quantity,
// everything else is copied over, and the guest cart is deleted. Returns
// whether anything was merged.
func mergeGuestCartIntoUserCart(db *gorm.DB, guestID, userID string) (bool, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	var guestCart models.GuestCart
	if err := tx.Preload("Items").
		Where("guest_id = ?", guestID).
		First(&guestCart).Error; err != nil {

		tx.Rollback()
		return false, nil // nothing to merge
	}

	var userCart models.Cart
	err := tx.Preload("Items").
		Where("user_id = ?", userID).
		First(&userCart).Error

	if err == gorm.ErrRecordNotFound {
		userCart = models.Cart{UserID: userID}
		if err := tx.Create(&userCart).Error; err != nil {
			tx.Rollback()
			return false, err
		}
	} else if err != nil {
		tx.Rollback()
		return false, err
	}

	merged := false
	for _, guestItem := range guestCart.Items {
		var userItem models.CartItem

		lookupErr := tx.Where(
			"cart_id = ? AND meal_id = ? AND extras = ?",
			userCart.CartID,
			guestItem.MealID,
			guestItem.Extras,
		).First(&userItem).Error

		if lookupErr == nil {
			userItem.Quantity += guestItem.Quantity
			userItem.AddedAt = time.Now()

			if err := tx.Save(&userItem).Error; err != nil {
				tx.Rollback()
				return false, err
			}
			merged = true

		} else if lookupErr == gorm.ErrRecordNotFound {
			newItem := models.CartItem{
				CartID:      userCart.CartID,
				MealID:      guestItem.MealID,
				MealName:    guestItem.MealName,
				MealImage:   guestItem.MealImage,
				MealPrice:   guestItem.MealPrice,
				ExtrasPrice: guestItem.ExtrasPrice,
				Extras:      guestItem.Extras,
				Quantity:    guestItem.Quantity,
				AddedAt:     time.Now(),
			}

			if err := tx.Create(&newItem).Error; err != nil {
				tx.Rollback()
				return false, err
			}
			merged = true

		} else {
			tx.Rollback()
			return false, lookupErr
		}
	}

	if err := tx.Where("cart_id = ?", guestCart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Delete(&guestCart).Error; err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return false, err
	}

	return merged, nil
}

// issueJWT generates a JWT token for a user
func issueJWT(email, role, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}

	return signedToken
}
