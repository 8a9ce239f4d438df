package reviewControllers

import (
	"bytes"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/gin-gonic/gin"
)

// postReview builds a multipart submission and runs it through the handler
// with no database, so only validation that happens before any query can
// answer.
func postReview(t *testing.T, rating string, imageCount int) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if err := mw.WriteField("rating", rating); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < imageCount; i++ {
		fw, err := mw.CreateFormFile("images", "dish.jpg")
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte("not a real jpeg"))
	}
	mw.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/user/meals/1/reviews", body)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	c.Params = gin.Params{{Key: "meal_id", Value: "1"}}
	c.Set("user_id", "user-123")

	SubmitReview(nil)(c)
	return w
}

func TestSubmitReviewRejectsTooManyImages(t *testing.T) {
	w := postReview(t, "5", maxReviewImages+1)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSubmitReviewRejectsBadRating(t *testing.T) {
	for _, rating := range []string{"0", "6", "abc"} {
		w := postReview(t, rating, 0)
		if w.Code != http.StatusBadRequest {
			t.Errorf("rating %q: status = %d, want %d", rating, w.Code, http.StatusBadRequest)
		}
	}
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"no reviews", nil, 0},
		{"single review", []int{4}, 4},
		{"mixed ratings", []int{5, 4, 4}, 4.3},
		{"all fives", []int{5, 5, 5, 5}, 5},
		{"rounds to one decimal", []int{1, 2}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reviews []models.Review
			for _, r := range tt.ratings {
				reviews = append(reviews, models.Review{Rating: r})
			}
			got := AverageRating(reviews)
			if math.IsNaN(got) {
				t.Fatal("average is NaN")
			}
			if got != tt.want {
				t.Errorf("AverageRating(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}
