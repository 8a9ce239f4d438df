package promo

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Validation failures are sentinel values so handlers can report each as a
// distinct user-facing message instead of a thrown error.
var (
	ErrCodeNotFound = errors.New("promo code not found")
	ErrNotActive    = errors.New("promo code is expired or not yet active")
	ErrBelowMinimum = errors.New("order subtotal is below the promo minimum")
	ErrExhausted    = errors.New("promo code usage limit reached")
	ErrBadSubtotal  = errors.New("subtotal must be non-negative")
)

// Result of a successful validation.
type Result struct {
	Promotion models.Promotion `json:"promotion"`
	Discount  float64          `json:"discount"`
}

// Validate matches a code case-insensitively against the promotions table and
// computes the discount for the given subtotal. Check order: not found,
// inactive/outside window, below minimum, exhausted. The first failing check
// is returned alone.
func Validate(db *gorm.DB, code string, subtotal float64) (*Result, error) {
	if subtotal < 0 {
		return nil, ErrBadSubtotal
	}

	var p models.Promotion
	err := db.Where("code = ?", NormalizeCode(code)).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, err
	}

	return Check(p, subtotal, time.Now())
}

// Check runs the eligibility rules for an already-loaded promotion.
func Check(p models.Promotion, subtotal float64, now time.Time) (*Result, error) {
	if subtotal < 0 {
		return nil, ErrBadSubtotal
	}
	if !p.Active || now.Before(p.StartsAt) || now.After(p.ExpiresAt) {
		return nil, ErrNotActive
	}
	if subtotal < p.MinOrderAmount {
		return nil, ErrBelowMinimum
	}
	if enforceUsageLimit() && p.UsageLimit > 0 && p.UsedCount >= p.UsageLimit {
		return nil, ErrExhausted
	}
	return &Result{Promotion: p, Discount: DiscountAmount(p, subtotal)}, nil
}

// DiscountAmount computes the discount a promotion grants on a subtotal,
// rounded to cents and clamped so the payable total can never go negative.
func DiscountAmount(p models.Promotion, subtotal float64) float64 {
	sub := decimal.NewFromFloat(subtotal)

	var d decimal.Decimal
	switch p.DiscountType {
	case models.DiscountTypePercent:
		d = sub.Mul(decimal.NewFromFloat(p.Value)).Div(decimal.NewFromInt(100))
	case models.DiscountTypeFlat:
		d = decimal.NewFromFloat(p.Value)
	default:
		return 0
	}

	d = d.Round(2)
	if d.IsNegative() {
		return 0
	}
	if d.GreaterThan(sub) {
		d = sub
	}
	amount, _ := d.Float64()
	return amount
}

// NormalizeCode upper-cases and trims a customer-typed code before lookup.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// RecordUse bumps the usage counter after checkout. The counter is always
// recorded; whether it gates validation is configuration.
func RecordUse(db *gorm.DB, code string) error {
	return db.Model(&models.Promotion{}).
		Where("code = ?", NormalizeCode(code)).
		UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error
}

func enforceUsageLimit() bool {
	return strings.EqualFold(os.Getenv("PROMO_ENFORCE_USAGE_LIMIT"), "true")
}
