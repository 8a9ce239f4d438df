package promo

import (
	"errors"
	"testing"
	"time"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
)

func activePromo() models.Promotion {
	return models.Promotion{
		Code:           "SAVE10",
		DiscountType:   models.DiscountTypePercent,
		Value:          10,
		MinOrderAmount: 20,
		StartsAt:       time.Now().Add(-24 * time.Hour),
		ExpiresAt:      time.Now().Add(24 * time.Hour),
		Active:         true,
	}
}

func TestCheck_PercentPromo(t *testing.T) {
	res, err := Check(activePromo(), 50, time.Now())
	if err != nil {
		t.Fatalf("expected valid result, got error: %v", err)
	}
	if res.Discount != 5.00 {
		t.Errorf("expected discount 5.00 for 10%% of $50, got %.2f", res.Discount)
	}
}

func TestCheck_BelowMinimum(t *testing.T) {
	_, err := Check(activePromo(), 15, time.Now())
	if !errors.Is(err, ErrBelowMinimum) {
		t.Errorf("expected ErrBelowMinimum for $15 subtotal, got %v", err)
	}
}

func TestCheck_Window(t *testing.T) {
	p := activePromo()

	_, err := Check(p, 50, time.Now().Add(48*time.Hour))
	if !errors.Is(err, ErrNotActive) {
		t.Errorf("expected ErrNotActive after expiry, got %v", err)
	}

	_, err = Check(p, 50, time.Now().Add(-48*time.Hour))
	if !errors.Is(err, ErrNotActive) {
		t.Errorf("expected ErrNotActive before start, got %v", err)
	}

	p.Active = false
	_, err = Check(p, 50, time.Now())
	if !errors.Is(err, ErrNotActive) {
		t.Errorf("expected ErrNotActive for disabled promo, got %v", err)
	}
}

func TestCheck_UsageLimit(t *testing.T) {
	t.Setenv("PROMO_ENFORCE_USAGE_LIMIT", "true")

	p := activePromo()
	p.UsageLimit = 100
	p.UsedCount = 100

	_, err := Check(p, 50, time.Now())
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted at the limit, got %v", err)
	}

	p.UsedCount = 99
	if _, err := Check(p, 50, time.Now()); err != nil {
		t.Errorf("expected valid below the limit, got %v", err)
	}
}

func TestCheck_UsageLimitNotEnforcedByDefault(t *testing.T) {
	t.Setenv("PROMO_ENFORCE_USAGE_LIMIT", "")

	p := activePromo()
	p.UsageLimit = 1
	p.UsedCount = 5

	if _, err := Check(p, 50, time.Now()); err != nil {
		t.Errorf("usage limit should be configuration, got %v", err)
	}
}

func TestCheck_NegativeSubtotal(t *testing.T) {
	_, err := Check(activePromo(), -1, time.Now())
	if !errors.Is(err, ErrBadSubtotal) {
		t.Errorf("expected ErrBadSubtotal, got %v", err)
	}
}

func TestDiscountAmount_ClampedToSubtotal(t *testing.T) {
	tests := []struct {
		name     string
		promo    models.Promotion
		subtotal float64
		want     float64
	}{
		{"flat under subtotal", models.Promotion{DiscountType: models.DiscountTypeFlat, Value: 5}, 50, 5},
		{"flat over subtotal", models.Promotion{DiscountType: models.DiscountTypeFlat, Value: 80}, 50, 50},
		{"percent full", models.Promotion{DiscountType: models.DiscountTypePercent, Value: 100}, 33.33, 33.33},
		{"percent over 100 clamps", models.Promotion{DiscountType: models.DiscountTypePercent, Value: 150}, 40, 40},
		{"zero subtotal", models.Promotion{DiscountType: models.DiscountTypeFlat, Value: 10}, 0, 0},
		{"negative value yields zero", models.Promotion{DiscountType: models.DiscountTypeFlat, Value: -3}, 50, 0},
		{"unknown type yields zero", models.Promotion{DiscountType: "mystery", Value: 10}, 50, 0},
		{"rounds to cents", models.Promotion{DiscountType: models.DiscountTypePercent, Value: 10}, 19.99, 2.00},
	}
	for _, tt := range tests {
		got := DiscountAmount(tt.promo, tt.subtotal)
		if got != tt.want {
			t.Errorf("%s: DiscountAmount = %.2f, want %.2f", tt.name, got, tt.want)
		}
		if got > tt.subtotal {
			t.Errorf("%s: discount %.2f exceeds subtotal %.2f", tt.name, got, tt.subtotal)
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := NormalizeCode("  save10 "); got != "SAVE10" {
		t.Errorf("NormalizeCode = %q, want SAVE10", got)
	}
}
