package models

import (
	"math"
	"math/rand"
	"testing"
)

func TestCartTotal(t *testing.T) {
	items := []CartItem{
		{MealID: 1, MealPrice: 9.50, Quantity: 2},
		{MealID: 2, MealPrice: 12.00, ExtrasPrice: 1.50, Quantity: 1},
	}
	want := 9.50*2 + (12.00+1.50)*1
	if got := CartTotal(items); got != want {
		t.Errorf("CartTotal = %.2f, want %.2f", got, want)
	}

	if got := CartTotal(nil); got != 0 {
		t.Errorf("empty cart total = %.2f, want 0", got)
	}
}

// Random add/remove/quantity sequences must never drive the total negative
// or non-finite.
func TestCartTotal_RandomOperationSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 100; trial++ {
		items := map[uint]CartItem{}

		for op := 0; op < 50; op++ {
			id := uint(rng.Intn(8) + 1)
			switch rng.Intn(3) {
			case 0: // add: accumulate quantity on an existing line
				qty := rng.Intn(4) + 1
				if existing, ok := items[id]; ok {
					existing.Quantity += qty
					items[id] = existing
				} else {
					items[id] = CartItem{
						MealID:      id,
						MealPrice:   math.Round(rng.Float64()*3000) / 100,
						ExtrasPrice: math.Round(rng.Float64()*500) / 100,
						Quantity:    qty,
					}
				}
			case 1: // remove
				delete(items, id)
			case 2: // set quantity; non-positive removes
				qty := rng.Intn(5) - 1
				if existing, ok := items[id]; ok {
					if qty <= 0 {
						delete(items, id)
					} else {
						existing.Quantity = qty
						items[id] = existing
					}
				}
			}

			list := make([]CartItem, 0, len(items))
			var want float64
			for _, it := range items {
				list = append(list, it)
				want += (it.MealPrice + it.ExtrasPrice) * float64(it.Quantity)
			}

			got := CartTotal(list)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("trial %d: total is not finite: %v", trial, got)
			}
			if got < 0 {
				t.Fatalf("trial %d: total went negative: %v", trial, got)
			}
			if math.Abs(got-want) > 1e-9 {
				t.Fatalf("trial %d: total %.4f != sum of lines %.4f", trial, got, want)
			}
		}
	}
}
