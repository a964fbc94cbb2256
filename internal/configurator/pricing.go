// internal/configurator/pricing.go
package configurator

import (
	"math"

	"github.com/modgarage/garage-backend/internal/models"
)

// PremiumFinishSurcharge is the fixed labor surcharge for a non-default
// paint finish. It is applied at most once per quote, regardless of how many
// paint-adjacent items are in the cart.
const PremiumFinishSurcharge int64 = 4500

// Quote is the derived price and installation-time view of a cart.
type Quote struct {
	Subtotal         int64   `json:"subtotal"`
	FinishSurcharge  int64   `json:"finish_surcharge"`
	Total            int64   `json:"total"`
	InstallationTime float64 `json:"installation_hours"`
	InstallationText string  `json:"installation_display"`
}

// EffectivePrice applies an item's own discount to its base price, rounded
// half-up to whole currency units.
func EffectivePrice(basePrice int64, discountPercent int) int64 {
	if discountPercent <= 0 {
		return basePrice
	}
	if discountPercent > 100 {
		discountPercent = 100
	}
	discounted := float64(basePrice) * (1 - float64(discountPercent)/100)
	return int64(math.Floor(discounted + 0.5))
}

// CartSubtotal sums the snapshotted effective prices of all cart lines.
func CartSubtotal(items []models.CartItem) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += item.EffectivePrice
	}
	return subtotal
}

// FinishSurcharge returns the surcharge owed for the selected finish.
func FinishSurcharge(finish models.ColorFinish) int64 {
	if finish == models.DefaultFinish || finish == "" {
		return 0
	}
	return PremiumFinishSurcharge
}

// Total prices a cart plus finish selection. Pure: two calls over the same
// inputs yield the same value.
func Total(items []models.CartItem, finish models.ColorFinish) int64 {
	return CartSubtotal(items) + FinishSurcharge(finish)
}
