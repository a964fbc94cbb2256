// internal/configurator/pricing_test.go
package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modgarage/garage-backend/internal/models"
)

func TestEffectivePrice(t *testing.T) {
	assert.Equal(t, int64(1000), EffectivePrice(1000, 0))
	assert.Equal(t, int64(900), EffectivePrice(1000, 10))
	assert.Equal(t, int64(0), EffectivePrice(1000, 100))
	assert.Equal(t, int64(1000), EffectivePrice(1000, -5))
	assert.Equal(t, int64(0), EffectivePrice(1000, 120))

	// round-half-up on fractional currency units: 999 * 0.85 = 849.15
	assert.Equal(t, int64(849), EffectivePrice(999, 15))
	// 150 * 0.95 = 142.5 rounds up
	assert.Equal(t, int64(143), EffectivePrice(150, 5))
}

func TestCartSubtotal(t *testing.T) {
	assert.Zero(t, CartSubtotal(nil))

	items := []models.CartItem{
		{EffectivePrice: 40500},
		{EffectivePrice: 11875},
	}
	assert.Equal(t, int64(52375), CartSubtotal(items))
}

func TestFinishSurchargeAppliedOnce(t *testing.T) {
	items := []models.CartItem{
		{Category: models.CategoryPaint, EffectivePrice: 65000},
		{Category: models.CategoryPaint, EffectivePrice: 28000},
	}

	// Surcharge depends on the finish selection, not on how many
	// paint-adjacent items are in the cart.
	assert.Equal(t, int64(93000), Total(items, models.FinishGlossy))
	assert.Equal(t, int64(93000)+PremiumFinishSurcharge, Total(items, models.FinishMatte))
}

func TestTotalDeterministic(t *testing.T) {
	items := []models.CartItem{
		{EffectivePrice: 40500},
		{EffectivePrice: 52000},
	}

	first := Total(items, models.FinishPearlescent)
	second := Total(items, models.FinishPearlescent)
	assert.Equal(t, first, second)
}
