// internal/configurator/ledger.go
package configurator

import "github.com/modgarage/garage-backend/internal/models"

// Point awards for user actions. The ledger does not enforce which action
// maps to which award; the wizard and cart trigger them.
const (
	PointsAddToCart    = 10
	PointsStepAdvance  = 5
	PointsSaveProject  = 25
	PointsShareProject = 50
	PointsContestEntry = 100
	PointsCustomUpload = 20
)

// Tier thresholds.
const (
	tierSilverMin   = 150
	tierGoldMin     = 300
	tierPlatinumMin = 500
)

// Ledger is a monotonic point counter for one session. Points never
// decrease.
type Ledger struct {
	points int
}

// Award adds points to the ledger. Non-positive awards are ignored.
func (l *Ledger) Award(points int) {
	if points <= 0 {
		return
	}
	l.points += points
}

func (l *Ledger) Points() int {
	return l.points
}

// Tier derives the gamification rank for the ledger's current points.
func (l *Ledger) Tier() models.Tier {
	return TierForPoints(l.points)
}

// TierForPoints is the pure tier derivation. Monotonic: higher points never
// yield a lower tier.
func TierForPoints(points int) models.Tier {
	switch {
	case points >= tierPlatinumMin:
		return models.TierPlatinum
	case points >= tierGoldMin:
		return models.TierGold
	case points >= tierSilverMin:
		return models.TierSilver
	default:
		return models.TierBronze
	}
}
