// internal/models/catalog.go
package models

import (
	"github.com/lib/pq"
)

// CompatibilityUniversal marks an item that fits every vehicle.
const CompatibilityUniversal = "universal"

// CatalogItem is a purchasable modification. Items are immutable once
// published; carts snapshot the pricing fields at selection time, so later
// catalog edits never change an existing cart's totals.
type CatalogItem struct {
	BaseModel
	ItemID               string         `json:"item_id" gorm:"size:100;uniqueIndex;not null"`
	Name                 string         `json:"name" gorm:"size:255;not null"`
	Description          string         `json:"description" gorm:"type:text"`
	Category             Category       `json:"category" gorm:"type:varchar(20);not null;index"`
	Subcategory          string         `json:"subcategory" gorm:"size:100;index"`
	BasePrice            int64          `json:"base_price" gorm:"not null"`
	DiscountPercent      int            `json:"discount_percent" gorm:"default:0"`
	InstallationDuration string         `json:"installation_duration" gorm:"size:50"`
	Compatibility        pq.StringArray `json:"compatibility" gorm:"type:text[]"`
	Popularity           int            `json:"popularity" gorm:"default:0"`
	Tags                 pq.StringArray `json:"tags" gorm:"type:text[]"`
}

// CompatibleWith reports whether the item fits the given vehicle. An empty
// compatibility set or the "universal" marker fits everything.
func (i *CatalogItem) CompatibleWith(vehicleID string) bool {
	if len(i.Compatibility) == 0 {
		return true
	}
	for _, v := range i.Compatibility {
		if v == CompatibilityUniversal || v == vehicleID {
			return true
		}
	}
	return false
}

// Vehicle is a configurable base model from the showroom.
type Vehicle struct {
	BaseModel
	VehicleID    string `json:"vehicle_id" gorm:"size:100;uniqueIndex;not null"`
	Make         string `json:"make" gorm:"size:100;not null"`
	Model        string `json:"model" gorm:"size:100;not null"`
	Year         int    `json:"year"`
	BodyStyle    string `json:"body_style" gorm:"size:50"`
	DefaultColor string `json:"default_color" gorm:"size:20"`
}
