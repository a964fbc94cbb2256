// internal/models/cart.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// CartItem is a snapshot of the catalog fields needed for pricing and
// display, frozen at selection time. One entry per distinct catalog item id.
type CartItem struct {
	CatalogItemID        string   `json:"catalog_item_id"`
	Name                 string   `json:"name"`
	Category             Category `json:"category"`
	Subcategory          string   `json:"subcategory"`
	EffectivePrice       int64    `json:"effective_price"`
	InstallationDuration string   `json:"installation_duration"`
}

// AppliedCustomization is a derived, render-facing record describing which
// visual layer is active. Consumed read-only by the preview collaborator.
type AppliedCustomization struct {
	Type         AppliedType `json:"type"`
	SourceItemID string      `json:"source_item_id"`
	Color        string      `json:"color,omitempty"`
	Texture      string      `json:"texture,omitempty"`
}

// CustomizationState is the opaque blob persisted inside a project. The
// transport never inspects it; the project store round-trips it so a resumed
// cart prices identically even after catalog edits.
type CustomizationState struct {
	VehicleColor        string      `json:"vehicleColor"`
	ColorFinish         ColorFinish `json:"colorFinish"`
	SelectedBodyKit     string      `json:"selectedBodyKit"`
	SelectedSpoiler     string      `json:"selectedSpoiler"`
	CartItems           []CartItem  `json:"cartItems"`
	MainCategory        Category    `json:"mainCategory"`
	ExteriorSubcategory string      `json:"exteriorSubcategory"`
}

func (s CustomizationState) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *CustomizationState) Scan(value interface{}) error {
	if value == nil {
		*s = CustomizationState{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("customization state: unsupported column type")
	}

	return json.Unmarshal(bytes, s)
}
