// internal/configurator/session.go
package configurator

import (
	"strings"

	"github.com/google/uuid"

	"github.com/modgarage/garage-backend/internal/duration"
	"github.com/modgarage/garage-backend/internal/models"
)

// Choices captures the selections that live outside the cart: body color,
// finish, and the ids the preview layer needs to highlight.
type Choices struct {
	VehicleColor        string             `json:"vehicle_color"`
	ColorFinish         models.ColorFinish `json:"color_finish"`
	SelectedBodyKit     string             `json:"selected_body_kit"`
	SelectedSpoiler     string             `json:"selected_spoiler"`
	MainCategory        models.Category    `json:"main_category"`
	ExteriorSubcategory string             `json:"exterior_subcategory"`
}

// Session is the explicit per-user configuration state: one vehicle, one
// cart, the derived applied-customization projection, wizard position and
// gamification ledger. No hidden globals; everything the configurator
// computes hangs off this object.
//
// A session has exactly one mutator. Callers that may touch a session from
// multiple goroutines (the HTTP layer) must serialize access; see
// services.SessionManager.
type Session struct {
	ID        uuid.UUID
	ProjectID *uuid.UUID // assigned by the first successful save
	VehicleID string

	items   []models.CartItem
	applied []models.AppliedCustomization
	likes   map[string]bool
	choices Choices
	wizard  *Wizard
	ledger  *Ledger
}

func NewSession() *Session {
	return &Session{
		ID:      uuid.New(),
		likes:   make(map[string]bool),
		choices: Choices{ColorFinish: models.DefaultFinish},
		wizard:  NewWizard(),
		ledger:  &Ledger{},
	}
}

// SelectVehicle binds the session to a vehicle and forces the wizard to the
// customize step regardless of its current position. This is the only
// non-linear wizard transition.
func (s *Session) SelectVehicle(vehicleID string) {
	s.VehicleID = vehicleID
	s.wizard.Jump(StepCustomize)
}

// AddItem inserts a snapshot cart line for the catalog item. Duplicate ids
// report ErrAlreadyInCart without touching state; items whose compatibility
// set excludes the active vehicle are rejected before insertion. Exclusive
// visual layers (body kit, paint, wheels, interior) supersede any prior
// record of the same type.
func (s *Session) AddItem(item *models.CatalogItem) (models.CartItem, error) {
	if s.Contains(item.ItemID) {
		return models.CartItem{}, ErrAlreadyInCart
	}
	if s.VehicleID != "" && !item.CompatibleWith(s.VehicleID) {
		return models.CartItem{}, ErrIncompatibleItem
	}

	line := models.CartItem{
		CatalogItemID:        item.ItemID,
		Name:                 item.Name,
		Category:             item.Category,
		Subcategory:          item.Subcategory,
		EffectivePrice:       EffectivePrice(item.BasePrice, item.DiscountPercent),
		InstallationDuration: item.InstallationDuration,
	}
	s.items = append(s.items, line)
	s.applyCustomization(line)
	s.ledger.Award(PointsAddToCart)

	return line, nil
}

// RemoveItem removes the cart line and every applied-customization record
// sourced from it. Removing an absent id reports ErrNotInCart.
func (s *Session) RemoveItem(itemID string) error {
	idx := -1
	for i, line := range s.items {
		if line.CatalogItemID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotInCart
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.dropCustomizations(itemID)

	if s.choices.SelectedBodyKit == itemID {
		s.choices.SelectedBodyKit = ""
	}
	if s.choices.SelectedSpoiler == itemID {
		s.choices.SelectedSpoiler = ""
	}

	return nil
}

func (s *Session) Contains(itemID string) bool {
	for _, line := range s.items {
		if line.CatalogItemID == itemID {
			return true
		}
	}
	return false
}

// ToggleLike flips the favorite flag for an item and returns the new state.
// Likes are an independent set; they are not tied to cart membership and do
// not affect pricing.
func (s *Session) ToggleLike(itemID string) bool {
	s.likes[itemID] = !s.likes[itemID]
	return s.likes[itemID]
}

func (s *Session) Liked(itemID string) bool {
	return s.likes[itemID]
}

// Items returns a copy of the cart lines in insertion order.
func (s *Session) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Applied returns a copy of the ordered applied-customization feed consumed
// by the rendering collaborator.
func (s *Session) Applied() []models.AppliedCustomization {
	out := make([]models.AppliedCustomization, len(s.applied))
	copy(out, s.applied)
	return out
}

func (s *Session) Choices() Choices {
	return s.choices
}

// SetColor updates the body color and repaints any active paint/wrap
// records so the preview stays in sync.
func (s *Session) SetColor(color string) {
	s.choices.VehicleColor = color
	for i := range s.applied {
		if s.applied[i].Type == models.AppliedTypePaint || s.applied[i].Type == models.AppliedTypeWrap {
			s.applied[i].Color = color
		}
	}
}

func (s *Session) SetFinish(finish models.ColorFinish) {
	if finish.Valid() {
		s.choices.ColorFinish = finish
	}
}

func (s *Session) SetBrowseContext(main models.Category, exteriorSub string) {
	s.choices.MainCategory = main
	s.choices.ExteriorSubcategory = exteriorSub
}

// Quote derives the current price and installation-time view. Pure over the
// session state: repeated calls without mutation are identical.
func (s *Session) Quote() Quote {
	hours := duration.SumHours(s.items)
	return Quote{
		Subtotal:         CartSubtotal(s.items),
		FinishSurcharge:  FinishSurcharge(s.choices.ColorFinish),
		Total:            Total(s.items, s.choices.ColorFinish),
		InstallationTime: hours,
		InstallationText: duration.FormatHours(hours),
	}
}

// Wizard step handling. Forward transitions award points; transitions never
// fail.

func (s *Session) Step() Step {
	return s.wizard.Current()
}

func (s *Session) NextStep() (Step, bool) {
	step, completed := s.wizard.Next()
	if !completed {
		s.ledger.Award(PointsStepAdvance)
	}
	return step, completed
}

func (s *Session) PreviousStep() Step {
	return s.wizard.Previous()
}

// Share records a share action on the ledger.
func (s *Session) Share() {
	s.ledger.Award(PointsShareProject)
}

func (s *Session) Ledger() *Ledger {
	return s.ledger
}

// State exports the opaque persistence blob: cart line snapshots plus the
// non-cart choices. Effective prices travel inside the lines, so a resumed
// cart prices identically even if the catalog changed in the meantime.
func (s *Session) State() models.CustomizationState {
	return models.CustomizationState{
		VehicleColor:        s.choices.VehicleColor,
		ColorFinish:         s.choices.ColorFinish,
		SelectedBodyKit:     s.choices.SelectedBodyKit,
		SelectedSpoiler:     s.choices.SelectedSpoiler,
		CartItems:           s.Items(),
		MainCategory:        s.choices.MainCategory,
		ExteriorSubcategory: s.choices.ExteriorSubcategory,
	}
}

// Restore rebuilds the session from a persisted blob. Cart lines are taken
// verbatim (they are snapshots); the applied-customization projection is
// re-derived from them.
func (s *Session) Restore(vehicleID string, state models.CustomizationState) {
	s.VehicleID = vehicleID
	s.choices = Choices{
		VehicleColor:        state.VehicleColor,
		ColorFinish:         state.ColorFinish,
		SelectedBodyKit:     state.SelectedBodyKit,
		SelectedSpoiler:     state.SelectedSpoiler,
		MainCategory:        state.MainCategory,
		ExteriorSubcategory: state.ExteriorSubcategory,
	}
	if !s.choices.ColorFinish.Valid() {
		s.choices.ColorFinish = models.DefaultFinish
	}

	s.items = nil
	s.applied = nil
	for _, line := range state.CartItems {
		if s.Contains(line.CatalogItemID) {
			continue
		}
		s.items = append(s.items, line)
		s.applyCustomization(line)
	}

	s.wizard.Jump(StepCustomize)
}

// applyCustomization projects a cart line onto the render-facing feed,
// enforcing the exclusive-vs-additive rule.
func (s *Session) applyCustomization(line models.CartItem) {
	t, ok := appliedTypeFor(line)
	if !ok {
		return
	}

	record := models.AppliedCustomization{
		Type:         t,
		SourceItemID: line.CatalogItemID,
	}
	if t == models.AppliedTypePaint || t == models.AppliedTypeWrap {
		record.Color = s.choices.VehicleColor
	}
	if t == models.AppliedTypeWrap {
		record.Texture = line.Subcategory
	}

	if t.Exclusive() {
		kept := s.applied[:0]
		for _, r := range s.applied {
			if r.Type != t {
				kept = append(kept, r)
			}
		}
		s.applied = kept
	}
	s.applied = append(s.applied, record)

	if t == models.AppliedTypeBodyKit {
		if isSpoiler(line.Subcategory) {
			s.choices.SelectedSpoiler = line.CatalogItemID
		} else {
			s.choices.SelectedBodyKit = line.CatalogItemID
		}
	}
}

func (s *Session) dropCustomizations(itemID string) {
	kept := s.applied[:0]
	for _, r := range s.applied {
		if r.SourceItemID != itemID {
			kept = append(kept, r)
		}
	}
	s.applied = kept
}

// appliedTypeFor maps a cart category to its visual layer. Performance
// parts have no render-facing layer.
func appliedTypeFor(line models.CartItem) (models.AppliedType, bool) {
	switch line.Category {
	case models.CategoryExterior:
		return models.AppliedTypeBodyKit, true
	case models.CategoryPaint:
		if isWrap(line.Subcategory) {
			return models.AppliedTypeWrap, true
		}
		return models.AppliedTypePaint, true
	case models.CategoryWheels:
		return models.AppliedTypeWheels, true
	case models.CategoryLighting:
		return models.AppliedTypeLighting, true
	case models.CategoryInterior:
		return models.AppliedTypeInterior, true
	}
	return "", false
}

func isWrap(subcategory string) bool {
	return strings.Contains(strings.ToLower(subcategory), "wrap")
}

func isSpoiler(subcategory string) bool {
	return strings.Contains(strings.ToLower(subcategory), "spoiler")
}
