// internal/services/catalog_service.go
package services

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/modgarage/garage-backend/internal/models"
)

// CatalogService is a read-only accessor over the published catalog. The
// catalog is immutable once published, so it is loaded from the database
// once at startup and served from memory afterwards. Unknown filters return
// empty slices, never errors.
type CatalogService struct {
	items    []models.CatalogItem
	byID     map[string]*models.CatalogItem
	vehicles []models.Vehicle
	byVID    map[string]*models.Vehicle
}

func NewCatalogService(db *gorm.DB) (*CatalogService, error) {
	var items []models.CatalogItem
	if err := db.Order("category, subcategory, item_id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog items: %w", err)
	}

	var vehicles []models.Vehicle
	if err := db.Order("make, model, year").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}

	return NewStaticCatalog(items, vehicles), nil
}

// NewStaticCatalog builds a catalog accessor over in-memory data. Used by
// tests and seeding.
func NewStaticCatalog(items []models.CatalogItem, vehicles []models.Vehicle) *CatalogService {
	s := &CatalogService{
		items:    items,
		byID:     make(map[string]*models.CatalogItem, len(items)),
		vehicles: vehicles,
		byVID:    make(map[string]*models.Vehicle, len(vehicles)),
	}
	for i := range s.items {
		s.byID[s.items[i].ItemID] = &s.items[i]
	}
	for i := range s.vehicles {
		s.byVID[s.vehicles[i].VehicleID] = &s.vehicles[i]
	}
	return s
}

// Filter returns the catalog items matching the given criteria. Empty
// criteria match everything; search is a case-insensitive substring match
// over name and description.
func (s *CatalogService) Filter(category models.Category, subcategory, search string) []models.CatalogItem {
	search = strings.ToLower(strings.TrimSpace(search))
	subcategory = strings.ToLower(strings.TrimSpace(subcategory))

	var out []models.CatalogItem
	for _, item := range s.items {
		if category != "" && item.Category != category {
			continue
		}
		if subcategory != "" && strings.ToLower(item.Subcategory) != subcategory {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Item looks up a catalog item by its public id.
func (s *CatalogService) Item(itemID string) (*models.CatalogItem, bool) {
	item, ok := s.byID[itemID]
	return item, ok
}

// IsCompatible reports whether an item fits a vehicle. Unknown item ids are
// never compatible.
func (s *CatalogService) IsCompatible(itemID, vehicleID string) bool {
	item, ok := s.byID[itemID]
	if !ok {
		return false
	}
	return item.CompatibleWith(vehicleID)
}

// CompatibleItems narrows a filtered listing to a specific vehicle.
func (s *CatalogService) CompatibleItems(vehicleID string, category models.Category, subcategory, search string) []models.CatalogItem {
	items := s.Filter(category, subcategory, search)
	out := items[:0]
	for _, item := range items {
		if item.CompatibleWith(vehicleID) {
			out = append(out, item)
		}
	}
	return out
}

// Popular returns up to limit items ordered by popularity, display-only.
func (s *CatalogService) Popular(limit int) []models.CatalogItem {
	out := make([]models.CatalogItem, len(s.items))
	copy(out, s.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Popularity > out[j].Popularity
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (s *CatalogService) Vehicles() []models.Vehicle {
	out := make([]models.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

func (s *CatalogService) Vehicle(vehicleID string) (*models.Vehicle, bool) {
	v, ok := s.byVID[vehicleID]
	return v, ok
}

// Subcategories lists the distinct subcategories per category, for the
// browse menus.
func (s *CatalogService) Subcategories() map[models.Category][]string {
	seen := make(map[models.Category]map[string]bool)
	for _, item := range s.items {
		if item.Subcategory == "" {
			continue
		}
		if seen[item.Category] == nil {
			seen[item.Category] = make(map[string]bool)
		}
		seen[item.Category][item.Subcategory] = true
	}

	out := make(map[models.Category][]string, len(seen))
	for cat, subs := range seen {
		for sub := range subs {
			out[cat] = append(out[cat], sub)
		}
		sort.Strings(out[cat])
	}
	return out
}
