// internal/database/seed.go
package database

import (
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/modgarage/garage-backend/internal/models"
)

// SeedCatalog loads the starter catalog when the tables are empty. The
// catalog is reference data; deployments with their own catalog pipeline
// disable seeding via DB_SEED_CATALOG=false.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.CatalogItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	logrus.Info("Seeding catalog data...")

	vehicles := seedVehicles()
	if err := db.Create(&vehicles).Error; err != nil {
		return fmt.Errorf("failed to seed vehicles: %w", err)
	}

	items := seedItems()
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to seed catalog items: %w", err)
	}

	return nil
}

func seedVehicles() []models.Vehicle {
	return []models.Vehicle{
		{VehicleID: "swift-2023", Make: "Maruti Suzuki", Model: "Swift", Year: 2023, BodyStyle: "hatchback", DefaultColor: "#c0c0c0"},
		{VehicleID: "thar-2023", Make: "Mahindra", Model: "Thar", Year: 2023, BodyStyle: "suv", DefaultColor: "#1b1b1b"},
		{VehicleID: "city-2024", Make: "Honda", Model: "City", Year: 2024, BodyStyle: "sedan", DefaultColor: "#ffffff"},
	}
}

func seedItems() []models.CatalogItem {
	universal := pq.StringArray{models.CompatibilityUniversal}

	return []models.CatalogItem{
		{
			ItemID: "bk-street-01", Name: "Street Line Body Kit",
			Description: "Front and rear bumper extensions with side skirts for a lower stance.",
			Category:    models.CategoryExterior, Subcategory: "body-kits",
			BasePrice: 45000, DiscountPercent: 10, InstallationDuration: "1 day",
			Compatibility: pq.StringArray{"swift-2023", "city-2024"}, Popularity: 88,
			Tags: pq.StringArray{"street", "stance"},
		},
		{
			ItemID: "bk-offroad-01", Name: "Trail Armor Kit",
			Description: "Reinforced bumpers, rock sliders and fender flares for off-road builds.",
			Category:    models.CategoryExterior, Subcategory: "body-kits",
			BasePrice: 78000, InstallationDuration: "2 days",
			Compatibility: pq.StringArray{"thar-2023"}, Popularity: 74,
			Tags: pq.StringArray{"offroad"},
		},
		{
			ItemID: "sp-gt-01", Name: "GT Rear Spoiler",
			Description: "Lightweight composite rear spoiler with adjustable angle.",
			Category:    models.CategoryExterior, Subcategory: "spoilers",
			BasePrice: 12500, DiscountPercent: 5, InstallationDuration: "2-3 hours",
			Compatibility: pq.StringArray{"swift-2023", "city-2024"}, Popularity: 81,
		},
		{
			ItemID: "pt-midnight-01", Name: "Midnight Blue Repaint",
			Description: "Full-body repaint in deep midnight blue with clear coat.",
			Category:    models.CategoryPaint, Subcategory: "full-body",
			BasePrice: 65000, InstallationDuration: "3 days",
			Compatibility: universal, Popularity: 92,
		},
		{
			ItemID: "pt-wrap-carbon", Name: "Carbon Fiber Wrap",
			Description: "Textured carbon-look vinyl wrap for hood and roof.",
			Category:    models.CategoryPaint, Subcategory: "vinyl-wrap",
			BasePrice: 28000, DiscountPercent: 15, InstallationDuration: "6+ hours",
			Compatibility: universal, Popularity: 85,
		},
		{
			ItemID: "wh-alloy-17", Name: "17\" Forged Alloy Wheels",
			Description: "Set of four forged alloy wheels in gunmetal grey.",
			Category:    models.CategoryWheels, Subcategory: "alloys",
			BasePrice: 52000, DiscountPercent: 8, InstallationDuration: "2 hours",
			Compatibility: universal, Popularity: 95,
		},
		{
			ItemID: "lt-underglow-01", Name: "RGB Underglow Kit",
			Description: "App-controlled RGB underbody lighting with music sync.",
			Category:    models.CategoryLighting, Subcategory: "underglow",
			BasePrice: 9500, InstallationDuration: "3-4 hours",
			Compatibility: universal, Popularity: 70,
		},
		{
			ItemID: "lt-drl-01", Name: "LED DRL Strips",
			Description: "Daytime running light strips with sequential turn signals.",
			Category:    models.CategoryLighting, Subcategory: "drl",
			BasePrice: 6800, DiscountPercent: 10, InstallationDuration: "2 hours",
			Compatibility: universal, Popularity: 77,
		},
		{
			ItemID: "in-leather-01", Name: "Nappa Leather Upholstery",
			Description: "Full cabin reupholstery in perforated nappa leather.",
			Category:    models.CategoryInterior, Subcategory: "upholstery",
			BasePrice: 38000, InstallationDuration: "2 days",
			Compatibility: universal, Popularity: 66,
		},
		{
			ItemID: "pf-exhaust-01", Name: "Performance Exhaust System",
			Description: "Free-flow stainless exhaust with titanium tip.",
			Category:    models.CategoryPerformance, Subcategory: "exhaust",
			BasePrice: 24000, DiscountPercent: 12, InstallationDuration: "4 hours",
			Compatibility: pq.StringArray{"swift-2023", "thar-2023"}, Popularity: 83,
		},
		{
			ItemID: "pf-intake-01", Name: "Cold Air Intake",
			Description: "High-flow cold air intake with washable filter.",
			Category:    models.CategoryPerformance, Subcategory: "intake",
			BasePrice: 11000, InstallationDuration: "1-2 hours",
			Compatibility: universal, Popularity: 62,
		},
	}
}
