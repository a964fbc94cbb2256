// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modgarage/garage-backend/internal/models"
)

func testCatalog() *CatalogService {
	items := []models.CatalogItem{
		{
			ItemID: "bk-street-01", Name: "Street Line Body Kit",
			Description: "Front and rear bumper extensions with side skirts.",
			Category:    models.CategoryExterior, Subcategory: "body-kits",
			Compatibility: pq.StringArray{"swift-2023", "city-2024"}, Popularity: 88,
		},
		{
			ItemID: "sp-gt-01", Name: "GT Rear Spoiler",
			Description: "Lightweight composite rear spoiler.",
			Category:    models.CategoryExterior, Subcategory: "spoilers",
			Compatibility: pq.StringArray{"swift-2023"}, Popularity: 81,
		},
		{
			ItemID: "wh-alloy-17", Name: "17\" Forged Alloy Wheels",
			Description: "Set of four forged alloy wheels.",
			Category:    models.CategoryWheels, Subcategory: "alloys",
			Compatibility: pq.StringArray{models.CompatibilityUniversal}, Popularity: 95,
		},
	}
	vehicles := []models.Vehicle{
		{VehicleID: "swift-2023", Make: "Maruti Suzuki", Model: "Swift"},
		{VehicleID: "thar-2023", Make: "Mahindra", Model: "Thar"},
	}
	return NewStaticCatalog(items, vehicles)
}

func TestFilterByCategory(t *testing.T) {
	catalog := testCatalog()

	exterior := catalog.Filter(models.CategoryExterior, "", "")
	assert.Len(t, exterior, 2)

	spoilers := catalog.Filter(models.CategoryExterior, "spoilers", "")
	require.Len(t, spoilers, 1)
	assert.Equal(t, "sp-gt-01", spoilers[0].ItemID)
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	catalog := testCatalog()

	byName := catalog.Filter("", "", "SPOILER")
	require.Len(t, byName, 1)
	assert.Equal(t, "sp-gt-01", byName[0].ItemID)

	byDescription := catalog.Filter("", "", "bumper extensions")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "bk-street-01", byDescription[0].ItemID)
}

func TestFilterUnknownCriteriaReturnEmpty(t *testing.T) {
	catalog := testCatalog()

	assert.Empty(t, catalog.Filter(models.CategoryPerformance, "", ""))
	assert.Empty(t, catalog.Filter("", "hovercraft-parts", ""))
	assert.Empty(t, catalog.Filter("", "", "no such thing anywhere"))
}

func TestIsCompatible(t *testing.T) {
	catalog := testCatalog()

	assert.True(t, catalog.IsCompatible("bk-street-01", "swift-2023"))
	assert.False(t, catalog.IsCompatible("bk-street-01", "thar-2023"))
	// universal fits everything
	assert.True(t, catalog.IsCompatible("wh-alloy-17", "thar-2023"))
	// unknown items are never compatible
	assert.False(t, catalog.IsCompatible("ghost", "swift-2023"))
}

func TestCompatibleItems(t *testing.T) {
	catalog := testCatalog()

	forThar := catalog.CompatibleItems("thar-2023", "", "", "")
	require.Len(t, forThar, 1)
	assert.Equal(t, "wh-alloy-17", forThar[0].ItemID)
}

func TestPopularOrdering(t *testing.T) {
	catalog := testCatalog()

	top := catalog.Popular(2)
	require.Len(t, top, 2)
	assert.Equal(t, "wh-alloy-17", top[0].ItemID)
	assert.Equal(t, "bk-street-01", top[1].ItemID)
}

func TestSubcategories(t *testing.T) {
	catalog := testCatalog()

	subs := catalog.Subcategories()
	assert.Equal(t, []string{"body-kits", "spoilers"}, subs[models.CategoryExterior])
	assert.Equal(t, []string{"alloys"}, subs[models.CategoryWheels])
}
