// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Enums

// Category is the closed set of catalog item categories.
type Category string

const (
	CategoryExterior    Category = "exterior"
	CategoryPaint       Category = "paint"
	CategoryWheels      Category = "wheels"
	CategoryLighting    Category = "lighting"
	CategoryInterior    Category = "interior"
	CategoryPerformance Category = "performance"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryExterior, CategoryPaint, CategoryWheels,
		CategoryLighting, CategoryInterior, CategoryPerformance:
		return true
	}
	return false
}

// AppliedType identifies the visual layer an applied customization targets.
type AppliedType string

const (
	AppliedTypeBodyKit  AppliedType = "bodykit"
	AppliedTypePaint    AppliedType = "paint"
	AppliedTypeWheels   AppliedType = "wheels"
	AppliedTypeWrap     AppliedType = "wrap"
	AppliedTypeInterior AppliedType = "interior"
	AppliedTypeLighting AppliedType = "lighting"
)

// Exclusive reports whether at most one record of this type may be active
// at a time. Additive types (lighting, wrap overlays) stack.
func (t AppliedType) Exclusive() bool {
	switch t {
	case AppliedTypeBodyKit, AppliedTypePaint, AppliedTypeWheels, AppliedTypeInterior:
		return true
	}
	return false
}

// ColorFinish is the paint finish selected for the vehicle body color.
type ColorFinish string

const (
	FinishGlossy      ColorFinish = "glossy"
	FinishMatte       ColorFinish = "matte"
	FinishMetallic    ColorFinish = "metallic"
	FinishPearlescent ColorFinish = "pearlescent"
)

// DefaultFinish is the only finish that carries no surcharge.
const DefaultFinish = FinishGlossy

func (f ColorFinish) Valid() bool {
	switch f {
	case FinishGlossy, FinishMatte, FinishMetallic, FinishPearlescent:
		return true
	}
	return false
}

type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Tier is the gamification rank derived from accumulated points.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)
