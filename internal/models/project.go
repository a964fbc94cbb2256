// internal/models/project.go
package models

// Project is a named, persisted snapshot of a vehicle configuration.
// Created by an explicit save; updated by subsequent saves once an id
// exists. Deletion is not handled by this core.
type Project struct {
	BaseModel
	Name           string             `json:"name" gorm:"size:255;not null"`
	Description    string             `json:"description" gorm:"type:text"`
	VehicleID      string             `json:"vehicle_id" gorm:"size:100;not null;index"`
	Customizations CustomizationState `json:"customizations" gorm:"type:jsonb"`
	Status         ProjectStatus      `json:"status" gorm:"type:varchar(20);default:'draft';index"`
}
