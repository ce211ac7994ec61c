package entities

import "time"

const (
	CropActive    = "active"
	CropHarvested = "harvested"
	CropFailed    = "failed"
)

type Crop struct {
	ID                  uint       `gorm:"primaryKey" json:"id" validate:"gt=0"`
	FieldID             uint       `gorm:"index;not null" json:"fieldId" validate:"gt=0"`
	Name                string     `gorm:"not null" json:"name" validate:"required"`
	Variety             *string    `json:"variety"`
	SowingDate          time.Time  `gorm:"not null" json:"sowingDate"`
	ExpectedHarvestDate *time.Time `json:"expectedHarvestDate"`
	ActualHarvestDate   *time.Time `json:"actualHarvestDate"`
	Status              string     `gorm:"not null;default:active" json:"status" validate:"required"` // active|harvested|failed
	YieldAmount         *float64   `json:"yieldAmount"`                                               // set once harvested
	YieldUnit           *string    `json:"yieldUnit"`
	CreatedAt           time.Time  `json:"createdAt"`
}
