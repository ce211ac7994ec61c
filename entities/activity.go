package entities

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActivitySowing        = "sowing"
	ActivityIrrigation    = "irrigation"
	ActivityFertilization = "fertilization"
	ActivityHarvesting    = "harvesting"
	ActivityScouting      = "scouting"
	ActivityOther         = "other"
)

type Activity struct {
	ID      uint      `gorm:"primaryKey" json:"id" validate:"gt=0"`
	FieldID uint      `gorm:"index;not null" json:"fieldId" validate:"gt=0"`
	CropID  *uint     `gorm:"index" json:"cropId"`
	Type    string    `gorm:"not null" json:"type" validate:"required"` // sowing|irrigation|fertilization|harvesting|scouting|other
	Date    time.Time `gorm:"index;not null" json:"date"`
	Notes   *string   `json:"notes"`
	// free-form payload, e.g. {"amount": 10, "unit": "kg", "product": "Urea"}
	Details   datatypes.JSONMap `json:"details"`
	CreatedAt time.Time         `json:"createdAt"`
}
