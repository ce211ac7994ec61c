package entities

import "time"

type Field struct {
	ID        uint      `gorm:"primaryKey" json:"id" validate:"gt=0"`
	FarmID    uint      `gorm:"index;not null" json:"farmId" validate:"gt=0"`
	Name      string    `gorm:"not null" json:"name" validate:"required"`
	Area      float64   `gorm:"not null" json:"area" validate:"gt=0"`
	SoilType  string    `gorm:"not null" json:"soilType"` // loam|clay|sand|...
	CreatedAt time.Time `json:"createdAt"`
}
