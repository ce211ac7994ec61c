package entities

import "time"

type Farm struct {
	ID        uint      `gorm:"primaryKey" json:"id" validate:"gt=0"`
	UserID    string    `gorm:"index;not null" json:"userId" validate:"required"`
	Name      string    `gorm:"not null" json:"name" validate:"required"`
	Location  string    `gorm:"not null" json:"location"`
	Size      float64   `gorm:"not null" json:"size" validate:"gt=0"`
	SizeUnit  string    `gorm:"not null;default:acres" json:"sizeUnit"` // acres|hectares
	CreatedAt time.Time `json:"createdAt"`
}

// FarmDetail is a farm with its fields embedded, as served by the detail endpoint.
type FarmDetail struct {
	Farm
	Fields []Field `json:"fields" validate:"dive"`
}
