package entities

import "time"

type Advisory struct {
	ID          uint      `gorm:"primaryKey" json:"id" validate:"gt=0"`
	UserID      string    `gorm:"index;not null" json:"userId"`
	FieldID     *uint     `gorm:"index" json:"fieldId"`
	CropID      *uint     `gorm:"index" json:"cropId"`
	Title       string    `gorm:"not null" json:"title" validate:"required"`
	Content     string    `gorm:"not null" json:"content"`
	GeneratedAt time.Time `gorm:"autoCreateTime;index" json:"generatedAt"`
	IsRead      bool      `gorm:"not null;default:false" json:"isRead"`
}
