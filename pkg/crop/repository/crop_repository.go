package repository

import (
	"context"

	"farmbook/entities"
)

type CropRepository interface {
	ListByField(ctx context.Context, fieldID uint) ([]entities.Crop, error)
	FindByID(ctx context.Context, id uint) (*entities.Crop, error)
	Create(ctx context.Context, c *entities.Crop) error
	Save(ctx context.Context, c *entities.Crop) error
}
