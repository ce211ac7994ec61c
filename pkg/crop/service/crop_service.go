package service

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/contract"
)

type CropService interface {
	List(ctx context.Context, fieldID uint) ([]entities.Crop, error)
	Create(ctx context.Context, fieldID uint, in contract.CreateCropInput) (*entities.Crop, error)
	Get(ctx context.Context, id uint) (*entities.Crop, error)
	Update(ctx context.Context, id uint, in contract.UpdateCropInput) (*entities.Crop, error)
}
