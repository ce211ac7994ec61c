package service

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/contract"
)

type FarmService interface {
	// List returns the caller's farms, seeding a sample farm on first use.
	List(ctx context.Context, userID string) ([]entities.Farm, error)
	Create(ctx context.Context, userID string, in contract.CreateFarmInput) (*entities.Farm, error)
	Get(ctx context.Context, id uint) (*entities.FarmDetail, error)
	Update(ctx context.Context, id uint, in contract.UpdateFarmInput) (*entities.Farm, error)
	Delete(ctx context.Context, id uint) error
}
