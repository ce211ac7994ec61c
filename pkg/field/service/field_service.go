package service

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/contract"
)

type FieldService interface {
	List(ctx context.Context, farmID uint) ([]entities.Field, error)
	Create(ctx context.Context, farmID uint, in contract.CreateFieldInput) (*entities.Field, error)
	Get(ctx context.Context, id uint) (*entities.Field, error)
	Update(ctx context.Context, id uint, in contract.UpdateFieldInput) (*entities.Field, error)
	Delete(ctx context.Context, id uint) error
}
