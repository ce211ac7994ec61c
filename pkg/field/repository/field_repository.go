package repository

import (
	"context"

	"farmbook/entities"
)

type FieldRepository interface {
	ListByFarm(ctx context.Context, farmID uint) ([]entities.Field, error)
	// FindByID returns nil, nil when no field has that id.
	FindByID(ctx context.Context, id uint) (*entities.Field, error)
	Create(ctx context.Context, f *entities.Field) error
	Save(ctx context.Context, f *entities.Field) error
	Delete(ctx context.Context, id uint, cascade bool) error
}
