package repository

import (
	"context"

	"farmbook/database"
	"farmbook/entities"
)

type FarmRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entities.Farm, error)
	// FindByID returns nil, nil when no farm has that id.
	FindByID(ctx context.Context, id uint) (*entities.Farm, error)
	Create(ctx context.Context, f *entities.Farm) error
	Save(ctx context.Context, f *entities.Farm) error
	// Delete removes the farm; with cascade it also removes its fields and
	// everything beneath them in the same transaction.
	Delete(ctx context.Context, id uint, cascade bool) error
	// SeedIfEmpty stores sample for userID only if the user owns no farm yet.
	SeedIfEmpty(ctx context.Context, userID string, sample database.Sample) (bool, error)
}
