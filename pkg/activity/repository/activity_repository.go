package repository

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/contract"
)

type ActivityRepository interface {
	// List returns the user's activities, newest first, narrowed by filter.
	List(ctx context.Context, userID string, filter contract.ListFilter) ([]entities.Activity, error)
	Create(ctx context.Context, a *entities.Activity) error
}
