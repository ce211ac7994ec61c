package repository

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/contract"
)

type AdvisoryRepository interface {
	List(ctx context.Context, userID string, filter contract.ListFilter) ([]entities.Advisory, error)
	Create(ctx context.Context, a *entities.Advisory) error
}
