package service

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/contract"
)

type ActivityService interface {
	List(ctx context.Context, userID string, filter contract.ListFilter) ([]entities.Activity, error)
	Create(ctx context.Context, userID string, in contract.CreateActivityInput) (*entities.Activity, error)
}
