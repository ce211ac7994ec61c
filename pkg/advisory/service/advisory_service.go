package service

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/contract"
)

type AdvisoryService interface {
	List(ctx context.Context, userID string, filter contract.ListFilter) ([]entities.Advisory, error)
	// Generate asks the completion provider for advice and stores the answer.
	// Nothing is stored when the provider fails.
	Generate(ctx context.Context, userID string, in contract.GenerateAdvisoryInput) (*entities.Advisory, error)
}
