package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"farmbook/entities"
	repo "farmbook/pkg/advisory/repository"
	"farmbook/pkg/advisory/service"
	"farmbook/pkg/ai"
	"farmbook/pkg/contract"
	"farmbook/pkg/ownership"
)

const (
	Title          = "AI Advisory"
	FallbackAdvice = "No advice generated."
)

type advisorySvc struct {
	r    repo.AdvisoryRepository
	llm  ai.Client
	gate ownership.Checker
	log  *zap.Logger
}

func NewAdvisoryService(r repo.AdvisoryRepository, llm ai.Client, gate ownership.Checker, log *zap.Logger) service.AdvisoryService {
	return &advisorySvc{r: r, llm: llm, gate: gate, log: log}
}

func (s *advisorySvc) List(ctx context.Context, userID string, filter contract.ListFilter) ([]entities.Advisory, error) {
	return s.r.List(ctx, userID, filter)
}

func (s *advisorySvc) Generate(ctx context.Context, userID string, in contract.GenerateAdvisoryInput) (*entities.Advisory, error) {
	if in.FieldID != nil {
		if err := s.gate.Check(ctx, userID, ownership.Field, *in.FieldID); err != nil {
			return nil, err
		}
	}
	if in.CropID != nil {
		if err := s.gate.Check(ctx, userID, ownership.Crop, *in.CropID); err != nil {
			return nil, err
		}
	}

	content, err := s.llm.Complete(ctx, BuildPrompt(in))
	if err != nil {
		return nil, contract.Internal("Failed to generate advisory", err)
	}
	if strings.TrimSpace(content) == "" {
		s.log.Warn("completion returned no content", zap.String("uid", userID))
		content = FallbackAdvice
	}

	a := &entities.Advisory{
		UserID:  userID,
		FieldID: in.FieldID,
		CropID:  in.CropID,
		Title:   Title,
		Content: content,
	}
	if err := s.r.Create(ctx, a); err != nil {
		return nil, contract.Internal("Failed to generate advisory", err)
	}
	return a, nil
}
