package repositoryImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/advisory/repository"
	"farmbook/pkg/contract"
)

type advisoryRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AdvisoryRepository { return &advisoryRepo{db} }

func (r *advisoryRepo) List(ctx context.Context, userID string, filter contract.ListFilter) ([]entities.Advisory, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.FieldID != nil {
		q = q.Where("field_id = ?", *filter.FieldID)
	}
	if filter.CropID != nil {
		q = q.Where("crop_id = ?", *filter.CropID)
	}
	out := make([]entities.Advisory, 0)
	if err := q.Order("generated_at DESC").Order("id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list advisories: %w", err)
	}
	return out, nil
}

func (r *advisoryRepo) Create(ctx context.Context, a *entities.Advisory) error {
	return r.db.WithContext(ctx).Create(a).Error
}
