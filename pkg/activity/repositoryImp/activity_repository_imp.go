package repositoryImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/activity/repository"
	"farmbook/pkg/contract"
)

type activityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActivityRepository { return &activityRepo{db} }

func (r *activityRepo) List(ctx context.Context, userID string, filter contract.ListFilter) ([]entities.Activity, error) {
	q := r.db.WithContext(ctx).
		Model(&entities.Activity{}).
		Select("activities.*").
		Joins("JOIN fields ON fields.id = activities.field_id").
		Joins("JOIN farms ON farms.id = fields.farm_id").
		Where("farms.user_id = ?", userID)
	if filter.FieldID != nil {
		q = q.Where("activities.field_id = ?", *filter.FieldID)
	}
	if filter.CropID != nil {
		q = q.Where("activities.crop_id = ?", *filter.CropID)
	}
	out := make([]entities.Activity, 0)
	if err := q.Order("activities.date DESC").Order("activities.id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return out, nil
}

func (r *activityRepo) Create(ctx context.Context, a *entities.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}
