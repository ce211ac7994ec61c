package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) ListByField(ctx context.Context, fieldID uint) ([]entities.Crop, error) {
	out := make([]entities.Crop, 0)
	if err := r.db.WithContext(ctx).Where("field_id = ?", fieldID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list crops of field %d: %w", fieldID, err)
	}
	return out, nil
}

func (r *cropRepo) FindByID(ctx context.Context, id uint) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.WithContext(ctx).Take(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find crop %d: %w", id, err)
	}
	return &c, nil
}

func (r *cropRepo) Create(ctx context.Context, c *entities.Crop) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cropRepo) Save(ctx context.Context, c *entities.Crop) error {
	return r.db.WithContext(ctx).Save(c).Error
}
