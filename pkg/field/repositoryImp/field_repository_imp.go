package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"farmbook/database"
	"farmbook/entities"
	"farmbook/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) ListByFarm(ctx context.Context, farmID uint) ([]entities.Field, error) {
	out := make([]entities.Field, 0)
	if err := r.db.WithContext(ctx).Where("farm_id = ?", farmID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list fields of farm %d: %w", farmID, err)
	}
	return out, nil
}

func (r *fieldRepo) FindByID(ctx context.Context, id uint) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.WithContext(ctx).Take(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find field %d: %w", id, err)
	}
	return &f, nil
}

func (r *fieldRepo) Create(ctx context.Context, f *entities.Field) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fieldRepo) Save(ctx context.Context, f *entities.Field) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *fieldRepo) Delete(ctx context.Context, id uint, cascade bool) error {
	if !cascade {
		return r.db.WithContext(ctx).Delete(&entities.Field{}, id).Error
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return database.PurgeFields(tx, []uint{id})
	})
}
