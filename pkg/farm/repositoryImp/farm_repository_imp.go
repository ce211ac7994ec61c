package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"farmbook/database"
	"farmbook/entities"
	"farmbook/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) ListByUser(ctx context.Context, userID string) ([]entities.Farm, error) {
	out := make([]entities.Farm, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}
	return out, nil
}

func (r *farmRepo) FindByID(ctx context.Context, id uint) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.WithContext(ctx).Take(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find farm %d: %w", id, err)
	}
	return &f, nil
}

func (r *farmRepo) Create(ctx context.Context, f *entities.Farm) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *farmRepo) Save(ctx context.Context, f *entities.Farm) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *farmRepo) Delete(ctx context.Context, id uint, cascade bool) error {
	if !cascade {
		return r.db.WithContext(ctx).Delete(&entities.Farm{}, id).Error
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var fieldIDs []uint
		if err := tx.Model(&entities.Field{}).Where("farm_id = ?", id).Pluck("id", &fieldIDs).Error; err != nil {
			return fmt.Errorf("list fields: %w", err)
		}
		if err := database.PurgeFields(tx, fieldIDs); err != nil {
			return err
		}
		return tx.Delete(&entities.Farm{}, id).Error
	})
}

func (r *farmRepo) SeedIfEmpty(ctx context.Context, userID string, sample database.Sample) (bool, error) {
	seeded := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.Farm{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		farm := sample.Farm
		farm.UserID = userID
		if err := tx.Create(&farm).Error; err != nil {
			return fmt.Errorf("seed farm: %w", err)
		}
		for _, sf := range sample.Fields {
			field := sf.Field
			field.FarmID = farm.ID
			if err := tx.Create(&field).Error; err != nil {
				return fmt.Errorf("seed field %q: %w", field.Name, err)
			}
			for _, c := range sf.Crops {
				c.FieldID = field.ID
				if err := tx.Create(&c).Error; err != nil {
					return fmt.Errorf("seed crop %q: %w", c.Name, err)
				}
			}
			for _, a := range sf.Activities {
				a.FieldID = field.ID
				if err := tx.Create(&a).Error; err != nil {
					return fmt.Errorf("seed %s activity: %w", a.Type, err)
				}
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed sample farm: %w", err)
	}
	return seeded, nil
}
