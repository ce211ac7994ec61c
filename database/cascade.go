package database

import (
	"fmt"

	"gorm.io/gorm"

	"farmbook/entities"
)

// PurgeFields deletes the given fields and everything recorded beneath them:
// crops, activities, and advisories pointing at either. It must run inside
// the caller's transaction.
func PurgeFields(tx *gorm.DB, fieldIDs []uint) error {
	if len(fieldIDs) == 0 {
		return nil
	}
	var cropIDs []uint
	if err := tx.Model(&entities.Crop{}).Where("field_id IN ?", fieldIDs).Pluck("id", &cropIDs).Error; err != nil {
		return fmt.Errorf("list crops: %w", err)
	}

	adv := tx.Where("field_id IN ?", fieldIDs)
	if len(cropIDs) > 0 {
		adv = tx.Where("field_id IN ? OR crop_id IN ?", fieldIDs, cropIDs)
	}
	if err := adv.Delete(&entities.Advisory{}).Error; err != nil {
		return fmt.Errorf("delete advisories: %w", err)
	}
	if err := tx.Where("field_id IN ?", fieldIDs).Delete(&entities.Activity{}).Error; err != nil {
		return fmt.Errorf("delete activities: %w", err)
	}
	if err := tx.Where("field_id IN ?", fieldIDs).Delete(&entities.Crop{}).Error; err != nil {
		return fmt.Errorf("delete crops: %w", err)
	}
	if err := tx.Where("id IN ?", fieldIDs).Delete(&entities.Field{}).Error; err != nil {
		return fmt.Errorf("delete fields: %w", err)
	}
	return nil
}
