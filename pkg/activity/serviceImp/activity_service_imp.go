package serviceImp

import (
	"context"

	"gorm.io/datatypes"

	"farmbook/entities"
	repo "farmbook/pkg/activity/repository"
	"farmbook/pkg/activity/service"
	"farmbook/pkg/contract"
	cropRepo "farmbook/pkg/crop/repository"
	"farmbook/pkg/ownership"
)

type activitySvc struct {
	r     repo.ActivityRepository
	crops cropRepo.CropRepository
	gate  ownership.Checker
}

func NewActivityService(r repo.ActivityRepository, crops cropRepo.CropRepository, gate ownership.Checker) service.ActivityService {
	return &activitySvc{r: r, crops: crops, gate: gate}
}

func (s *activitySvc) List(ctx context.Context, userID string, filter contract.ListFilter) ([]entities.Activity, error) {
	if filter.FieldID != nil {
		if err := s.gate.Check(ctx, userID, ownership.Field, *filter.FieldID); err != nil {
			return nil, err
		}
	}
	if filter.CropID != nil {
		if err := s.gate.Check(ctx, userID, ownership.Crop, *filter.CropID); err != nil {
			return nil, err
		}
	}
	return s.r.List(ctx, userID, filter)
}

func (s *activitySvc) Create(ctx context.Context, userID string, in contract.CreateActivityInput) (*entities.Activity, error) {
	if err := s.gate.Check(ctx, userID, ownership.Field, in.FieldID); err != nil {
		return nil, err
	}
	if in.CropID != nil {
		crop, err := s.crops.FindByID(ctx, *in.CropID)
		if err != nil {
			return nil, err
		}
		if crop == nil {
			return nil, contract.NotFound("Crop", *in.CropID)
		}
		if crop.FieldID != in.FieldID {
			return nil, contract.Invalid("cropId", "cropId must belong to fieldId")
		}
	}
	a := &entities.Activity{
		FieldID: in.FieldID,
		CropID:  in.CropID,
		Type:    in.Type,
		Date:    in.Date.Time,
		Notes:   in.Notes,
		Details: datatypes.JSONMap(in.Details),
	}
	if a.Details == nil {
		a.Details = datatypes.JSONMap{}
	}
	if err := s.r.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
