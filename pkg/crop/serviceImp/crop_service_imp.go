package serviceImp

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/contract"
	repo "farmbook/pkg/crop/repository"
	"farmbook/pkg/crop/service"
)

type cropSvc struct{ r repo.CropRepository }

func NewCropService(r repo.CropRepository) service.CropService { return &cropSvc{r} }

func (s *cropSvc) List(ctx context.Context, fieldID uint) ([]entities.Crop, error) {
	return s.r.ListByField(ctx, fieldID)
}

func (s *cropSvc) Create(ctx context.Context, fieldID uint, in contract.CreateCropInput) (*entities.Crop, error) {
	c := &entities.Crop{
		FieldID:             fieldID,
		Name:                in.Name,
		Variety:             in.Variety,
		SowingDate:          in.SowingDate.Time,
		ExpectedHarvestDate: in.ExpectedHarvestDate.Ptr(),
		ActualHarvestDate:   in.ActualHarvestDate.Ptr(),
		Status:              in.Status,
		YieldAmount:         in.YieldAmount,
		YieldUnit:           in.YieldUnit,
	}
	if c.Status == "" {
		c.Status = entities.CropActive
	}
	if err := checkYield(c); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cropSvc) Get(ctx context.Context, id uint) (*entities.Crop, error) {
	c, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, contract.NotFound("Crop", id)
	}
	return c, nil
}

func (s *cropSvc) Update(ctx context.Context, id uint, in contract.UpdateCropInput) (*entities.Crop, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Variety != nil || in.Clears("variety") {
		c.Variety = in.Variety
	}
	if in.SowingDate != nil {
		c.SowingDate = in.SowingDate.Time
	}
	if in.ExpectedHarvestDate != nil || in.Clears("expectedHarvestDate") {
		c.ExpectedHarvestDate = in.ExpectedHarvestDate.Ptr()
	}
	if in.ActualHarvestDate != nil || in.Clears("actualHarvestDate") {
		c.ActualHarvestDate = in.ActualHarvestDate.Ptr()
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	if in.YieldAmount != nil || in.Clears("yieldAmount") {
		c.YieldAmount = in.YieldAmount
	}
	if in.YieldUnit != nil || in.Clears("yieldUnit") {
		c.YieldUnit = in.YieldUnit
	}
	// Leaving the harvested state drops a stored yield; a yield sent in the
	// same request is still checked below.
	if c.Status != entities.CropHarvested {
		if in.YieldAmount == nil {
			c.YieldAmount = nil
		}
		if in.YieldUnit == nil {
			c.YieldUnit = nil
		}
	}
	if err := checkYield(c); err != nil {
		return nil, err
	}
	if err := s.r.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// checkYield rejects a recorded yield on a crop that is not harvested.
func checkYield(c *entities.Crop) error {
	if c.Status == entities.CropHarvested {
		return nil
	}
	if c.YieldAmount != nil {
		return contract.Invalid("yieldAmount", "yieldAmount is only allowed once the crop is harvested")
	}
	if c.YieldUnit != nil {
		return contract.Invalid("yieldUnit", "yieldUnit is only allowed once the crop is harvested")
	}
	return nil
}
