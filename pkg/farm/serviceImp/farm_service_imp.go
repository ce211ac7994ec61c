package serviceImp

import (
	"context"

	"go.uber.org/zap"

	"farmbook/database"
	"farmbook/entities"
	"farmbook/pkg/contract"
	farmRepo "farmbook/pkg/farm/repository"
	"farmbook/pkg/farm/service"
	fieldRepo "farmbook/pkg/field/repository"
)

type farmSvc struct {
	farms   farmRepo.FarmRepository
	fields  fieldRepo.FieldRepository
	cascade bool
	log     *zap.Logger
}

func NewFarmService(farms farmRepo.FarmRepository, fields fieldRepo.FieldRepository, cascade bool, log *zap.Logger) service.FarmService {
	return &farmSvc{farms: farms, fields: fields, cascade: cascade, log: log}
}

func (s *farmSvc) List(ctx context.Context, userID string) ([]entities.Farm, error) {
	out, err := s.farms.ListByUser(ctx, userID)
	if err != nil || len(out) > 0 {
		return out, err
	}
	seeded, err := s.farms.SeedIfEmpty(ctx, userID, database.SampleFarm(userID))
	if err != nil {
		return nil, err
	}
	if seeded {
		s.log.Info("seeded sample farm", zap.String("uid", userID))
	}
	return s.farms.ListByUser(ctx, userID)
}

func (s *farmSvc) Create(ctx context.Context, userID string, in contract.CreateFarmInput) (*entities.Farm, error) {
	f := &entities.Farm{
		UserID:   userID,
		Name:     in.Name,
		Location: in.Location,
		Size:     in.Size,
		SizeUnit: in.SizeUnit,
	}
	if f.SizeUnit == "" {
		f.SizeUnit = "acres"
	}
	if err := s.farms.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *farmSvc) Get(ctx context.Context, id uint) (*entities.FarmDetail, error) {
	f, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	fields, err := s.fields.ListByFarm(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entities.FarmDetail{Farm: *f, Fields: fields}, nil
}

func (s *farmSvc) Update(ctx context.Context, id uint, in contract.UpdateFarmInput) (*entities.Farm, error) {
	cur, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	// apply only the fields that were sent
	if in.Name != nil {
		cur.Name = *in.Name
	}
	if in.Location != nil {
		cur.Location = *in.Location
	}
	if in.Size != nil {
		cur.Size = *in.Size
	}
	if in.SizeUnit != nil {
		cur.SizeUnit = *in.SizeUnit
	}
	if err := s.farms.Save(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *farmSvc) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.farms.Delete(ctx, id, s.cascade)
}

func (s *farmSvc) find(ctx context.Context, id uint) (*entities.Farm, error) {
	f, err := s.farms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, contract.NotFound("Farm", id)
	}
	return f, nil
}
