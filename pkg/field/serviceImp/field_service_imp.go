package serviceImp

import (
	"context"

	"farmbook/entities"
	"farmbook/pkg/contract"
	repo "farmbook/pkg/field/repository"
	"farmbook/pkg/field/service"
)

type fieldSvc struct {
	r       repo.FieldRepository
	cascade bool
}

func NewFieldService(r repo.FieldRepository, cascade bool) service.FieldService {
	return &fieldSvc{r: r, cascade: cascade}
}

func (s *fieldSvc) List(ctx context.Context, farmID uint) ([]entities.Field, error) {
	return s.r.ListByFarm(ctx, farmID)
}

func (s *fieldSvc) Create(ctx context.Context, farmID uint, in contract.CreateFieldInput) (*entities.Field, error) {
	f := &entities.Field{FarmID: farmID, Name: in.Name, Area: in.Area, SoilType: in.SoilType}
	if err := s.r.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fieldSvc) Get(ctx context.Context, id uint) (*entities.Field, error) {
	f, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, contract.NotFound("Field", id)
	}
	return f, nil
}

func (s *fieldSvc) Update(ctx context.Context, id uint, in contract.UpdateFieldInput) (*entities.Field, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		cur.Name = *in.Name
	}
	if in.Area != nil {
		cur.Area = *in.Area
	}
	if in.SoilType != nil {
		cur.SoilType = *in.SoilType
	}
	if err := s.r.Save(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *fieldSvc) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.r.Delete(ctx, id, s.cascade)
}
