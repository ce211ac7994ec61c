package serviceImp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmbook/database/dbtest"
	"farmbook/entities"
	actRepoImp "farmbook/pkg/activity/repositoryImp"
	"farmbook/pkg/activity/service"
	"farmbook/pkg/contract"
	cropRepoImp "farmbook/pkg/crop/repositoryImp"
	"farmbook/pkg/ownership"
)

type fixture struct {
	svc             service.ActivityService
	field, other    entities.Field
	crop, strayCrop entities.Crop
}

func setup(t *testing.T) fixture {
	db := dbtest.Open(t)
	farm := entities.Farm{UserID: "alice", Name: "A", Location: "x", Size: 1, SizeUnit: "acres"}
	require.NoError(t, db.Create(&farm).Error)
	field := entities.Field{FarmID: farm.ID, Name: "North", Area: 1, SoilType: "Loam"}
	require.NoError(t, db.Create(&field).Error)
	other := entities.Field{FarmID: farm.ID, Name: "South", Area: 1, SoilType: "Clay"}
	require.NoError(t, db.Create(&other).Error)
	crop := entities.Crop{FieldID: field.ID, Name: "Corn", SowingDate: time.Now().UTC(), Status: entities.CropActive}
	require.NoError(t, db.Create(&crop).Error)
	stray := entities.Crop{FieldID: other.ID, Name: "Wheat", SowingDate: time.Now().UTC(), Status: entities.CropActive}
	require.NoError(t, db.Create(&stray).Error)

	svc := NewActivityService(actRepoImp.New(db), cropRepoImp.New(db), ownership.New(db))
	return fixture{svc: svc, field: field, other: other, crop: crop, strayCrop: stray}
}

func input(fieldID uint, cropID *uint) contract.CreateActivityInput {
	ts := contract.NewTimestamp(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	return contract.CreateActivityInput{
		FieldID: fieldID,
		CropID:  cropID,
		Type:    entities.ActivityFertilization,
		Date:    &ts,
		Details: map[string]any{"amount": 10, "unit": "kg", "product": "Urea"},
	}
}

func TestCreate(t *testing.T) {
	fx := setup(t)
	a, err := fx.svc.Create(context.Background(), "alice", input(fx.field.ID, &fx.crop.ID))
	require.NoError(t, err)
	assert.NotZero(t, a.ID)
	assert.Equal(t, "Urea", a.Details["product"])
	assert.Equal(t, 2024, a.Date.Year())
}

func TestCreate_Rejects(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()
	missing := uint(999)

	_, err := fx.svc.Create(ctx, "bob", input(fx.field.ID, nil))
	assert.ErrorIs(t, err, contract.ErrForbidden)

	var nf *contract.NotFoundError
	_, err = fx.svc.Create(ctx, "alice", input(missing, nil))
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Field", nf.Kind)

	_, err = fx.svc.Create(ctx, "alice", input(fx.field.ID, &missing))
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Crop", nf.Kind)

	var ve *contract.ValidationError
	_, err = fx.svc.Create(ctx, "alice", input(fx.field.ID, &fx.strayCrop.ID))
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cropId", ve.Field)
}

func TestList_ChecksFilterOwnership(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()
	_, err := fx.svc.Create(ctx, "alice", input(fx.field.ID, nil))
	require.NoError(t, err)

	_, err = fx.svc.List(ctx, "bob", contract.ListFilter{FieldID: &fx.field.ID})
	assert.ErrorIs(t, err, contract.ErrForbidden)

	got, err := fx.svc.List(ctx, "alice", contract.ListFilter{FieldID: &fx.other.ID})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = fx.svc.List(ctx, "alice", contract.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
