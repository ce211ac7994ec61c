package ownership

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmbook/database/dbtest"
	"farmbook/entities"
	"farmbook/pkg/contract"
)

func TestGate_WalksChain(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	farm := entities.Farm{UserID: "alice", Name: "A", Location: "here", Size: 10, SizeUnit: "acres"}
	require.NoError(t, db.Create(&farm).Error)
	field := entities.Field{FarmID: farm.ID, Name: "F", Area: 2, SoilType: "Loam"}
	require.NoError(t, db.Create(&field).Error)
	crop := entities.Crop{FieldID: field.ID, Name: "Corn", SowingDate: time.Now(), Status: entities.CropActive}
	require.NoError(t, db.Create(&crop).Error)
	act := entities.Activity{FieldID: field.ID, CropID: &crop.ID, Type: entities.ActivityScouting, Date: time.Now()}
	require.NoError(t, db.Create(&act).Error)

	g := New(db)
	for _, tc := range []struct {
		kind Kind
		id   uint
	}{{Farm, farm.ID}, {Field, field.ID}, {Crop, crop.ID}, {Activity, act.ID}} {
		owner, err := g.Owner(ctx, tc.kind, tc.id)
		require.NoError(t, err, tc.kind)
		assert.Equal(t, "alice", owner, tc.kind)

		assert.NoError(t, g.Check(ctx, "alice", tc.kind, tc.id))
		assert.ErrorIs(t, g.Check(ctx, "bob", tc.kind, tc.id), contract.ErrForbidden)
	}
}

func TestGate_NotFoundBeforeForbidden(t *testing.T) {
	db := dbtest.Open(t)
	g := New(db)

	err := g.Check(context.Background(), "bob", Farm, 404)
	var nf *contract.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Farm", nf.Kind)
	assert.NotErrorIs(t, err, contract.ErrForbidden)
}

func TestGate_OrphanIsNotFound(t *testing.T) {
	db := dbtest.Open(t)
	field := entities.Field{FarmID: 999, Name: "Lost", Area: 1, SoilType: "Sand"}
	require.NoError(t, db.Create(&field).Error)
	crop := entities.Crop{FieldID: field.ID, Name: "Rye", SowingDate: time.Now(), Status: entities.CropActive}
	require.NoError(t, db.Create(&crop).Error)

	g := New(db)
	_, err := g.Owner(context.Background(), Crop, crop.ID)
	var nf *contract.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Crop", nf.Kind)
	assert.Equal(t, crop.ID, nf.ID)
}
