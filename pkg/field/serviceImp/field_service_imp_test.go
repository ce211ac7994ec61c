package serviceImp

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmbook/database/dbtest"
	"farmbook/entities"
	"farmbook/pkg/contract"
	fieldRepoImp "farmbook/pkg/field/repositoryImp"
)

func TestDelete_Missing(t *testing.T) {
	for _, cascade := range []bool{true, false} {
		t.Run(fmt.Sprintf("cascade=%t", cascade), func(t *testing.T) {
			svc := NewFieldService(fieldRepoImp.New(dbtest.Open(t)), cascade)
			var nf *contract.NotFoundError
			require.ErrorAs(t, svc.Delete(context.Background(), 9), &nf)
			assert.Equal(t, "Field not found", nf.Error())
		})
	}
}

func TestDelete_ThenGetIsNotFound(t *testing.T) {
	db := dbtest.Open(t)
	farm := entities.Farm{UserID: "alice", Name: "A", Location: "x", Size: 1, SizeUnit: "acres"}
	require.NoError(t, db.Create(&farm).Error)
	svc := NewFieldService(fieldRepoImp.New(db), true)
	ctx := context.Background()

	f, err := svc.Create(ctx, farm.ID, contract.CreateFieldInput{Name: "East", Area: 2, SoilType: "Loam"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, f.ID))

	var nf *contract.NotFoundError
	_, err = svc.Get(ctx, f.ID)
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Field", nf.Kind)

	list, err := svc.List(ctx, farm.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
