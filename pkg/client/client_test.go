package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmbook/pkg/contract"
)

func serve(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL+"/", nil)
	require.NoError(t, err)
	return c
}

func TestRequestsFollowRouteTable(t *testing.T) {
	var method, path, query string
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		method, path, query = r.Method, r.URL.Path, r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})
	ctx := context.Background()

	_, err := c.ListCrops(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, method)
	assert.Equal(t, "/api/fields/7/crops", path)

	field := uint(3)
	_, err = c.ListAdvisories(ctx, contract.ListFilter{FieldID: &field})
	require.NoError(t, err)
	assert.Equal(t, "/api/advisories", path)
	assert.Equal(t, "fieldId=3", query)
}

func TestErrorBodyBecomesAPIError(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"size must be greater than 0","field":"size"}`))
	})

	_, err := c.CreateFarm(context.Background(), contract.CreateFarmInput{Name: "x", Location: "y"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "size", apiErr.Field)
	assert.Equal(t, contract.FarmsCreate, apiErr.Route)
}

func TestUnexpectedSuccessCodeIsAnError(t *testing.T) {
	// create must answer 201, a 200 is a contract violation
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"userId":"a","name":"x","location":"y","size":1,"sizeUnit":"acres"}`))
	})
	_, err := c.CreateFarm(context.Background(), contract.CreateFarmInput{Name: "x", Location: "y", Size: 1})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.Status)
}

func TestResponseIsValidated(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"farmId":2,"name":"North","area":-5,"soilType":"Loam"}]`))
	})
	_, err := c.ListFields(context.Background(), 2)
	var ve *contract.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "area", ve.Field)
}
