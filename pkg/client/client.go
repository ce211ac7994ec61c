// Package client is a typed Go client for the farmbook API. Requests are
// built from contract.Routes and every decoded entity is validated before it
// is returned.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"farmbook/entities"
	"farmbook/pkg/contract"
)

// APIError is a response whose status differs from the route's success code.
type APIError struct {
	Route   string
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.Route, e.Status, e.Message)
}

type Client struct {
	base string
	http *http.Client
}

// New returns a client for baseURL. A nil httpc gets a fresh cookie jar so
// the session cookie from Login is replayed on later calls.
func New(baseURL string, httpc *http.Client) (*Client, error) {
	if httpc == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		httpc = &http.Client{Jar: jar}
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), http: httpc}, nil
}

type call struct {
	route  string
	params contract.Params
	query  url.Values
	body   any
}

// do sends the request and returns the body of a success response.
func (c *Client) do(ctx context.Context, in call) ([]byte, error) {
	r := contract.Lookup(in.route)
	u := c.base + r.URL(in.params)
	if len(in.query) > 0 {
		u += "?" + in.query.Encode()
	}

	var body io.Reader
	if in.body != nil {
		b, err := json.Marshal(in.body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, u, body)
	if err != nil {
		return nil, err
	}
	if in.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != r.Success {
		apiErr := &APIError{Route: r.Name, Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var eb contract.ErrorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Message != "" {
			apiErr.Message, apiErr.Field = eb.Message, eb.Field
		}
		return nil, apiErr
	}
	return raw, nil
}

func one[T any](ctx context.Context, c *Client, in call) (*T, error) {
	raw, err := c.do(ctx, in)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", in.route, err)
	}
	if err := contract.Validate(&out); err != nil {
		return nil, fmt.Errorf("%s: invalid response: %w", in.route, err)
	}
	return &out, nil
}

func many[T any](ctx context.Context, c *Client, in call) ([]T, error) {
	raw, err := c.do(ctx, in)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", in.route, err)
	}
	for i := range out {
		if err := contract.Validate(&out[i]); err != nil {
			return nil, fmt.Errorf("%s: invalid response item %d: %w", in.route, i, err)
		}
	}
	return out, nil
}

func id(v uint) contract.Params { return contract.Params{"id": v} }

// Auth

func (c *Client) Login(ctx context.Context, userID string) (*contract.Identity, error) {
	return one[contract.Identity](ctx, c, call{route: contract.AuthLogin, body: contract.LoginInput{UserID: userID}})
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, call{route: contract.AuthLogout})
	return err
}

func (c *Client) Me(ctx context.Context) (*contract.Identity, error) {
	return one[contract.Identity](ctx, c, call{route: contract.AuthUser})
}

// Farms

func (c *Client) ListFarms(ctx context.Context) ([]entities.Farm, error) {
	return many[entities.Farm](ctx, c, call{route: contract.FarmsList})
}

func (c *Client) CreateFarm(ctx context.Context, in contract.CreateFarmInput) (*entities.Farm, error) {
	return one[entities.Farm](ctx, c, call{route: contract.FarmsCreate, body: in})
}

func (c *Client) GetFarm(ctx context.Context, farmID uint) (*entities.FarmDetail, error) {
	return one[entities.FarmDetail](ctx, c, call{route: contract.FarmsGet, params: id(farmID)})
}

func (c *Client) UpdateFarm(ctx context.Context, farmID uint, in contract.UpdateFarmInput) (*entities.Farm, error) {
	return one[entities.Farm](ctx, c, call{route: contract.FarmsUpdate, params: id(farmID), body: in})
}

func (c *Client) DeleteFarm(ctx context.Context, farmID uint) error {
	_, err := c.do(ctx, call{route: contract.FarmsDelete, params: id(farmID)})
	return err
}

// Fields

func (c *Client) ListFields(ctx context.Context, farmID uint) ([]entities.Field, error) {
	return many[entities.Field](ctx, c, call{route: contract.FieldsList, params: contract.Params{"farmId": farmID}})
}

func (c *Client) CreateField(ctx context.Context, farmID uint, in contract.CreateFieldInput) (*entities.Field, error) {
	return one[entities.Field](ctx, c, call{route: contract.FieldsCreate, params: contract.Params{"farmId": farmID}, body: in})
}

func (c *Client) GetField(ctx context.Context, fieldID uint) (*entities.Field, error) {
	return one[entities.Field](ctx, c, call{route: contract.FieldsGet, params: id(fieldID)})
}

func (c *Client) UpdateField(ctx context.Context, fieldID uint, in contract.UpdateFieldInput) (*entities.Field, error) {
	return one[entities.Field](ctx, c, call{route: contract.FieldsUpdate, params: id(fieldID), body: in})
}

func (c *Client) DeleteField(ctx context.Context, fieldID uint) error {
	_, err := c.do(ctx, call{route: contract.FieldsDelete, params: id(fieldID)})
	return err
}

// Crops

func (c *Client) ListCrops(ctx context.Context, fieldID uint) ([]entities.Crop, error) {
	return many[entities.Crop](ctx, c, call{route: contract.CropsList, params: contract.Params{"fieldId": fieldID}})
}

func (c *Client) CreateCrop(ctx context.Context, fieldID uint, in contract.CreateCropInput) (*entities.Crop, error) {
	return one[entities.Crop](ctx, c, call{route: contract.CropsCreate, params: contract.Params{"fieldId": fieldID}, body: in})
}

func (c *Client) GetCrop(ctx context.Context, cropID uint) (*entities.Crop, error) {
	return one[entities.Crop](ctx, c, call{route: contract.CropsGet, params: id(cropID)})
}

func (c *Client) UpdateCrop(ctx context.Context, cropID uint, in contract.UpdateCropInput) (*entities.Crop, error) {
	return one[entities.Crop](ctx, c, call{route: contract.CropsUpdate, params: id(cropID), body: in})
}

// Activities

func (c *Client) ListActivities(ctx context.Context, filter contract.ListFilter) ([]entities.Activity, error) {
	return many[entities.Activity](ctx, c, call{route: contract.ActivitiesList, query: filter.Values()})
}

func (c *Client) CreateActivity(ctx context.Context, in contract.CreateActivityInput) (*entities.Activity, error) {
	return one[entities.Activity](ctx, c, call{route: contract.ActivitiesCreate, body: in})
}

// ExportActivities returns the xlsx workbook bytes.
func (c *Client) ExportActivities(ctx context.Context, filter contract.ListFilter) ([]byte, error) {
	return c.do(ctx, call{route: contract.ActivitiesExport, query: filter.Values()})
}

// Advisories

func (c *Client) ListAdvisories(ctx context.Context, filter contract.ListFilter) ([]entities.Advisory, error) {
	return many[entities.Advisory](ctx, c, call{route: contract.AdvisoriesList, query: filter.Values()})
}

// ListPlainAdvisories lists advisories with HTML markup flattened to text.
func (c *Client) ListPlainAdvisories(ctx context.Context, filter contract.ListFilter) ([]entities.Advisory, error) {
	q := filter.Values()
	q.Set("format", contract.FormatPlain)
	return many[entities.Advisory](ctx, c, call{route: contract.AdvisoriesList, query: q})
}

func (c *Client) GenerateAdvisory(ctx context.Context, in contract.GenerateAdvisoryInput) (*entities.Advisory, error) {
	return one[entities.Advisory](ctx, c, call{route: contract.AdvisoriesGenerate, body: in})
}
