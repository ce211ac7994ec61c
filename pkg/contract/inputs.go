package contract

import (
	"bytes"
	"encoding/json"
	"maps"
)

// Request payloads. Server-assigned fields (id, createdAt, generatedAt) and
// the owner are never accepted from the caller; parent ids come from the
// path where the route has one.

type CreateFarmInput struct {
	Name     string  `json:"name" validate:"required"`
	Location string  `json:"location" validate:"required"`
	Size     float64 `json:"size" validate:"gt=0"`
	SizeUnit string  `json:"sizeUnit" validate:"omitempty,oneof=acres hectares"`
}

type UpdateFarmInput struct {
	Name     *string  `json:"name" validate:"omitempty,min=1"`
	Location *string  `json:"location" validate:"omitempty,min=1"`
	Size     *float64 `json:"size" validate:"omitempty,gt=0"`
	SizeUnit *string  `json:"sizeUnit" validate:"omitempty,oneof=acres hectares"`
}

type CreateFieldInput struct {
	Name     string  `json:"name" validate:"required"`
	Area     float64 `json:"area" validate:"gt=0"`
	SoilType string  `json:"soilType" validate:"required"`
}

type UpdateFieldInput struct {
	Name     *string  `json:"name" validate:"omitempty,min=1"`
	Area     *float64 `json:"area" validate:"omitempty,gt=0"`
	SoilType *string  `json:"soilType" validate:"omitempty,min=1"`
}

type CreateCropInput struct {
	Name                string     `json:"name" validate:"required"`
	Variety             *string    `json:"variety"`
	SowingDate          *Timestamp `json:"sowingDate" validate:"required"`
	ExpectedHarvestDate *Timestamp `json:"expectedHarvestDate"`
	ActualHarvestDate   *Timestamp `json:"actualHarvestDate"`
	Status              string     `json:"status" validate:"omitempty,oneof=active harvested failed"`
	YieldAmount         *float64   `json:"yieldAmount" validate:"omitempty,gte=0"`
	YieldUnit           *string    `json:"yieldUnit"`
}

// UpdateCropInput is a partial crop update. A key that is absent leaves the
// stored value alone; an explicit null on one of the optional attributes
// (variety, dates, yield) clears it.
type UpdateCropInput struct {
	Name                *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	Variety             *string    `json:"variety,omitempty"`
	SowingDate          *Timestamp `json:"sowingDate,omitempty"`
	ExpectedHarvestDate *Timestamp `json:"expectedHarvestDate,omitempty"`
	ActualHarvestDate   *Timestamp `json:"actualHarvestDate,omitempty"`
	Status              *string    `json:"status,omitempty" validate:"omitempty,oneof=active harvested failed"`
	YieldAmount         *float64   `json:"yieldAmount,omitempty" validate:"omitempty,gte=0"`
	YieldUnit           *string    `json:"yieldUnit,omitempty"`

	cleared map[string]bool
}

var clearableCropKeys = []string{"variety", "expectedHarvestDate", "actualHarvestDate", "yieldAmount", "yieldUnit"}

// Clear returns a copy of in that resets the named optional attributes.
// Unknown keys and required attributes are ignored.
func (in UpdateCropInput) Clear(keys ...string) UpdateCropInput {
	cleared := maps.Clone(in.cleared)
	if cleared == nil {
		cleared = map[string]bool{}
	}
	for _, k := range keys {
		for _, c := range clearableCropKeys {
			if k == c {
				cleared[k] = true
			}
		}
	}
	in.cleared = cleared
	return in
}

// Clears reports whether the update resets key.
func (in UpdateCropInput) Clears(key string) bool { return in.cleared[key] }

func (in *UpdateCropInput) UnmarshalJSON(b []byte) error {
	type plain UpdateCropInput
	if err := json.Unmarshal(b, (*plain)(in)); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var nulls []string
	for k, v := range raw {
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			nulls = append(nulls, k)
		}
	}
	*in = in.Clear(nulls...)
	return nil
}

func (in UpdateCropInput) MarshalJSON() ([]byte, error) {
	type plain UpdateCropInput
	b, err := json.Marshal(plain(in))
	if err != nil || len(in.cleared) == 0 {
		return b, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for k := range in.cleared {
		m[k] = json.RawMessage("null")
	}
	return json.Marshal(m)
}

// ListFilter narrows the activities and advisories lists; see ParseFilter.
type ListFilter struct {
	FieldID *uint
	CropID  *uint
}

type CreateActivityInput struct {
	FieldID uint           `json:"fieldId" validate:"gt=0"`
	CropID  *uint          `json:"cropId" validate:"omitempty,gt=0"`
	Type    string         `json:"type" validate:"required,oneof=sowing irrigation fertilization harvesting scouting other"`
	Date    *Timestamp     `json:"date" validate:"required"`
	Notes   *string        `json:"notes"`
	Details map[string]any `json:"details"`
}

type GenerateAdvisoryInput struct {
	FieldID *uint   `json:"fieldId" validate:"omitempty,gt=0"`
	CropID  *uint   `json:"cropId" validate:"omitempty,gt=0"`
	Context *string `json:"context" validate:"omitempty,max=4000"`
}

type LoginInput struct {
	UserID string `json:"userId" validate:"required,max=128"`
}

// Identity is the body of the current-user endpoint.
type Identity struct {
	UserID string `json:"userId" validate:"required"`
}
