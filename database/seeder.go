package database

import (
	"time"

	"farmbook/entities"
)

// SampleField is a field with the crops and activities seeded beneath it.
// Parent ids are filled in by the repository once the parent row exists.
type SampleField struct {
	Field      entities.Field
	Crops      []entities.Crop
	Activities []entities.Activity
}

type Sample struct {
	Farm   entities.Farm
	Fields []SampleField
}

// SampleFarm is the starter data a grower sees on first login.
func SampleFarm(userID string) Sample {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	str := func(s string) *string { return &s }
	num := func(f float64) *float64 { return &f }
	harvested := day(2024, time.June, 20)

	return Sample{
		Farm: entities.Farm{
			UserID:   userID,
			Name:     "Green Valley Farm",
			Location: "California, USA",
			Size:     150,
			SizeUnit: "acres",
		},
		Fields: []SampleField{
			{
				Field: entities.Field{Name: "North Field", Area: 50, SoilType: "Loam"},
				Crops: []entities.Crop{{
					Name:       "Corn",
					Variety:    str("Golden Harvest"),
					SowingDate: day(2024, time.April, 15),
					Status:     entities.CropActive,
				}},
				Activities: []entities.Activity{
					{
						Type:  entities.ActivitySowing,
						Date:  day(2024, time.April, 15),
						Notes: str("Sowed corn seeds under optimal conditions."),
					},
					{
						Type:  entities.ActivityIrrigation,
						Date:  day(2024, time.May, 1),
						Notes: str("Drip irrigation applied."),
					},
				},
			},
			{
				Field: entities.Field{Name: "South Pasture", Area: 100, SoilType: "Clay"},
				Crops: []entities.Crop{{
					Name:              "Wheat",
					Variety:           str("Winter Red"),
					SowingDate:        day(2023, time.November, 10),
					Status:            entities.CropHarvested,
					ActualHarvestDate: &harvested,
					YieldAmount:       num(4.5),
					YieldUnit:         str("tons/acre"),
				}},
			},
		},
	}
}
