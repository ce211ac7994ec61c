// Package export renders activity logs as spreadsheets.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"farmbook/entities"
)

const (
	SheetName   = "Activities"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var header = []any{"ID", "Field", "Crop", "Type", "Date", "Notes", "Details", "Created"}

// WriteXLSX writes one header row and one row per activity, in the order given.
func WriteXLSX(w io.Writer, acts []entities.Activity) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	if err := x.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	for i, a := range acts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row, err := toRow(a)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}
	if err := x.SetColWidth(SheetName, "F", "G", 40); err != nil {
		return err
	}
	if err := x.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func toRow(a entities.Activity) ([]any, error) {
	crop, notes, details := "", "", ""
	if a.CropID != nil {
		crop = strconv.FormatUint(uint64(*a.CropID), 10)
	}
	if a.Notes != nil {
		notes = *a.Notes
	}
	if len(a.Details) > 0 {
		b, err := json.Marshal(a.Details)
		if err != nil {
			return nil, fmt.Errorf("activity %d details: %w", a.ID, err)
		}
		details = string(b)
	}
	return []any{
		a.ID,
		a.FieldID,
		crop,
		a.Type,
		a.Date.UTC().Format("2006-01-02"),
		notes,
		details,
		a.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}, nil
}
