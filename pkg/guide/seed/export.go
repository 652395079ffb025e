package seed

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"plantscan/entities"
)

const SheetName = "Plants"

const MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteXLSX writes plants as a single-sheet workbook using Header's columns.
func WriteXLSX(w io.Writer, plants []entities.GuidePlant) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	head := make([]any, len(Header))
	for i, h := range Header {
		head[i] = h
	}
	if err := x.SetSheetRow(SheetName, "A1", &head); err != nil {
		return err
	}

	for i, p := range plants {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			p.ID, p.Name, p.ScientificName, p.Family, p.Description,
			p.Care.Sunlight, p.Care.Water, p.Care.Temperature, p.Care.Humidity,
			p.NativeRegion, strings.Join(p.Uses, ListSep+" "), strings.Join(p.FunFacts, ListSep+" "), p.Image,
			p.Popularity, p.Difficulty, p.Category,
		}
		if err := x.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}
	_, err := x.WriteTo(w)
	return err
}
