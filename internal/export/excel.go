package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/anatolykoptev/go_poemas/internal/engine/poems"
)

const sheetName = "Poemas Dominicanos"

// maxColWidth caps auto-sized columns so notes don't blow up the layout.
const maxColWidth = 80

// availabilityColors maps each availability state to fill/font colors:
// green for found, amber for partial, red for not found.
var availabilityColors = map[poems.Availability]struct{ fill, font string }{
	poems.Found:    {"C6EFCE", "006100"},
	poems.Partial:  {"FFEB9C", "9C5700"},
	poems.NotFound: {"FFC7CE", "9C0006"},
}

// SaveExcel writes the catalog as a styled workbook: bold header row,
// content-sized columns, and the availability cell color-coded per row.
// An empty catalog writes nothing and is not an error.
func SaveExcel(catalog []*poems.Poem, path string) error {
	if len(catalog) == 0 {
		return nil
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeHeader(f); err != nil {
		return err
	}

	rows := makeRows(catalog)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row cell name: %w", err)
		}
		vals := row.values()
		if err := f.SetSheetRow(sheetName, cell, &vals); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := sizeColumns(f, rows); err != nil {
		return err
	}
	if err := colorAvailability(f, catalog); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File) error {
	hdr := make([]any, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &hdr); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("header cell name: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", last, style); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	return nil
}

// sizeColumns widens each column to its longest cell value, capped.
func sizeColumns(f *excelize.File, rows []Row) error {
	for col := range headers {
		width := len(headers[col])
		for _, row := range rows {
			if l := len(fmt.Sprint(row.values()[col])); l > width {
				width = l
			}
		}
		if width+2 < maxColWidth {
			width += 2
		} else {
			width = maxColWidth
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width)); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	return nil
}

// colorAvailability styles the last cell of each data row by its state.
func colorAvailability(f *excelize.File, catalog []*poems.Poem) error {
	styles := make(map[poems.Availability]int, len(availabilityColors))
	for avail, c := range availabilityColors {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{c.fill}, Pattern: 1},
			Font: &excelize.Font{Color: c.font},
		})
		if err != nil {
			return fmt.Errorf("availability style: %w", err)
		}
		styles[avail] = id
	}

	for i, p := range catalog {
		style, ok := styles[p.Disponibilidad]
		if !ok {
			style = styles[poems.NotFound]
		}
		cell, err := excelize.CoordinatesToCellName(len(headers), i+2)
		if err != nil {
			return fmt.Errorf("availability cell name: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
			return fmt.Errorf("style availability cell: %w", err)
		}
	}
	return nil
}
