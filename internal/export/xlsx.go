package export

import (
	"fmt"
	"io"

	"housingready/pkg/types"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Clients"

// WriteXLSX writes the same columns as the CSV export plus a "Phases"
// progress column.
func WriteXLSX(w io.Writer, clients []*types.Client) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, 0, len(Headers)+1)
	for _, h := range Headers {
		header = append(header, h)
	}
	header = append(header, "Phases")

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0EBF5"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("compute header range: %w", err)
	}

	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("style header row: %w", err)
	}

	for i, c := range clients {
		cells := make([]any, 0, len(header))
		for _, v := range Row(c) {
			cells = append(cells, v)
		}
		cells = append(cells, fmt.Sprintf("%d/4", c.PhasesCompleted()))

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("compute cell for row %d: %w", i+2, err)
		}

		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("write row for client %s: %w", c.ID, err)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header row: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}
