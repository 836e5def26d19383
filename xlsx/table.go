package xlsx

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Decode parses the extraction output for table mode: a JSON array of rows,
// each an array of cell values. Models occasionally emit numbers where
// strings were requested, so scalar cells of any type are carried as text.
// A payload that is not an array of arrays is a hard error, table mode has
// no degraded rendering.
func Decode(blob []byte) ([][]string, error) {
	var raw [][]any
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, fmt.Errorf("table payload is not a JSON array of arrays: %w", err)
	}

	rows := make([][]string, len(raw))
	for i, cells := range raw {
		row := make([]string, len(cells))
		for j, cell := range cells {
			switch v := cell.(type) {
			case string:
				row[j] = v
			case nil:
				row[j] = ""
			default:
				row[j] = fmt.Sprint(v)
			}
		}

		rows[i] = row
	}

	return rows, nil
}

// Write emits rows as a single-sheet workbook. Values only: styling and
// column sizing are left to the spreadsheet application.
func Write(w io.Writer, rows [][]string) error {
	file := excelize.NewFile()
	defer file.Close()

	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("cell coordinates: %w", err)
			}

			if err := file.SetCellValue("Sheet1", name, cell); err != nil {
				return fmt.Errorf("set cell %s: %w", name, err)
			}
		}
	}

	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}
