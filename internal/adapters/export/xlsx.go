// Package export writes loaded Olympic data to files for offline use: an XLSX
// medal table and a SQLite snapshot of the cleaned table.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/okian/olympus/internal/domain/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the medal table workbook.
const (
	SheetMedals  = "Medal Table"
	SheetFilters = "Filters"
)

const nameColumnWidth = 28

var medalHeaders = []string{"Rank", "Name", "Gold", "Silver", "Bronze", "Total"} //nolint:gochecknoglobals // read-only table

// WriteMedalTable writes table as an XLSX workbook to w. The first sheet holds
// the ranked rows and the second the filters that produced them.
func WriteMedalTable(w io.Writer, table types.MedalTable) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetMedals); err != nil {
		return fmt.Errorf("%w: %w", ErrWorkbook, err)
	}
	for i, header := range medalHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWorkbook, err)
		}
		if err := f.SetCellValue(SheetMedals, cell, header); err != nil {
			return fmt.Errorf("%w: %w", ErrWorkbook, err)
		}
	}
	if err := f.SetColWidth(SheetMedals, "B", "B", nameColumnWidth); err != nil {
		return fmt.Errorf("%w: %w", ErrWorkbook, err)
	}

	for i, e := range table.Rows {
		row := i + 2
		values := []any{e.Rank, e.Name, e.Gold, e.Silver, e.Bronze, e.Total}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(SheetMedals, cell, v); err != nil {
				return fmt.Errorf("%w: %w", ErrWorkbook, err)
			}
		}
	}

	if _, err := f.NewSheet(SheetFilters); err != nil {
		return fmt.Errorf("%w: %w", ErrWorkbook, err)
	}
	filters := [][2]string{
		{"Unit", string(table.Unit)},
		{"Year", allIfZero(table.Year)},
		{"Season", allIfEmpty(table.Season)},
		{"Sport", allIfEmpty(table.Sport)},
	}
	for i, kv := range filters {
		row := strconv.Itoa(i + 1)
		if err := f.SetCellValue(SheetFilters, "A"+row, kv[0]); err != nil {
			return fmt.Errorf("%w: %w", ErrWorkbook, err)
		}
		if err := f.SetCellValue(SheetFilters, "B"+row, kv[1]); err != nil {
			return fmt.Errorf("%w: %w", ErrWorkbook, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: %w", ErrWorkbook, err)
	}
	return nil
}

func allIfZero(year int) string {
	if year == 0 {
		return "All"
	}
	return strconv.Itoa(year)
}

func allIfEmpty(v string) string {
	if v == "" {
		return "All"
	}
	return v
}
