package repository

import (
	"fmt"

	"github.com/splax/worksim/internal/domain"
)

// CheckInsert validates an insert against the schema registry. Backends
// interpolate table and column names, so nothing unregistered gets through.
func CheckInsert(table string, columns []string, rows [][]any) error {
	if err := checkColumns(table, columns); err != nil {
		return err
	}
	return checkWidth(table, len(columns), rows)
}

// CheckUpdate validates an update-by-key against the schema registry.
func CheckUpdate(table, keyColumn string, columns []string, rows [][]any) error {
	if len(columns) == 0 {
		return fmt.Errorf("%w: %s: no columns to update", ErrUnknownColumn, table)
	}
	if err := checkColumns(table, append([]string{keyColumn}, columns...)); err != nil {
		return err
	}
	return checkWidth(table, len(columns)+1, rows)
}

func checkColumns(table string, columns []string) error {
	def, ok := domain.LookupTable(table)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	for _, c := range columns {
		if !def.Has(c) {
			return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, table, c)
		}
	}
	return nil
}

func checkWidth(table string, width int, rows [][]any) error {
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: %s row %d has %d values, want %d", ErrRowShape, table, i, len(row), width)
		}
	}
	return nil
}
