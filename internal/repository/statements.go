package repository

import (
	"strconv"
	"strings"
)

// Placeholder renders the bind marker for the 1-based parameter n.
type Placeholder func(n int) string

// Dollar renders PostgreSQL-style markers.
func Dollar(n int) string { return "$" + strconv.Itoa(n) }

// Question renders SQLite-style markers.
func Question(int) string { return "?" }

// InsertStatement builds a single-row INSERT for validated identifiers.
func InsertStatement(table string, columns []string, ph Placeholder) string {
	marks := make([]string, len(columns))
	for i := range columns {
		marks[i] = ph(i + 1)
	}
	return "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
}

// UpdateStatement builds an UPDATE keyed on keyColumn. Bind the new values in
// column order, then the key.
func UpdateStatement(table, keyColumn string, columns []string, ph Placeholder) string {
	sets := make([]string, len(columns))
	for i, c := range columns {
		sets[i] = c + " = " + ph(i+1)
	}
	return "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE " + keyColumn + " = " + ph(len(columns)+1)
}
