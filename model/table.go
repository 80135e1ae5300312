package model

// Row is a single result-set record keyed by column name. Values keep the
// driver types (float64, int64, string, time.Time) or nil for SQL NULL.
type Row map[string]any

// Table is an ordered-column result set. The stored procedures behind the
// trading endpoints return slightly different column sets over time, so the
// schema is carried per result instead of being baked into a struct.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the schema if it is not already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Project restricts the table to the requested columns, in the requested
// order. Columns the table does not have are skipped rather than rejected, so
// the projection is an intersection that preserves the caller's ordering.
func (t *Table) Project(columns []string) *Table {
	kept := make([]string, 0, len(columns))
	for _, c := range columns {
		if t.HasColumn(c) {
			kept = append(kept, c)
		}
	}

	out := &Table{Columns: kept, Rows: make([]Row, 0, len(t.Rows))}
	for _, r := range t.Rows {
		pr := make(Row, len(kept))
		for _, c := range kept {
			pr[c] = r[c]
		}
		out.Rows = append(out.Rows, pr)
	}
	return out
}
