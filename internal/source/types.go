package source

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alexanderjulianmartinez/tablecheck/pkg/types"
)

var (
	ErrEmptyColumnName = errors.New("column name is required")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrRaggedColumns   = errors.New("columns have different row counts")
)

type Column struct {
	Name   string
	Values []types.Value
}

// Table is an in-memory snapshot of named, row-aligned columns.
// It copies cell values on the way in and out, so it is never mutated after
// construction.
type Table struct {
	columns []Column
	index   map[string]int
	rows    int
}

func NewTable(columns ...Column) (*Table, error) {
	t := &Table{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		if col.Name == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrEmptyColumnName)
		}
		if _, ok := t.index[col.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, col.Name)
		}
		if i == 0 {
			t.rows = len(col.Values)
		} else if len(col.Values) != t.rows {
			return nil, fmt.Errorf("%w: column %s has %d rows, expected %d",
				ErrRaggedColumns, col.Name, len(col.Values), t.rows)
		}
		t.index[col.Name] = i
		t.columns = append(t.columns, Column{Name: col.Name, Values: slices.Clone(col.Values)})
	}
	return t, nil
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i].clone(), true
}

// Columns returns copies of the columns in declared order.
func (t *Table) Columns() []Column {
	cols := make([]Column, 0, len(t.columns))
	for _, col := range t.columns {
		cols = append(cols, col.clone())
	}
	return cols
}

func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.columns))
	for _, col := range t.columns {
		names = append(names, col.Name)
	}
	return names
}

func (t *Table) NumColumns() int {
	return len(t.columns)
}

func (t *Table) NumRows() int {
	return t.rows
}

func (c Column) clone() Column {
	return Column{Name: c.Name, Values: slices.Clone(c.Values)}
}
