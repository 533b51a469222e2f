package table

import (
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Cell is one rendered value. Class names a style hook, such as a status
// colour, and is empty for plain cells.
type Cell struct {
	Text  string
	Class string
}

// Formatter turns the raw JSON value found under a column key into a cell.
type Formatter func(value gjson.Result) Cell

type Column struct {
	Key    string
	Label  string
	Format Formatter
}

// Actions are the optional per-row callbacks. The action column exists iff
// at least one is set.
type Actions[R models.Entity] struct {
	OnEdit   func(item R)
	OnDelete func(item R)
}

type Row struct {
	ID    models.ID
	Cells []Cell
}

type Table struct {
	Columns     []Column
	Rows        []Row
	CanEdit     bool
	CanDelete   bool
	Placeholder string

	edit   func(index int)
	remove func(index int)
}

// Edit invokes the edit callback for the 1-based row. It reports false when
// the row does not exist or the table has no edit action.
func (t Table) Edit(row int) bool {
	if t.edit == nil || row < 1 || row > len(t.Rows) {
		return false
	}
	t.edit(row - 1)
	return true
}

// Delete invokes the delete callback for the 1-based row.
func (t Table) Delete(row int) bool {
	if t.remove == nil || row < 1 || row > len(t.Rows) {
		return false
	}
	t.remove(row - 1)
	return true
}

func (t Table) HasActions() bool {
	return t.CanEdit || t.CanDelete
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Width is the number of cells each row renders, the action column included.
func (t Table) Width() int {
	if t.HasActions() {
		return len(t.Columns) + 1
	}
	return len(t.Columns)
}

// Project lays items out as one row per item and one cell per column. It
// does no sorting, filtering or paging.
func Project[R models.Entity](items []R, columns []Column, actions Actions[R]) (Table, error) {
	projected := Table{
		Columns:     columns,
		Rows:        make([]Row, 0, len(items)),
		CanEdit:     actions.OnEdit != nil,
		CanDelete:   actions.OnDelete != nil,
		Placeholder: constvars.NoDataAvailableText,
	}
	if actions.OnEdit != nil {
		projected.edit = func(index int) { actions.OnEdit(items[index]) }
	}
	if actions.OnDelete != nil {
		projected.remove = func(index int) { actions.OnDelete(items[index]) }
	}

	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return Table{}, err
		}

		cells := make([]Cell, 0, len(columns))
		for _, column := range columns {
			value := gjson.GetBytes(raw, column.Key)
			if column.Format != nil {
				cells = append(cells, column.Format(value))
				continue
			}
			cells = append(cells, Cell{Text: value.String()})
		}
		projected.Rows = append(projected.Rows, Row{ID: item.EntityID(), Cells: cells})
	}
	return projected, nil
}
