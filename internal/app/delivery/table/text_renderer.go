package table

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var classColors = map[string]color.Attribute{
	ClassStatusScheduled: color.FgYellow,
	ClassStatusCompleted: color.FgGreen,
	ClassStatusCancelled: color.FgRed,
}

// WriteText renders t for a terminal. Rows are numbered from 1 so commands
// can address them.
func WriteText(w io.Writer, t Table, colorize bool) error {
	if t.Empty() {
		_, err := fmt.Fprintln(w, t.Placeholder)
		return err
	}

	header := []string{"#"}
	for _, column := range t.Columns {
		header = append(header, column.Label)
	}
	if t.HasActions() {
		header = append(header, "Actions")
	}

	writer := tablewriter.NewWriter(w)
	writer.SetHeader(header)
	writer.SetAutoWrapText(false)
	writer.SetAutoFormatHeaders(false)

	for i, row := range t.Rows {
		line := []string{strconv.Itoa(i + 1)}
		for _, cell := range row.Cells {
			line = append(line, paint(cell, colorize))
		}
		if t.HasActions() {
			line = append(line, actionHint(t))
		}
		writer.Append(line)
	}

	writer.Render()
	return nil
}

func paint(cell Cell, colorize bool) string {
	attribute, ok := classColors[cell.Class]
	if !ok || !colorize {
		return cell.Text
	}
	painter := color.New(attribute)
	painter.EnableColor()
	return painter.Sprint(cell.Text)
}

func actionHint(t Table) string {
	switch {
	case t.CanEdit && t.CanDelete:
		return "edit | delete"
	case t.CanEdit:
		return "edit"
	}
	return "delete"
}
