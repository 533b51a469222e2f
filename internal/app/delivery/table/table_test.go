package table

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"medicare-frontend/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var patientColumns = []Column{
	{Key: "name", Label: "Name"},
	{Key: "email", Label: "Email"},
	{Key: "created_at", Label: "Created At", Format: DateFormatter(time.UTC)},
}

func TestProject_Empty(t *testing.T) {
	projected, err := Project[models.Patient](nil, patientColumns, Actions[models.Patient]{
		OnDelete: func(models.Patient) {},
	})
	require.NoError(t, err)

	assert.True(t, projected.Empty())
	assert.Empty(t, projected.Rows)
	assert.Equal(t, "No data available", projected.Placeholder)

	var out bytes.Buffer
	require.NoError(t, WriteText(&out, projected, false))
	assert.Equal(t, "No data available\n", out.String())
}

func TestProject_RowsAndCells(t *testing.T) {
	items := []models.Patient{
		{Profile: models.Profile{ID: "p1", Name: "John Doe", Email: "john@example.com"}, CreatedAt: "2024-03-07T10:00:00"},
		{Profile: models.Profile{ID: "p2", Name: "Jane Roe"}, CreatedAt: "garbage"},
	}

	t.Run("with actions", func(t *testing.T) {
		projected, err := Project(items, patientColumns, Actions[models.Patient]{
			OnEdit:   func(models.Patient) {},
			OnDelete: func(models.Patient) {},
		})
		require.NoError(t, err)

		require.Len(t, projected.Rows, 2)
		assert.Equal(t, 4, projected.Width())
		assert.Equal(t, models.ID("p1"), projected.Rows[0].ID)
		assert.Equal(t, []Cell{{Text: "John Doe"}, {Text: "john@example.com"}, {Text: "03/07/2024"}}, projected.Rows[0].Cells)
		assert.Equal(t, "Invalid Date", projected.Rows[1].Cells[2].Text)
		assert.Equal(t, "", projected.Rows[1].Cells[1].Text)
	})

	t.Run("without actions", func(t *testing.T) {
		projected, err := Project(items, patientColumns, Actions[models.Patient]{})
		require.NoError(t, err)

		assert.False(t, projected.HasActions())
		assert.Equal(t, 3, projected.Width())
		for _, row := range projected.Rows {
			assert.Len(t, row.Cells, 3)
		}
	})
}

func TestStatusFormatter(t *testing.T) {
	tests := []struct {
		status string
		class  string
	}{
		{"Scheduled", "status-scheduled"},
		{"Completed", "status-completed"},
		{"Cancelled", "status-cancelled"},
		{"Unknown", "status-cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			cell := StatusFormatter(gjson.Parse(`"` + tt.status + `"`))
			assert.Equal(t, tt.status, cell.Text)
			assert.Equal(t, tt.class, cell.Class)
		})
	}

	classes := map[string]bool{}
	for _, status := range models.AppointmentStatuses {
		classes[StatusClass(status)] = true
	}
	assert.Len(t, classes, 3, "every status gets its own class")
}

func TestWriteText(t *testing.T) {
	items := []models.Appointment{
		{ID: "a1", PatientName: "John Doe", Status: models.AppointmentCompleted},
	}
	projected, err := Project(items, []Column{
		{Key: "patient_name", Label: "Patient"},
		{Key: "status", Label: "Status", Format: StatusFormatter},
	}, Actions[models.Appointment]{OnDelete: func(models.Appointment) {}})
	require.NoError(t, err)

	var plain bytes.Buffer
	require.NoError(t, WriteText(&plain, projected, false))
	assert.Contains(t, plain.String(), "Patient")
	assert.Contains(t, plain.String(), "John Doe")
	assert.Contains(t, plain.String(), "delete")
	assert.NotContains(t, plain.String(), "\x1b[")

	var colored bytes.Buffer
	require.NoError(t, WriteText(&colored, projected, true))
	assert.True(t, strings.Contains(colored.String(), "\x1b[32m"), "completed is green")
}

func TestTable_DispatchesCallbacks(t *testing.T) {
	items := []models.Patient{
		{Profile: models.Profile{ID: "p1", Name: "John Doe"}},
		{Profile: models.Profile{ID: "p2", Name: "Jane Roe"}},
	}
	var edited, deleted []models.ID
	projected, err := Project(items, patientColumns, Actions[models.Patient]{
		OnEdit:   func(item models.Patient) { edited = append(edited, item.ID) },
		OnDelete: func(item models.Patient) { deleted = append(deleted, item.ID) },
	})
	require.NoError(t, err)

	assert.True(t, projected.Edit(2))
	assert.True(t, projected.Delete(1))
	assert.False(t, projected.Delete(3))
	assert.False(t, projected.Edit(0))

	assert.Equal(t, []models.ID{"p2"}, edited)
	assert.Equal(t, []models.ID{"p1"}, deleted)

	readOnly, err := Project(items, patientColumns, Actions[models.Patient]{})
	require.NoError(t, err)
	assert.False(t, readOnly.Edit(1))
}
