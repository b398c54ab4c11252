package plan

import (
	"testing"

	"plan-visualizer/internal/visualizer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportSchedule(t *testing.T) {
	layout := twoFloorLayout()
	layout.Rooms[0].Type = "Living"

	buf, err := ExportSchedule(layout)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ScheduleSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, []string{"Floor", "Room", "Type", "Width (ft)", "Length (ft)", "Area (sq ft)", "Label"}, rows[0])
	assert.Equal(t, []string{"0", "Living", "Living", "12", "8", "96", "12' x 8'"}, rows[1])
	assert.Equal(t, "Bath", rows[2][1])
	assert.Equal(t, "Bedroom 2", rows[3][1])

	total, err := f.GetCellValue(ScheduleSheet, "F5")
	require.NoError(t, err)
	assert.Equal(t, "303", total)
}

func TestExportSchedule_Empty(t *testing.T) {
	buf, err := ExportSchedule(models.Layout{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(ScheduleSheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "Total", value)
}
