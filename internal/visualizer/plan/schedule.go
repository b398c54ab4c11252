package plan

import (
	"bytes"
	"fmt"
	"sort"

	"plan-visualizer/internal/visualizer/models"

	"github.com/xuri/excelize/v2"
)

// ============================================================
// Room schedule export
// ============================================================

const ScheduleSheet = "Rooms"

var scheduleHeader = []interface{}{"Floor", "Room", "Type", "Width (ft)", "Length (ft)", "Area (sq ft)", "Label"}

// ExportSchedule writes an XLSX room schedule, ordered by floor then input order.
func ExportSchedule(layout models.Layout) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ScheduleSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(ScheduleSheet, "A1", &scheduleHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	rooms := append([]models.Room{}, layout.Rooms...)
	sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Floor < rooms[j].Floor })

	var total float64
	for i, room := range rooms {
		width := clampZero(room.Width)
		length := clampZero(room.Length)
		area := width * length
		total += area

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{room.Floor, room.Name, room.Type, width, length, area, DimensionLabel(room.Width, room.Length)}
		if err := f.SetSheetRow(ScheduleSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write room %s: %w", room.ID, err)
		}
	}

	totalCell, err := excelize.CoordinatesToCellName(5, len(rooms)+2)
	if err != nil {
		return nil, err
	}
	footer := []interface{}{"Total", total}
	if err := f.SetSheetRow(ScheduleSheet, totalCell, &footer); err != nil {
		return nil, fmt.Errorf("write total: %w", err)
	}

	return f.WriteToBuffer()
}
