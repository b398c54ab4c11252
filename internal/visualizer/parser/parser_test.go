package parser

import (
	"strings"
	"testing"

	"plan-visualizer/internal/visualizer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout_Defaults(t *testing.T) {
	layout, err := ParseLayout([]byte(`{
		"width": 40, "length": 60,
		"rooms": [
			{"id": "k", "name": "Kitchen", "type": "Kitchen", "width": 12, "length": 10, "position": {"x": 3, "y": 4}, "floor": 1, "color": "#fff"},
			{"name": "Study", "width": -4, "floor": -2},
			{"name": "Store"},
			{"name": "Loft", "floor": 1.7}
		]
	}`))
	require.NoError(t, err)

	require.Len(t, layout.Rooms, 4)
	assert.Equal(t, models.Room{ID: "k", Name: "Kitchen", Type: "Kitchen", Width: 12, Length: 10, Position: models.Point{X: 3, Y: 4}, Floor: 1, Color: "#fff"}, layout.Rooms[0])

	study := layout.Rooms[1]
	assert.Equal(t, "room-1", study.ID)
	assert.Equal(t, 0.0, study.Width)
	assert.Equal(t, 0, study.Floor)

	store := layout.Rooms[2]
	assert.Equal(t, "room-2", store.ID)
	assert.Equal(t, models.Point{}, store.Position)
	assert.Empty(t, store.Color)

	assert.Equal(t, 1, layout.Rooms[3].Floor)
}

func TestParseLayout_Malformed(t *testing.T) {
	_, err := ParseLayout([]byte(`{"rooms": [`))
	assert.ErrorContains(t, err, "decode layout")
}

func TestDecodeLayout_Empty(t *testing.T) {
	layout, err := DecodeLayout(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.NotNil(t, layout.Rooms)
	assert.Empty(t, layout.Rooms)
}

func TestParseFurniture(t *testing.T) {
	furniture, err := ParseFurniture([]byte(`{
		"master": {"furniture": [
			{"id": "bed-1", "type": "Bed", "width": 5, "length": 7, "position": {"x": 1, "y": 2}, "rotation": 1.57},
			{"type": "Sofa"}
		]}
	}`))
	require.NoError(t, err)

	items := furniture.ItemsFor("master")
	require.Len(t, items, 2)
	assert.Equal(t, models.FurnitureBed, items[0].Type)
	assert.Equal(t, 1.57, items[0].Rotation)
	assert.Equal(t, "master-item-1", items[1].ID)
	assert.Equal(t, 0.0, items[1].Rotation)
	assert.Nil(t, furniture.ItemsFor("kitchen"))
}

func TestParseRenderParams(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    models.RenderParams
		wantErr error
	}{
		{
			name: "defaults",
			body: `{}`,
			want: models.RenderParams{TimeOfDay: 12, ShowFurniture: true, ViewType: models.ViewExterior},
		},
		{
			name: "interior at dusk",
			body: `{"timeOfDay": 18, "showFurniture": false, "currentFloor": 2, "viewType": "interior"}`,
			want: models.RenderParams{TimeOfDay: 18, CurrentFloor: 2, ViewType: models.ViewInterior},
		},
		{
			name: "hour wraps",
			body: `{"timeOfDay": 25}`,
			want: models.RenderParams{TimeOfDay: 1, ShowFurniture: true, ViewType: models.ViewExterior},
		},
		{
			name: "negative hour wraps",
			body: `{"timeOfDay": -6}`,
			want: models.RenderParams{TimeOfDay: 18, ShowFurniture: true, ViewType: models.ViewExterior},
		},
		{
			name: "negative floor clamps",
			body: `{"currentFloor": -1}`,
			want: models.RenderParams{TimeOfDay: 12, ShowFurniture: true, ViewType: models.ViewExterior},
		},
		{
			name:    "unknown view type",
			body:    `{"viewType": "aerial"}`,
			wantErr: ErrInvalidViewType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRenderParams([]byte(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParamsDoc_ApplyKeepsUnsetFields(t *testing.T) {
	base := models.RenderParams{TimeOfDay: 7, ShowFurniture: false, CurrentFloor: 1, ViewType: models.ViewInterior}
	hour := 9.5

	got, err := ParamsDoc{TimeOfDay: &hour}.Apply(base)
	require.NoError(t, err)

	assert.Equal(t, models.RenderParams{TimeOfDay: 9.5, CurrentFloor: 1, ViewType: models.ViewInterior}, got)
}

func TestParseRenderRequest(t *testing.T) {
	req, err := ParseRenderRequest([]byte(`{
		"layout": {"width": 20, "length": 20, "rooms": [{"id": "a", "name": "A", "width": 5, "length": 5}]},
		"furniture": {"a": {"furniture": [{"id": "s", "type": "Sofa", "width": 3, "length": 2}]}},
		"params": {"viewType": "interior"},
		"theme": "Luxury"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Luxury", req.Theme)
	assert.Len(t, req.Layout.Rooms, 1)
	assert.Len(t, req.Furniture.ItemsFor("a"), 1)
	assert.Equal(t, models.ViewInterior, req.Params.ViewType)
	assert.Equal(t, 12.0, req.Params.TimeOfDay)
}

func TestParseRenderRequest_Minimal(t *testing.T) {
	req, err := ParseRenderRequest([]byte(`{}`))
	require.NoError(t, err)

	assert.Empty(t, req.Layout.Rooms)
	assert.Empty(t, req.Theme)
	assert.Equal(t, models.DefaultRenderParams(), req.Params)
}

func TestParseRenderRequest_BadViewType(t *testing.T) {
	_, err := ParseRenderRequest([]byte(`{"params": {"viewType": "top"}}`))
	assert.ErrorIs(t, err, ErrInvalidViewType)
}

func TestWrapHour(t *testing.T) {
	assert.Equal(t, 0.0, WrapHour(24))
	assert.Equal(t, 23.5, WrapHour(-0.5))
	assert.Equal(t, 12.0, WrapHour(12))
}
