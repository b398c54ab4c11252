package plan

import (
	"strings"
	"testing"

	"plan-visualizer/internal/visualizer/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_Render(t *testing.T) {
	plan := Project(twoFloorLayout(), testTheme, models.RenderParams{ShowFurniture: true})

	svg := NewRenderer().Render(plan)

	assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, svg, `<rect id="plot" x="0" y="0" width="200" height="300"`)
	assert.Contains(t, svg, `<rect id="living" x="50" y="25" width="60" height="40" fill="#F8FAFC"`)
	assert.Contains(t, svg, `12&#39; x 8&#39;`)
	assert.Contains(t, svg, `fill-opacity="0.05"`)
	assert.NotContains(t, svg, `id="bed"`)
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestRenderer_EmptyPlan(t *testing.T) {
	plan := Project(models.Layout{Width: 10, Length: 10}, testTheme, models.RenderParams{})

	svg := NewRenderer().Render(plan)

	assert.Contains(t, svg, `<rect id="plot"`)
	assert.Equal(t, 1, strings.Count(svg, "<rect"))
}

func TestRenderer_EscapesColors(t *testing.T) {
	layout := models.Layout{
		Width:  10,
		Length: 10,
		Rooms: []models.Room{
			{ID: "r", Name: "Den", Width: 4, Length: 4, Color: `red"/><script>alert(1)</script><rect x="`},
		},
	}
	plan := Project(layout, testTheme, models.RenderParams{})

	svg := NewRenderer().Render(plan)

	assert.NotContains(t, svg, "<script>")
	assert.Contains(t, svg, `fill="red&#34;/&gt;&lt;script&gt;alert(1)&lt;/script&gt;&lt;rect x=&#34;"`)
	assert.Equal(t, 2, strings.Count(svg, "<rect"))
}

func TestFitLabel(t *testing.T) {
	assert.Equal(t, "KITCHEN", FitLabel("KITCHEN", 60))
	assert.Equal(t, "", FitLabel("KITCHEN", 3))

	short := FitLabel("GRAND LIVING ROOM", 30)
	assert.LessOrEqual(t, len([]rune(short)), 5)
	assert.True(t, strings.HasSuffix(short, "…"))
}
