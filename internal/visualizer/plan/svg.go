package plan

import (
	"fmt"
	"html"
	"math"
	"strings"

	"plan-visualizer/internal/visualizer/models"

	"github.com/mattn/go-runewidth"
)

// ============================================================
// SVG Renderer
// ============================================================

const (
	// pxPerCell approximates the width of one terminal cell of label text.
	pxPerCell    = 6.0
	nameFontSize = 10
	dimsFontSize = 8
	labelGap     = 12.0
	framePadding = 2.0
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws a projected plan as a standalone SVG document.
func (r *Renderer) Render(plan models.Plan) string {
	width := plan.Outline.Width + 2*framePadding
	height := plan.Outline.Height + 2*framePadding

	var elements []string
	elements = append(elements, r.renderOutline(plan))
	for _, room := range plan.Rooms {
		elements = append(elements, r.renderRoom(room)...)
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`,
		formatFloat(width), formatFloat(height),
		formatFloat(-framePadding), formatFloat(-framePadding), formatFloat(width), formatFloat(height)))
	builder.WriteString("\n")

	for _, elem := range elements {
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}

	builder.WriteString(`</svg>`)
	return builder.String()
}

// ============================================================
// Element renderers
// ============================================================

func (r *Renderer) renderOutline(plan models.Plan) string {
	return fmt.Sprintf(`<rect id="plot" x="0" y="0" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="2" />`,
		formatFloat(plan.Outline.Width), formatFloat(plan.Outline.Height), html.EscapeString(plan.Background), html.EscapeString(plan.Border))
}

func (r *Renderer) renderRoom(room models.PlanRoom) []string {
	rect := room.Rect
	out := []string{
		fmt.Sprintf(`<rect id="%s" x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" />`,
			html.EscapeString(room.RoomID), formatFloat(rect.X), formatFloat(rect.Y),
			formatFloat(rect.Width), formatFloat(rect.Height), html.EscapeString(room.Fill), html.EscapeString(room.Stroke)),
	}

	if o := room.Overlay; o != nil {
		out = append(out, fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" fill-opacity="%s" stroke="%s" stroke-opacity="%s" pointer-events="none" />`,
			formatFloat(o.Rect.X), formatFloat(o.Rect.Y), formatFloat(o.Rect.Width), formatFloat(o.Rect.Height),
			html.EscapeString(o.Fill), formatFloat(o.FillOpacity), html.EscapeString(o.Stroke), formatFloat(o.StrokeOpacity)))
	}

	cx := rect.X + rect.Width/2
	cy := rect.Y + rect.Height/2
	out = append(out,
		fmt.Sprintf(`<text x="%s" y="%s" font-size="%d" font-weight="bold" text-anchor="middle" fill="#334155">%s</text>`,
			formatFloat(cx), formatFloat(cy-labelGap/2), nameFontSize, html.EscapeString(FitLabel(strings.ToUpper(room.Name), rect.Width))),
		fmt.Sprintf(`<text x="%s" y="%s" font-size="%d" text-anchor="middle" fill="#94A3B8">%s</text>`,
			formatFloat(cx), formatFloat(cy+labelGap/2), dimsFontSize, html.EscapeString(room.Dimensions)),
	)

	return out
}

// FitLabel truncates text so it spans at most widthPx, measured in display cells.
func FitLabel(text string, widthPx float64) string {
	cells := int(math.Floor(widthPx / pxPerCell))
	if cells <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= cells {
		return text
	}
	return runewidth.Truncate(text, cells, "…")
}
