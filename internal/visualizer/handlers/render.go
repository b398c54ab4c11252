package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"plan-visualizer/internal/visualizer/mock"
	"plan-visualizer/internal/visualizer/models"
	"plan-visualizer/internal/visualizer/parser"
	"plan-visualizer/internal/visualizer/plan"
	"plan-visualizer/internal/visualizer/scene"
	"plan-visualizer/internal/visualizer/session"
	"plan-visualizer/internal/visualizer/theme"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ============================================================
// Render Handler
// ============================================================

type RenderHandler struct {
	themes   *theme.Resolver
	sessions *session.Manager
	env      session.EnvironmentSource
	renderer *plan.Renderer
	log      *zap.Logger
}

func NewRenderHandler(themes *theme.Resolver, sessions *session.Manager, env session.EnvironmentSource, log *zap.Logger) *RenderHandler {
	return &RenderHandler{
		themes:   themes,
		sessions: sessions,
		env:      env,
		renderer: plan.NewRenderer(),
		log:      log,
	}
}

// Register mounts every visualizer route on r.
func (h *RenderHandler) Register(r fiber.Router) {
	r.Get("/themes", h.ListThemes)
	r.Get("/themes/current", h.CurrentTheme)
	r.Put("/themes/current", h.SetCurrentTheme)

	r.Post("/scene", h.Scene)
	r.Post("/scene/msgpack", h.SceneMsgpack)
	r.Post("/plan", h.Plan)
	r.Post("/plan/svg", h.PlanSVG)
	r.Post("/plan/schedule", h.Schedule)
	r.Get("/sample", h.Sample)

	r.Post("/sessions", h.CreateSession)
	r.Get("/sessions/:id", h.GetSession)
	r.Delete("/sessions/:id", h.DeleteSession)
	r.Patch("/sessions/:id/params", h.UpdateParams)
	r.Put("/sessions/:id/camera", h.UpdateCamera)
	r.Put("/sessions/:id/theme", h.SetSessionTheme)
	r.Get("/sessions/:id/scene", h.SessionScene)
	r.Get("/sessions/:id/plan", h.SessionPlan)
}

// ============================================================
// Themes
// ============================================================

func (h *RenderHandler) ListThemes(c fiber.Ctx) error {
	list, err := h.themes.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"themes":  list,
		"current": h.themes.Current().Name,
	})
}

func (h *RenderHandler) CurrentTheme(c fiber.Ctx) error {
	return c.JSON(h.themes.Current())
}

type themeRequest struct {
	Name string `json:"name"`
}

// SetCurrentTheme switches the palette used by stateless renders and by sessions that
// follow the current theme.
func (h *RenderHandler) SetCurrentTheme(c fiber.Ctx) error {
	var req themeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name required"})
	}

	t, err := h.themes.SetCurrent(c.Context(), req.Name)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("Theme switched", zap.String("theme", t.Name))
	return c.JSON(t)
}

// ============================================================
// Stateless renders
// ============================================================

func (h *RenderHandler) Scene(c fiber.Ctx) error {
	s, err := h.composeScene(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(s)
}

func (h *RenderHandler) SceneMsgpack(c fiber.Ctx) error {
	s, err := h.composeScene(c)
	if err != nil {
		return h.fail(c, err)
	}

	data, err := scene.EncodeMsgpack(s)
	if err != nil {
		h.log.Error("Failed to encode scene", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to encode msgpack"})
	}
	c.Set("Content-Type", "application/msgpack")
	return c.Send(data)
}

func (h *RenderHandler) Plan(c fiber.Ctx) error {
	p, err := h.projectPlan(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

func (h *RenderHandler) PlanSVG(c fiber.Ctx) error {
	p, err := h.projectPlan(c)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(h.renderer.Render(p))
}

// Schedule returns the room schedule of every floor as an XLSX workbook.
func (h *RenderHandler) Schedule(c fiber.Ctx) error {
	req, err := h.decode(c)
	if err != nil {
		return h.fail(c, err)
	}

	buf, err := plan.ExportSchedule(req.Layout)
	if err != nil {
		h.log.Error("Failed to export schedule", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to export schedule"})
	}
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="room-schedule.xlsx"`)
	return c.Send(buf.Bytes())
}

func (h *RenderHandler) Sample(c fiber.Ctx) error {
	layout, furniture := mock.SampleLayout()
	return c.JSON(fiber.Map{
		"layout":    layout,
		"furniture": furniture,
	})
}

func (h *RenderHandler) composeScene(c fiber.Ctx) (models.Scene, error) {
	req, err := h.decode(c)
	if err != nil {
		return models.Scene{}, err
	}
	t, err := h.themes.Resolve(c.Context(), req.Theme)
	if err != nil {
		return models.Scene{}, err
	}
	return scene.Compose(scene.Input{
		Layout:      req.Layout,
		Furniture:   req.Furniture,
		Theme:       t,
		Params:      req.Params,
		Environment: h.env.Snapshot(),
	}), nil
}

func (h *RenderHandler) projectPlan(c fiber.Ctx) (models.Plan, error) {
	req, err := h.decode(c)
	if err != nil {
		return models.Plan{}, err
	}
	t, err := h.themes.Resolve(c.Context(), req.Theme)
	if err != nil {
		return models.Plan{}, err
	}
	return plan.Project(req.Layout, t, req.Params), nil
}

// ============================================================
// Errors
// ============================================================

var errEmptyBody = errors.New("body required")

type badRequestError struct{ err error }

func (e badRequestError) Error() string { return e.err.Error() }
func (e badRequestError) Unwrap() error { return e.err }

func (h *RenderHandler) decode(c fiber.Ctx) (parser.RenderRequest, error) {
	if len(c.Body()) == 0 {
		return parser.RenderRequest{}, badRequestError{errEmptyBody}
	}
	req, err := parser.ParseRenderRequest(c.Body())
	if err != nil {
		return parser.RenderRequest{}, badRequestError{err}
	}
	return req, nil
}

// fail maps domain errors onto HTTP statuses.
func (h *RenderHandler) fail(c fiber.Ctx, err error) error {
	var bad badRequestError
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, theme.ErrUnknownTheme):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, parser.ErrInvalidViewType), errors.As(err, &bad):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	h.log.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
