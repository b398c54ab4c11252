package handlers

import (
	"encoding/json"
	"net/http"

	"plan-visualizer/internal/visualizer/models"
	"plan-visualizer/internal/visualizer/parser"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ============================================================
// Session Routes
// ============================================================

func (h *RenderHandler) CreateSession(c fiber.Ctx) error {
	req, err := h.decode(c)
	if err != nil {
		return h.fail(c, err)
	}

	s, err := h.sessions.Create(c.Context(), req.Layout, req.Furniture, req.Params, req.Theme)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("Session created",
		zap.String("session_id", s.ID),
		zap.Int("rooms", len(s.Layout.Rooms)),
	)
	return c.Status(http.StatusCreated).JSON(s)
}

func (h *RenderHandler) GetSession(c fiber.Ctx) error {
	s, err := h.sessions.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(s)
}

func (h *RenderHandler) DeleteSession(c fiber.Ctx) error {
	if err := h.sessions.Delete(c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// UpdateParams applies a partial parameter change; fields left out keep their value.
func (h *RenderHandler) UpdateParams(c fiber.Ctx) error {
	var doc parser.ParamsDoc
	if err := json.Unmarshal(c.Body(), &doc); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	s, err := h.sessions.UpdateParams(c.Context(), c.Params("id"), doc)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(s)
}

func (h *RenderHandler) UpdateCamera(c fiber.Ctx) error {
	var camera models.Camera
	if err := json.Unmarshal(c.Body(), &camera); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	s, err := h.sessions.UpdateCamera(c.Params("id"), camera)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(s)
}

// SetSessionTheme pins a session to a palette; an empty name follows the current theme.
func (h *RenderHandler) SetSessionTheme(c fiber.Ctx) error {
	var req themeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	s, err := h.sessions.SetTheme(c.Context(), c.Params("id"), req.Name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(s)
}

func (h *RenderHandler) SessionScene(c fiber.Ctx) error {
	s, err := h.sessions.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(s.Scene)
}

func (h *RenderHandler) SessionPlan(c fiber.Ctx) error {
	s, err := h.sessions.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	if c.Query("format") == "svg" {
		c.Set("Content-Type", "image/svg+xml")
		return c.SendString(h.renderer.Render(s.Plan))
	}
	return c.JSON(s.Plan)
}
