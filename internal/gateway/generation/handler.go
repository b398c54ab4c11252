package generation

import (
	"context"
	"encoding/json"
	"net/http"

	"plan-visualizer/internal/gateway/models"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// Generator produces layout variants for a wizard draft.
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (json.RawMessage, error)
}

type Handler struct {
	generator Generator
	logger    *zap.Logger
}

func NewHandler(generator Generator, logger *zap.Logger) *Handler {
	return &Handler{generator: generator, logger: logger}
}

// GenerateLayout relays the draft to the generator. Any upstream failure surfaces as a
// single generic 500.
func (h *Handler) GenerateLayout(c fiber.Ctx) error {
	var req models.GenerationRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "invalid JSON payload"})
	}

	data, err := h.generator.Generate(c.Context(), req)
	if err != nil {
		h.logger.Error("Error generating layout", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to generate layout",
		})
	}

	c.Set("Content-Type", "application/json")
	return c.Send(data)
}
