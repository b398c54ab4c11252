package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"plan-visualizer/internal/gateway/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ============================================================
// Generation client
// ============================================================

// Client calls the external layout generator. Each request is sent once: no retry,
// backoff or caching.
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		logger:     logger,
	}
}

// Generate forwards the draft and returns the generator's JSON body unchanged.
func (c *Client) Generate(ctx context.Context, req models.GenerationRequest) (json.RawMessage, error) {
	c.logger.Info("Calling layout generator",
		zap.Float64("plot_width", req.PlotWidth),
		zap.Float64("plot_length", req.PlotLength),
		zap.Int("floors", req.Floors),
	)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		Post("/generate-layout")
	if err != nil {
		return nil, fmt.Errorf("call generator: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("generator error: %s", resp.Status())
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("generator returned invalid JSON")
	}
	return json.RawMessage(body), nil
}
