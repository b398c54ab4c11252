package proxy

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ============================================================
// Proxy Handler
// ============================================================

var skipHeaders = map[string]bool{
	"Content-Length":    true,
	"Connection":        true,
	"Transfer-Encoding": true,
	"Keep-Alive":        true,
}

// Proxy relays raw requests to an upstream service.
type Proxy struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func New(timeout time.Duration, logger *zap.Logger) *Proxy {
	return &Proxy{
		httpClient: resty.New().SetTimeout(timeout),
		logger:     logger,
	}
}

// To proxies every request to a fixed URL.
func (p *Proxy) To(targetURL string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return p.Forward(c, targetURL)
	}
}

// Under proxies a route group: the wildcard segment and query string are appended to baseURL.
func (p *Proxy) Under(baseURL string) fiber.Handler {
	return func(c fiber.Ctx) error {
		target := baseURL + "/" + c.Params("*")
		if qs := string(c.Request().URI().QueryString()); qs != "" {
			target += "?" + qs
		}
		return p.Forward(c, target)
	}
}

// Forward relays method, body, content type and authorization to targetURL and copies the
// upstream response back.
func (p *Proxy) Forward(c fiber.Ctx, targetURL string) error {
	p.logger.Debug("Proxying request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("content_length", len(c.Body())),
		zap.String("target", targetURL),
	)

	req := p.httpClient.R().SetContext(c.Context())
	if contentType := c.Get("Content-Type"); contentType != "" {
		req.SetHeader("Content-Type", contentType)
	}
	if auth := c.Get("Authorization"); auth != "" {
		req.SetHeader("Authorization", auth)
	}
	if accept := c.Get("Accept"); accept != "" {
		req.SetHeader("Accept", accept)
	}
	if body := c.Body(); len(body) > 0 {
		req.SetBody(body)
	}

	resp, err := req.Execute(c.Method(), targetURL)
	if err != nil {
		p.logger.Warn("Upstream unreachable", zap.String("target", targetURL), zap.Error(err))
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "failed to reach upstream service"})
	}

	for key, values := range resp.Header() {
		if len(values) > 0 && !skipHeaders[http.CanonicalHeaderKey(key)] {
			c.Set(key, values[0])
		}
	}

	c.Status(resp.StatusCode())
	return c.Send(resp.Body())
}
