package assets

import (
	"context"
	"fmt"
	"sync"
	"time"

	"plan-visualizer/internal/visualizer/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ============================================================
// Environment map loader
// ============================================================

// Loader fetches the environment map once in the background. Scene derivation only
// ever reads a Snapshot and never waits for the fetch.
type Loader struct {
	httpClient *resty.Client
	url        string
	preset     string
	logger     *zap.Logger

	mu     sync.RWMutex
	status models.AssetStatus
	size   int
	done   chan struct{}
	once   sync.Once
}

// NewLoader returns a disabled loader when url is empty.
func NewLoader(url, preset string, timeout time.Duration, logger *zap.Logger) *Loader {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "*/*")

	status := models.AssetPending
	if url == "" {
		status = models.AssetDisabled
	}

	return &Loader{
		httpClient: client,
		url:        url,
		preset:     preset,
		logger:     logger,
		status:     status,
		done:       make(chan struct{}),
	}
}

// Start launches the fetch. Calling it more than once has no effect.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		if l.url == "" {
			close(l.done)
			return
		}
		go func() {
			defer close(l.done)
			if err := l.Load(ctx); err != nil {
				l.logger.Warn("Environment map unavailable, using flat lighting",
					zap.String("url", l.url),
					zap.Error(err),
				)
			}
		}()
	})
}

// Done is closed once the fetch has finished, successfully or not.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Load fetches the asset synchronously and records the outcome.
func (l *Loader) Load(ctx context.Context) error {
	if l.url == "" {
		return nil
	}

	resp, err := l.httpClient.R().
		SetContext(ctx).
		Get(l.url)
	if err != nil {
		l.setStatus(models.AssetFailed, 0)
		return fmt.Errorf("fetch environment map: %w", err)
	}
	if resp.IsError() {
		l.setStatus(models.AssetFailed, 0)
		return fmt.Errorf("fetch environment map: status %d", resp.StatusCode())
	}

	l.setStatus(models.AssetReady, len(resp.Body()))
	l.logger.Info("Environment map loaded",
		zap.String("url", l.url),
		zap.Int("bytes", len(resp.Body())),
	)
	return nil
}

func (l *Loader) setStatus(status models.AssetStatus, size int) {
	l.mu.Lock()
	l.status = status
	l.size = size
	l.mu.Unlock()
}

// Snapshot is the environment as the scene should see it right now.
func (l *Loader) Snapshot() models.Environment {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return models.Environment{
		Preset: l.preset,
		URL:    l.url,
		Status: l.status,
		Flat:   l.status != models.AssetReady,
	}
}
