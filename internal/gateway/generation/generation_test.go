package generation

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"plan-visualizer/internal/gateway/models"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const draft = `{"plot_length": 60, "plot_width": 40, "floors": 2, "budget": 5000000, "facing": "N",
	"bedrooms": 3, "bathrooms": 2, "kitchen_type": "Open", "living_room_size": "Large", "dining": "Separate",
	"study_room": true, "pooja_room": false, "utility_room": true, "store_room": false,
	"vastu_compliance": "Strict", "parking": "Covered", "balcony": "Front"}`

const variants = `{"status":"success","data":{"variants":[],"message":"Generated 0 layouts based on input"}}`

func newApp(upstream string) *fiber.App {
	client := NewClient(upstream, 2*time.Second, zap.NewNop())
	app := fiber.New()
	app.Post("/api/v1/generate-layout", NewHandler(client, zap.NewNop()).GenerateLayout)
	return app
}

func post(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/generate-layout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestGenerateLayout_Success(t *testing.T) {
	var received models.GenerationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate-layout", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &received)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(variants))
	}))
	defer srv.Close()

	resp, out := post(t, newApp(srv.URL), draft)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", out["status"])
	assert.Equal(t, 3, received.Bedrooms)
	require.NotNil(t, received.Facing)
	assert.Equal(t, models.North, *received.Facing)
}

func TestGenerateLayout_UpstreamFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	resp, out := post(t, newApp(srv.URL), draft)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"status": "error", "message": "Failed to generate layout"}, out)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGenerateLayout_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	resp, out := post(t, newApp(url), draft)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to generate layout", out["message"])
}

func TestGenerateLayout_InvalidUpstreamJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	resp, _ := post(t, newApp(srv.URL), draft)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestGenerateLayout_MalformedDraft(t *testing.T) {
	resp, out := post(t, newApp("http://127.0.0.1:1"), `{"plot_length": `)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", out["status"])
}
