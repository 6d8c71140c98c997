package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	log := logger.NewLogger()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
		wantType   string
	}{
		{"not found", errors.NewNotFoundError("OLT not found"), http.StatusNotFound, "OLT not found", "not_found"},
		{"conflict", errors.NewConflictError("Email already registered"), http.StatusConflict, "Email already registered", "conflict"},
		{"validation with details", errors.NewValidationError("invalid request", "limit must be at most 1000"), http.StatusBadRequest, "invalid request: limit must be at most 1000", "validation_error"},
		{"wrapped app error", fmt.Errorf("outer: %w", errors.NewNotFoundError("Package not found")), http.StatusNotFound, "Package not found", "not_found"},
		{"storage failure hidden", fmt.Errorf("failed to query: connection refused"), http.StatusInternalServerError, "Internal server error occurred", "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.Use(ErrorHandler(log))
			engine.GET("/x", func(c *gin.Context) { utils.AbortWithError(c, tt.err) })

			w := serve(engine, httptest.NewRequest(http.MethodGet, "/x", nil))
			assert.Equal(t, tt.wantStatus, w.Code)

			var body utils.ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.wantDetail, body.Detail)
			assert.Equal(t, tt.wantType, body.Type)
		})
	}
}

func TestRecovery_RendersGenericError(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.NewLogger()))
	engine.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error occurred")
}

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/x", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(engine, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"http://localhost:5173"}))
	engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := httptest.NewRequest(http.MethodOptions, "/x", nil)
	preflight.Header.Set("Origin", "http://localhost:5173")
	w := serve(engine, preflight)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	foreign := httptest.NewRequest(http.MethodGet, "/x", nil)
	foreign.Header.Set("Origin", "http://evil.example")
	w = serve(engine, foreign)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics_PassesThrough(t *testing.T) {
	engine := gin.New()
	engine.Use(Metrics())
	engine.GET("/customers/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/customers/7", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

type recordingLogger struct {
	logger.Interface
	debug, warn int
}

func (r *recordingLogger) Debugw(msg string, keysAndValues ...any) { r.debug++ }
func (r *recordingLogger) Warnw(msg string, keysAndValues ...any)  { r.warn++ }

func TestLogger_QuietPaths(t *testing.T) {
	rec := &recordingLogger{Interface: logger.NewLogger()}
	engine := gin.New()
	engine.Use(Logger(rec, "/health"))
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/olts", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/down", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	serve(engine, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, 0, rec.debug)

	serve(engine, httptest.NewRequest(http.MethodGet, "/olts", nil))
	assert.Equal(t, 1, rec.debug)

	serve(engine, httptest.NewRequest(http.MethodGet, "/down", nil))
	assert.Equal(t, 1, rec.warn)
}
