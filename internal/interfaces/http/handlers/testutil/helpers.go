package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/fiberdesk/fiberdesk/internal/interfaces/http/middleware"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewEngine returns a gin engine with the error-rendering middleware, so
// handler errors produce the same bodies as in production.
func NewEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.ErrorHandler(NewMockLogger()))
	return engine
}

// Do serves one request against engine. A non-nil body is JSON-encoded unless
// it is already a string or an io.Reader.
func Do(engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	case io.Reader:
		reader = b
	default:
		jsonBytes, _ := json.Marshal(b)
		reader = bytes.NewReader(jsonBytes)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// DoRequest serves a prepared request, for multipart uploads and custom headers.
func DoRequest(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// ParseError decodes the uniform error body.
func ParseError(w *httptest.ResponseRecorder) utils.ErrorBody {
	var body utils.ErrorBody
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}

// NewMockLogger returns a no-op logger.Interface for tests.
func NewMockLogger() logger.Interface {
	return &mockLogger{}
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)             {}
func (m *mockLogger) Info(msg string, args ...any)              {}
func (m *mockLogger) Warn(msg string, args ...any)              {}
func (m *mockLogger) Error(msg string, args ...any)             {}
func (m *mockLogger) With(args ...any) logger.Interface         { return m }
func (m *mockLogger) Component(name string) logger.Interface    { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any)   {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)    {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)    {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any)   {}
