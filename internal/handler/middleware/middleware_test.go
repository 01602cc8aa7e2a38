//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"

	"range-booking/internal/handler/middleware"
	"range-booking/internal/pkg/config"
	"range-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := middleware.NewLogger(config.NewTestConfig().Log)
	router.Use(logger.LoggingMiddleware(), middleware.ErrorHandler())
	router.POST("/echo", middleware.RequireActor(), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"actor": actor, "ok": ok, "request_id": middleware.GetRequestID(c)})
	})
	return router
}

func TestRequireActor(t *testing.T) {
	tests := []struct {
		name       string
		actor      string
		expectCode int
		expectBody string
	}{
		{name: "header present", actor: "rangemaster@range.test", expectCode: http.StatusOK, expectBody: `"actor":"rangemaster@range.test"`},
		{name: "header missing", actor: "", expectCode: http.StatusBadRequest},
		{name: "header blank", actor: "   ", expectCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, newTestRouter(), http.MethodPost, "/echo", nil, tt.actor)
			if tt.expectCode != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tt.expectCode, "X-Actor header is required")
				return
			}
			httptest.AssertSuccessResponse(t, rec, tt.expectCode, nil)
			assert.Contains(t, rec.Body.String(), tt.expectBody)
		})
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	t.Run("inbound id is echoed", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, newTestRouter(), http.MethodPost, "/echo", nil, "a@range.test",
			map[string]string{middleware.RequestIDHeader: "req-123"})

		httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: "req-123"})
		assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)
	})

	t.Run("oversized id is replaced", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, newTestRouter(), http.MethodPost, "/echo", nil, "a@range.test",
			map[string]string{middleware.RequestIDHeader: strings.Repeat("x", 65)})

		got := rec.Header().Get(middleware.RequestIDHeader)
		assert.NotEmpty(t, got)
		assert.NotEqual(t, strings.Repeat("x", 65), got)
	})

	t.Run("id generated when absent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newTestRouter(), http.MethodPost, "/echo", nil, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, rec.Header().Get(middleware.RequestIDHeader))
	})
}
