package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/crm_pos_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), GetLoggerFromCtx(context.Background()))

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, logger, GetLoggerFromCtx(WithLogger(context.Background(), logger)))
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(StructuredLoggingMiddleware(base))
	r.GET("/ping", func(c *gin.Context) {
		GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	t.Run("generates a request id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		requestID := w.Header().Get(RequestIDHeader)
		require.NotEmpty(t, requestID)
		assert.Contains(t, buf.String(), `"request_id":"`+requestID+`"`)
		assert.Contains(t, buf.String(), "inside handler")
		assert.Contains(t, buf.String(), `"status":204`)
	})

	t.Run("keeps the caller's request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
	})
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(testSecret, "crm-pos-app"))
	r.GET("/me", func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	valid, err := utils.GenerateJWT("user-42", testSecret, time.Hour, "crm-pos-app")
	require.NoError(t, err)
	expired, err := utils.GenerateJWT("user-42", testSecret, -time.Minute, "crm-pos-app")
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT("user-42", testSecret, time.Hour, "elsewhere")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, "user-42"},
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "Bearer {token}"},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		{"foreign issuer", "Bearer " + foreign, http.StatusUnauthorized, "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRateLimit(t *testing.T) {
	lim, err := NewRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(RateLimit(lim))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiter_InvalidRate(t *testing.T) {
	_, err := NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

type validatedRequest struct {
	Method string `json:"method" binding:"required,paymentmethod"`
	Stage  string `json:"stage" binding:"required,dealstage"`
}

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())

	bind := func(body string) error {
		var req validatedRequest
		return binding.JSON.BindBody([]byte(body), &req)
	}

	assert.NoError(t, bind(`{"method":"CASH","stage":"proposal"}`))
	assert.Error(t, bind(`{"method":"BITCOIN","stage":"proposal"}`))
	err := bind(`{"method":"CARD","stage":"won"}`)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "dealstage"))
}
