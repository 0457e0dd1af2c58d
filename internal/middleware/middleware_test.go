package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/model"
	"shareit/pkg/log"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handlers...)
	return r
}

func get(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	mw := New(log.NewNop(), nil, Config{})

	var got model.Scope
	r := newEngine(mw.Auth(), func(c *gin.Context) {
		got, _ = model.GetScopeFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	tcs := map[string]struct {
		header string
		code   int
		userID int64
	}{
		"valid":    {header: "7", code: http.StatusOK, userID: 7},
		"missing":  {header: "", code: http.StatusBadRequest},
		"garbage":  {header: "seven", code: http.StatusBadRequest},
		"negative": {header: "-1", code: http.StatusBadRequest},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got = model.Scope{}
			headers := map[string]string{}
			if tc.header != "" {
				headers[UserIDHeader] = tc.header
			}
			w := get(r, headers)
			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, tc.userID, got.UserID)
		})
	}
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), nil, Config{})

	var seen string
	r := newEngine(mw.RequestID(), func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := get(r, nil)
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	w = get(r, map[string]string{RequestIDHeader: "abc"})
	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 tokens.
	mw := New(log.NewNop(), nil, Config{RateLimitPerMin: 60})
	r := newEngine(mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 6; i++ {
		require.Equal(t, http.StatusOK, get(r, map[string]string{UserIDHeader: "1"}).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, get(r, map[string]string{UserIDHeader: "1"}).Code)

	// Separate bucket per user.
	assert.Equal(t, http.StatusOK, get(r, map[string]string{UserIDHeader: "2"}).Code)
}

func TestRateLimitDisabled(t *testing.T) {
	mw := New(log.NewNop(), nil, Config{})
	r := newEngine(mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, get(r, nil).Code)
	}
}
