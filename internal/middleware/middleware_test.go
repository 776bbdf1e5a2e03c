package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/javajoker/product-catalog/internal/i18n"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNegotiateLanguage(t *testing.T) {
	require.NoError(t, i18n.Initialize("en"))

	tests := map[string]string{
		"":                        "en",
		"ru-RU,ru;q=0.9,en;q=0.8": "ru",
		"de-DE,de;q=0.9,ru;q=0.8": "ru",
		"en-US":                   "en",
		"zh_TW":                   "en",
		" , ;q=0.1":               "en",
	}
	for header, want := range tests {
		assert.Equal(t, want, negotiateLanguage(header, "en"), header)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestRateLimiterRejectsAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(rate.Every(time.Hour), 2)

	r := gin.New()
	r.Use(limiter.Middleware())
	r.POST("/upload", func(c *gin.Context) { c.Status(http.StatusCreated) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)

	limiter.evictIdle(0)
	assert.Empty(t, limiter.visitors)
}

func TestExtractResource(t *testing.T) {
	assert.Equal(t, "products", extractResourceType("/products/create"))
	assert.Equal(t, "upload", extractResourceType("/upload"))
	assert.Equal(t, "unknown", extractResourceType("/"))

	assert.Nil(t, extractResourceID("/products/create"))
	id := extractResourceID("/products/12")
	require.NotNil(t, id)
	assert.Equal(t, int64(12), *id)
}
