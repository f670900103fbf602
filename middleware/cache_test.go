package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheServesRepeatedGets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := cache.New(time.Minute, time.Minute)

	calls := 0
	r := gin.New()
	r.GET("/value", Cache(store, time.Minute), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/value", nil))
	require.Equal(t, http.StatusOK, w1.Code)

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/value", nil))
	require.Equal(t, http.StatusOK, w2.Code)

	assert.Equal(t, 1, calls)
	assert.Equal(t, w1.Body.String(), w2.Body.String())

	// A different URI misses the cache.
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/value?x=1", nil))
	require.Equal(t, http.StatusOK, w3.Code)
	assert.Equal(t, 2, calls)
}

func TestCacheSkipsErrorsAndWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := cache.New(time.Minute, time.Minute)

	failures := 0
	r := gin.New()
	r.GET("/flaky", Cache(store, time.Minute), func(c *gin.Context) {
		failures++
		if failures == 1 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	posts := 0
	r.POST("/submit", Cache(store, time.Minute), func(c *gin.Context) {
		posts++
		c.JSON(http.StatusOK, gin.H{"posts": posts})
	})

	// Error responses are not cached; the retry reaches the handler.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/flaky", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/flaky", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Non-GET methods bypass the cache entirely.
	for range [2]struct{}{} {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, posts)
}
