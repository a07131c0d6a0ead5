package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fleet_incident_tracker/internal/config"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware(cfg))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	router := newCORSRouter(&config.Config{CORSAllowedOrigins: []string{"https://fleet.example.com"}})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Origin", "https://fleet.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://fleet.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_ForeignOriginRejected(t *testing.T) {
	router := newCORSRouter(&config.Config{CORSAllowedOrigins: []string{"https://fleet.example.com"}})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORSMiddleware_AllowAll(t *testing.T) {
	router := newCORSRouter(&config.Config{})

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
