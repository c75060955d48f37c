package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

const faviconContentType = "image/vnd.microsoft.icon"

// HealthHandler answers liveness probes
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers the liveness route
func (h *HealthHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.Root)
}

// Root always reports OK, whatever the configuration state
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// StaticHandler serves the fixed static assets
type StaticHandler struct {
	dir string
}

// NewStaticHandler creates a StaticHandler rooted at dir
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// RegisterRoutes registers the favicon route
func (h *StaticHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/favicon.ico", h.Favicon)
}

// Favicon serves favicon.ico from the static directory
func (h *StaticHandler) Favicon(c *gin.Context) {
	// http.ServeFile keeps a Content-Type that is already set
	c.Header("Content-Type", faviconContentType)
	c.File(filepath.Join(h.dir, "favicon.ico"))
}
