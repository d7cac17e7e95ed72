package handlers

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pourtrait/pourtrait-api/internal/web"
)

// WebHandler serves the embedded front end.
type WebHandler struct {
	assets fs.FS
}

func NewWebHandler() *WebHandler {
	return &WebHandler{assets: web.Static()}
}

// Index renders the front-end document.
func (h *WebHandler) Index(c *gin.Context) {
	h.serveAsset(c, "index.html", "text/html; charset=utf-8")
}

// ServiceWorker serves sw.js from the site root so its scope covers "/".
func (h *WebHandler) ServiceWorker(c *gin.Context) {
	h.serveAsset(c, "sw.js", "application/javascript")
}

// Manifest serves the web app manifest.
func (h *WebHandler) Manifest(c *gin.Context) {
	h.serveAsset(c, "manifest.webmanifest", "application/manifest+json")
}

func (h *WebHandler) serveAsset(c *gin.Context, name, contentType string) {
	data, err := fs.ReadFile(h.assets, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "asset unavailable"})
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
