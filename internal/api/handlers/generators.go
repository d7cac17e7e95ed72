package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pourtrait/pourtrait-api/internal/engine"
)

// ListGenerators returns the closed set of generator keys with their labels.
// The front end populates its selector from this.
func ListGenerators(c *gin.Context) {
	keys := engine.Keys()
	out := make([]gin.H, 0, len(keys))
	for _, k := range keys {
		out = append(out, gin.H{"key": string(k), "label": k.Label()})
	}
	c.JSON(http.StatusOK, out)
}
