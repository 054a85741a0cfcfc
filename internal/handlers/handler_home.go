package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// homeHandler reports service liveness.
func homeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
