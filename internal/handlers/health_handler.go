package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /
func Health(c *gin.Context) {
	c.String(http.StatusOK, "PAM backend is active and running.")
}
