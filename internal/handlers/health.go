package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports that the server is accepting requests.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "todo-api is running",
	})
}
