// Package handlers contains HTTP request handlers for the todo API.
package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RespondError writes a `{"detail": ...}` error envelope.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

// LogAndRespondError logs the underlying error and writes a sanitized
// error envelope to the client.
func LogAndRespondError(c *gin.Context, status int, err error, message string) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	RespondError(c, status, message)
}
