package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// internalError logs the underlying cause and answers with an opaque body.
// Driver and decode errors never reach clients.
func (h *Handler) internalError(c *gin.Context, err error, msg string) {
	h.Log.WithError(err).WithField("path", c.FullPath()).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func validationFailed(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
}
