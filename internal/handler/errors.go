package handler

import (
	"backend/pkg/apperror"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError translates a service error to its HTTP status and envelope.
// Unrecognized errors become a generic 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	status, message := apperror.Translate(err)
	c.JSON(status, response.Error(message))
}
