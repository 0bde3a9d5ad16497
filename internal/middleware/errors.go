package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/traderflow/mse-api/internal/domain/apperr"
	"github.com/traderflow/mse-api/internal/domain/dto"
)

// StatusForError maps an error kind to its externally visible status code.
//
//   - ValidationError -> 400
//   - NotFound        -> 404
//   - UpstreamError   -> 502
//   - StoreError      -> 500 (and anything uncategorized)
func StatusForError(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler is the fallback error mapper: handlers that attach errors to
// the Gin context via c.Error instead of responding directly get the first
// one translated into a structured JSON failure here.
var ErrorHandler gin.HandlerFunc = func(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors[0].Err
	c.JSON(StatusForError(err), dto.NewErrorResponse(err.Error(), nil))
}
