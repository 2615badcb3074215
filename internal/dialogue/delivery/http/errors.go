package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"commute-assistant/internal/dialogue"
	"commute-assistant/pkg/response"
)

// respondError translates use-case errors into HTTP responses. Caller
// mistakes are 400s with the domain message; everything else is a 500 with
// the generic body.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dialogue.ErrEmptyUtterance), errors.Is(err, dialogue.ErrMissingUser):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
