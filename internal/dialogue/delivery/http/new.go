package http

import (
	"github.com/gin-gonic/gin"

	"commute-assistant/internal/dialogue"
	pkgLog "commute-assistant/pkg/log"
)

// Handler is the public interface for the dialogue HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc dialogue.UseCase
}

// New creates a new HTTP handler for the dialogue domain.
func New(l pkgLog.Logger, uc dialogue.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
