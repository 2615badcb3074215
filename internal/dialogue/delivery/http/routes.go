package http

import (
	"github.com/gin-gonic/gin"

	"commute-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The chat route requires a bearer identity and is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Auth(), mw.RateLimit(), h.Chat)
}
