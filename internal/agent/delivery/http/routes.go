package http

import (
	"github.com/gin-gonic/gin"

	"task-manager-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	messages := rg.Group("/messages")
	{
		messages.POST("", mw.RateLimit(), h.ProcessMessage)
	}
}
