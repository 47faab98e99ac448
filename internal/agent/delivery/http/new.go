package http

import (
	"github.com/gin-gonic/gin"

	"task-manager-agent/internal/agent"
	pkgLog "task-manager-agent/pkg/log"
)

// Handler is the public interface for the agent HTTP delivery layer.
type Handler interface {
	ProcessMessage(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc agent.UseCase
}

// New creates a new HTTP handler for the agent domain.
func New(l pkgLog.Logger, uc agent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
