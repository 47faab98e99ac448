package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-manager-agent/internal/agent"
	"task-manager-agent/pkg/response"
)

// mapError translates use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, agent.ErrEmptyMessage):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
