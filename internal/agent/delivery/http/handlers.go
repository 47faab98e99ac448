package http

import (
	"github.com/gin-gonic/gin"

	"task-manager-agent/pkg/response"
)

// ProcessMessage godoc
// @Summary     Process a chat message
// @Description Classifies the message into a task operation, executes it and returns a natural-language reply.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body processReq true "User message"
// @Success     200  {object} processResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/agent/messages [POST]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessMessage(ctx, req.scope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessMessage: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newProcessResp(output))
}
