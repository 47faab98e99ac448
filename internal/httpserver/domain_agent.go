package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	agentHTTP "task-manager-agent/internal/agent/delivery/http"
	agentUC "task-manager-agent/internal/agent/usecase"
	"task-manager-agent/internal/middleware"
	"task-manager-agent/internal/task/matcher"
	taskUC "task-manager-agent/internal/task/usecase"
)

// setupAgentDomain initializes the agent domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, ...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupAgentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCases
	m := matcher.New(srv.l, srv.llm)
	var cal taskUC.Calendar
	if srv.calendar != nil {
		cal = srv.calendar
	}
	tasks := taskUC.New(srv.l, srv.connector, m, cal, srv.dateMath, srv.timezone)
	uc := agentUC.New(srv.l, srv.llm, tasks)

	// 2. HTTP Handler
	h := agentHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/agent/messages
	agentHTTP.RegisterRoutes(api.Group("/agent"), h, mw)

	srv.l.Infof(ctx, "Agent domain registered")
	return nil
}
