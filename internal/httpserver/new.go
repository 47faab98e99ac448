package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-manager-agent/internal/task/repository"
	"task-manager-agent/pkg/datemath"
	"task-manager-agent/pkg/gcalendar"
	"task-manager-agent/pkg/llmprovider"
	"task-manager-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domain dependencies
	connector       repository.Connector
	llm             llmprovider.Completer
	calendar        *gcalendar.Client
	dateMath        *datemath.Parser
	timezone        string
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Connector       repository.Connector
	LLM             llmprovider.Completer
	Calendar        *gcalendar.Client
	DateMath        *datemath.Parser
	Timezone        string
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		connector:       cfg.Connector,
		llm:             cfg.LLM,
		calendar:        cfg.Calendar,
		dateMath:        cfg.DateMath,
		timezone:        cfg.Timezone,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.connector == nil {
		return errors.New("task store connector is required")
	}
	if srv.llm == nil {
		return errors.New("llm completer is required")
	}
	if srv.dateMath == nil {
		return errors.New("datemath parser is required")
	}
	return nil
}
