package server

import (
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/nulzo/assist-router/internal/chat"
	"github.com/nulzo/assist-router/internal/command"
	"github.com/nulzo/assist-router/internal/config"
	"github.com/nulzo/assist-router/internal/registry"
	"github.com/nulzo/assist-router/internal/server/middleware"
	"github.com/nulzo/assist-router/internal/server/validator"
	"github.com/nulzo/assist-router/internal/store"
	"go.uber.org/zap"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	logger   *zap.Logger
	chat     *chat.Service
	parser   *command.Parser
	registry *registry.Registry
	repo     store.Repository
}

func New(cfg *config.Config, logger *zap.Logger, svc *chat.Service, parser *command.Parser, reg *registry.Registry, repo store.Repository) *Server {

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	validator.InitValidator()

	engine := gin.New()
	engine.Use(ginzap.RecoveryWithZap(logger, true))
	engine.Use(middleware.Logger(logger))

	s := &Server{
		router:   engine,
		config:   cfg,
		logger:   logger,
		chat:     svc,
		parser:   parser,
		registry: reg,
		repo:     repo,
	}

	s.SetupRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}
