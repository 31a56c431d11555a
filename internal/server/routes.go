package server

import (
	"github.com/nulzo/assist-router/internal/server/middleware"
	v1 "github.com/nulzo/assist-router/internal/server/v1"
)

func (s *Server) SetupRoutes() {
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Tracing("assist-router"))
	s.router.Use(middleware.ErrorHandler(s.logger))

	limiter := middleware.NewRateLimiter(s.config.RateLimit.RequestsPerSecond, s.config.RateLimit.Burst, s.logger)
	s.router.Use(limiter.Middleware())

	// Health check is public.
	healthHandler := v1.NewHealthHandler()
	s.router.GET("/health", healthHandler.Health)

	api := s.router.Group("/v1")
	api.Use(middleware.Auth(s.config.Server.APIKeys))
	{
		chatHandler := v1.NewChatHandler(s.chat, s.parser)
		api.POST("/chat", chatHandler.Send)
		api.GET("/commands", chatHandler.ListCommands)

		modelHandler := v1.NewModelHandler(s.registry)
		api.GET("/models", modelHandler.ListModels)
		api.POST("/models", modelHandler.RegisterModel)
		api.PUT("/models/:name", modelHandler.UpdateModel)
		api.DELETE("/models/:name", modelHandler.DeleteModel)
		api.GET("/providers/default", modelHandler.GetDefaultProvider)
		api.PUT("/providers/default", modelHandler.SetDefaultProvider)

		if s.repo != nil {
			historyHandler := v1.NewHistoryHandler(s.repo)
			api.GET("/history/:session", historyHandler.ListSession)
			api.DELETE("/history/:session", historyHandler.DeleteSession)

			settingsHandler := v1.NewSettingsHandler(s.repo)
			api.GET("/settings/:provider", settingsHandler.GetProvider)
			api.PUT("/settings/:provider", settingsHandler.PutProvider)
		}
	}
}
