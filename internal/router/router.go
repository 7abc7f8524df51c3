package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"chat-relay-service/internal/config"
	"chat-relay-service/internal/handler"
	"chat-relay-service/internal/middleware"
	"chat-relay-service/internal/ws"
)

func Setup(
	cfg *config.Config,
	logger *zap.Logger,
	hub *ws.Hub,
	groupHandler *handler.GroupHandler,
	messageHandler *handler.MessageHandler,
	presenceHandler *handler.PresenceHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(middleware.Metrics())

	validator := middleware.NewJWTValidator(cfg.Auth.SecretKey)

	// Health endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.Server.BasePath)
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)

		// Relay endpoint; the handshake authenticates itself via query params.
		api.GET("/ws", hub.HandleWebSocket)

		authenticated := api.Group("")
		authenticated.Use(middleware.AuthMiddleware(validator))
		{
			authenticated.POST("/groups", groupHandler.CreateGroup)
			authenticated.GET("/groups", groupHandler.GetGroups)
			authenticated.GET("/groups/:groupId", groupHandler.GetGroup)

			authenticated.GET("/messages/:targetId", messageHandler.GetHistory)
			authenticated.GET("/messages/:targetId/count", messageHandler.GetMessageCount)

			authenticated.GET("/presence/online", presenceHandler.GetOnlineUsers)
			authenticated.GET("/presence/status/:userId", presenceHandler.GetUserStatus)
		}
	}

	return r
}
