package main

import (
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"chat-relay-service/internal/client"
	"chat-relay-service/internal/config"
	"chat-relay-service/internal/database"
	"chat-relay-service/internal/handler"
	"chat-relay-service/internal/repository"
	"chat-relay-service/internal/router"
	"chat-relay-service/internal/service"
	"chat-relay-service/internal/ws"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Server.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting chat relay service",
		zap.Int("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
		zap.String("basePath", cfg.Server.BasePath))

	db, err := database.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("PostgreSQL connected")

	redisClient, err := database.NewRedis(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, presence mirror disabled", zap.Error(err))
		redisClient = nil
	} else {
		logger.Info("Redis connected")
	}

	identityClient := client.NewIdentityClient(cfg.Services.UserServiceURL, 10*time.Second)

	// Repositories
	groupRepo := repository.NewGroupRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Services
	groupService := service.NewGroupService(groupRepo)
	messageService := service.NewMessageService(messageRepo)
	mirror := service.NewPresenceMirror(redisClient, logger)

	// Relay core: registries are constructed once here and passed by
	// reference, never accessed as globals.
	presence := ws.NewPresenceRegistry()
	roster := ws.NewRosterCache(groupRepo)
	typing := ws.NewTypingRelay(presence)
	authenticator := ws.NewAuthenticator(cfg.Auth.SecretKey, identityClient, logger)
	relay := ws.NewRelay(presence, roster, typing, groupService, messageService, identityClient, mirror, logger)
	hub := ws.NewHub(authenticator, relay, logger)

	// Handlers
	groupHandler := handler.NewGroupHandler(groupService, logger)
	messageHandler := handler.NewMessageHandler(messageService, logger)
	presenceHandler := handler.NewPresenceHandler(presence)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	r := router.Setup(cfg, logger, hub, groupHandler, messageHandler, presenceHandler, healthHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Chat relay service started", zap.String("address", addr))

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
