package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/redmonkez12/devconnector-api/docs" // Swagger docs
	"github.com/redmonkez12/devconnector-api/internal/auth"
	"github.com/redmonkez12/devconnector-api/internal/config"
	"github.com/redmonkez12/devconnector-api/internal/database"
	"github.com/redmonkez12/devconnector-api/internal/github"
	httpServer "github.com/redmonkez12/devconnector-api/internal/http"
	"github.com/redmonkez12/devconnector-api/internal/logging"
	"github.com/redmonkez12/devconnector-api/internal/post"
	"github.com/redmonkez12/devconnector-api/internal/profile"
	"github.com/redmonkez12/devconnector-api/internal/ratelimit"
	"github.com/redmonkez12/devconnector-api/internal/user"
)

// @title           DevConnector API
// @version         1.0
// @description     Developer profiles, posts, likes and comments behind token authentication.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth-token
// @description Session token returned by /api/users and /api/auth.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	ctx := context.Background()

	// Users live in Postgres
	db, err := database.OpenPostgres(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Profiles and posts live in MongoDB
	mongoClient, mongoDB, err := database.OpenMongo(ctx, cfg.Mongo)
	if err != nil {
		return fmt.Errorf("failed to initialize MongoDB: %w", err)
	}
	defer mongoClient.Disconnect(context.Background())

	if err := database.EnsureMongoIndexes(ctx, mongoDB); err != nil {
		return fmt.Errorf("failed to create MongoDB indexes: %w", err)
	}

	redisClient, err := database.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize Redis: %w", err)
	}
	defer redisClient.Close()

	tokenCodec, err := auth.NewTokenCodec(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token codec: %w", err)
	}

	// Repositories
	userRepo := user.NewRepository(db)
	profileRepo := profile.NewRepository(mongoDB)
	postRepo := post.NewRepository(mongoDB)

	rateLimiter := ratelimit.NewLimiter(redisClient, cfg.RateLimit)
	githubClient := github.NewClient(cfg.GitHub, redisClient, logger)

	// Services
	authService := auth.NewService(userRepo, tokenCodec, logger)
	profileService := profile.NewService(profileRepo, userRepo, githubClient, logger)
	postService := post.NewService(postRepo, userRepo, logger)

	handlers := httpServer.Handlers{
		Auth:    auth.NewHandler(authService, rateLimiter),
		Profile: profile.NewHandler(profileService),
		Post:    post.NewHandler(postService),
	}
	authMiddleware := auth.NewMiddleware(tokenCodec)

	router := httpServer.NewRouter(cfg, handlers, authMiddleware, logger)
	server := httpServer.NewServer(cfg.Server, router, logger)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("received signal", "signal", sig.String())

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}
