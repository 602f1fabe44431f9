package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/api"
	"github.com/postpilot/postpilot/internal/cache"
	"github.com/postpilot/postpilot/internal/db"
	"github.com/postpilot/postpilot/internal/generator"
	"github.com/postpilot/postpilot/internal/models"
	"github.com/postpilot/postpilot/internal/seed"
	"github.com/postpilot/postpilot/internal/store"
	"github.com/postpilot/postpilot/pkg/config"
	"github.com/postpilot/postpilot/pkg/logging"
	"github.com/postpilot/postpilot/pkg/telemetry"
)

func main() {
	// Local development convenience; missing .env is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Starting PostPilot API Server")

	// Initialize telemetry
	telemetryShutdown, err := telemetry.Init(&cfg.Telemetry)
	if err != nil {
		logger.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer telemetryShutdown()

	// Connect to the database when one is configured; otherwise the
	// service runs from the embedded seed data
	var database *db.DB
	if cfg.Database.URL != "" {
		database, err = db.New(&cfg.Database, cfg.Logging.Level)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer database.Close()
	} else {
		logger.Info("No database configured, running in-memory")
	}

	// Redis cache (optional)
	redisCache, err := cache.New(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()

	// Load seed datasets
	seeds, err := loadSeeds()
	if err != nil {
		logger.Fatal("Failed to load seed data", zap.Error(err))
	}

	// Initial posts come from the database when available
	initialPosts, postRepo, err := loadPosts(database)
	if err != nil {
		logger.Fatal("Failed to load posts", zap.Error(err))
	}

	// Post store with write-through persistence when a database is present
	storeOpts := []store.Option{
		store.WithLogger(logging.WithComponent("post-store")),
	}
	if postRepo != nil {
		storeOpts = append(storeOpts,
			store.WithPersist(func(post models.Post) {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := postRepo.Save(ctx, &post); err != nil {
					logger.Error("Failed to persist post", zap.String("post_id", post.ID), zap.Error(err))
				}
			}),
			store.WithRemover(func(id string) {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := postRepo.Delete(ctx, id); err != nil {
					logger.Error("Failed to delete post", zap.String("post_id", id), zap.Error(err))
				}
			}),
		)
	}
	postStore := store.New(initialPosts, storeOpts...)

	// Caption generator: Gemini when configured, canned templates otherwise
	gen := buildGenerator(cfg, logger)
	sched := generator.NewScheduler(gen, cfg.Generator.Delay, postStore.CompleteGeneration)
	postStore.SetScheduler(sched)

	// Create Gin router
	if cfg.Logging.Level == "DEBUG" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(api.RequestID())
	engine.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	}))

	router := api.NewRouter(postStore, database, redisCache, seeds, cfg.Generator.PreviewLimit)
	router.SetupRoutes(engine)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: engine,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server starting", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	// Pending generations are cancelled, not awaited
	sched.Shutdown()

	logger.Info("Server exited")
}

// loadSeeds loads the embedded demo datasets
func loadSeeds() (api.SeedData, error) {
	comments, err := seed.Comments()
	if err != nil {
		return api.SeedData{}, err
	}
	integrations, err := seed.Integrations()
	if err != nil {
		return api.SeedData{}, err
	}
	services, err := seed.Services()
	if err != nil {
		return api.SeedData{}, err
	}
	stats, engagement, err := seed.Dashboard()
	if err != nil {
		return api.SeedData{}, err
	}

	return api.SeedData{
		Comments:     comments,
		Integrations: integrations,
		Services:     services,
		Stats:        stats,
		Engagement:   engagement,
	}, nil
}

// loadPosts returns the initial posts and, when a database is configured,
// the repository to persist through. An empty table falls back to seed data.
func loadPosts(database *db.DB) ([]models.Post, *db.PostRepository, error) {
	if database == nil {
		posts, err := seed.Posts()
		return posts, nil, err
	}

	repo := db.NewPostRepository(db.NewRepository(database.DB))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	posts, err := repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(posts) == 0 {
		if posts, err = seed.Posts(); err != nil {
			return nil, nil, err
		}
	}
	return posts, repo, nil
}

// buildGenerator selects the caption backend
func buildGenerator(cfg *config.Config, logger *zap.Logger) generator.Generator {
	if cfg.Generator.GeminiAPIKey == "" {
		logger.Info("No Gemini API key, using template captions")
		return generator.Template{}
	}

	modelNames := strings.Split(cfg.Generator.GeminiModels, ",")
	for i := range modelNames {
		modelNames[i] = strings.TrimSpace(modelNames[i])
	}

	gem, err := generator.NewGemini(context.Background(), cfg.Generator.GeminiAPIKey, modelNames)
	if err != nil {
		logger.Warn("Gemini unavailable, using template captions", zap.Error(err))
		return generator.Template{}
	}

	logger.Info("Gemini caption generation enabled", zap.Strings("models", modelNames))
	return gem
}
