package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/db"
	"github.com/postpilot/postpilot/internal/models"
	"github.com/postpilot/postpilot/internal/seed"
	"github.com/postpilot/postpilot/pkg/config"
	"github.com/postpilot/postpilot/pkg/logging"
)

func main() {
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
	logger.Info("Starting PostPilot Seeder")

	if cfg.Database.URL == "" {
		logger.Fatal("POSTPILOT_DATABASE_URL is required to seed")
	}

	database, err := db.New(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	// Create or update the schema
	if err := database.AutoMigrate(
		&models.Post{},
		&models.CustomerComment{},
		&models.Integration{},
		&models.DashboardStats{},
		&models.EngagementDay{},
		&models.BusinessService{},
	); err != nil {
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}
	logger.Info("Schema migrated")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seedAll(ctx, database); err != nil {
		logger.Fatal("Failed to seed data", zap.Error(err))
	}

	logger.Info("Seeder finished")
}

// seedAll upserts every embedded dataset
func seedAll(ctx context.Context, database *db.DB) error {
	logger := logging.GetLogger()
	repo := db.NewRepository(database.DB)

	posts, err := seed.Posts()
	if err != nil {
		return err
	}
	postRepo := db.NewPostRepository(repo)
	for i := range posts {
		if err := postRepo.Save(ctx, &posts[i]); err != nil {
			return fmt.Errorf("post %s: %w", posts[i].ID, err)
		}
	}
	logger.Info("Seeded posts", zap.Int("count", len(posts)))

	comments, err := seed.Comments()
	if err != nil {
		return err
	}
	commentRepo := db.NewCommentRepository(repo)
	for i := range comments {
		if err := commentRepo.Save(ctx, &comments[i]); err != nil {
			return fmt.Errorf("comment %s: %w", comments[i].ID, err)
		}
	}
	logger.Info("Seeded comments", zap.Int("count", len(comments)))

	integrations, err := seed.Integrations()
	if err != nil {
		return err
	}
	integrationRepo := db.NewIntegrationRepository(repo)
	for i := range integrations {
		if err := integrationRepo.Save(ctx, &integrations[i]); err != nil {
			return fmt.Errorf("integration %s: %w", integrations[i].ID, err)
		}
	}
	logger.Info("Seeded integrations", zap.Int("count", len(integrations)))

	services, err := seed.Services()
	if err != nil {
		return err
	}
	serviceRepo := db.NewServiceRepository(repo)
	for i := range services {
		if err := serviceRepo.Save(ctx, &services[i]); err != nil {
			return fmt.Errorf("service %s: %w", services[i].ID, err)
		}
	}
	logger.Info("Seeded services", zap.Int("count", len(services)))

	stats, engagement, err := seed.Dashboard()
	if err != nil {
		return err
	}
	dashboardRepo := db.NewDashboardRepository(repo)
	if err := dashboardRepo.SaveStats(ctx, &stats); err != nil {
		return fmt.Errorf("dashboard stats: %w", err)
	}
	for i := range engagement {
		if err := dashboardRepo.SaveEngagement(ctx, &engagement[i]); err != nil {
			return fmt.Errorf("engagement day %s: %w", engagement[i].Day, err)
		}
	}
	logger.Info("Seeded dashboard", zap.Int("days", len(engagement)))

	return nil
}
